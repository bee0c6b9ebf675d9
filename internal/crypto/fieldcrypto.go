// Package crypto encrypts the sensitive mandate fields at rest with an
// installation-wide symmetric key. The cipher holds no key material between
// calls; every operation fetches the current key from its provider.
package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"mandate/internal/core"
)

// AES-256 key length in bytes.
const keyLen = 32

// Envelope prefix so stored values are recognizably ciphertext.
const envelopePrefix = "enc:v1:"

type Config struct {
	Key string `envconfig:"MANDATE_KEY" required:"true"` // hex-encoded 32-byte key
}

// KeyProvider hands out the current installation key.
type KeyProvider interface {
	CurrentKey(ctx context.Context) ([]byte, error)
}

// StaticKeyProvider serves one key decoded from configuration.
type StaticKeyProvider struct {
	key []byte
}

func NewStaticKeyProvider(config Config) (*StaticKeyProvider, error) {
	key, err := hex.DecodeString(config.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to decode mandate key: %w", err)
	}
	if len(key) != keyLen {
		return nil, fmt.Errorf("mandate key must be %d bytes, got %d", keyLen, len(key))
	}
	return &StaticKeyProvider{key: key}, nil
}

func (p *StaticKeyProvider) CurrentKey(ctx context.Context) ([]byte, error) {
	return p.key, nil
}

// FieldCipher implements core.FieldCipher with AES-GCM over exactly the four
// sensitive mandate attributes.
type FieldCipher struct {
	keys KeyProvider
}

func NewFieldCipher(keys KeyProvider) *FieldCipher {
	return &FieldCipher{keys: keys}
}

// EncryptFields replaces IBAN, BIC, bank code and account owner with their
// ciphertext envelopes and marks the mandate encrypted.
func (c *FieldCipher) EncryptFields(ctx context.Context, m *core.Mandate) error {
	if m.Encrypted {
		return core.ErrEncryptedFields
	}

	gcm, err := c.gcm(ctx)
	if err != nil {
		return err
	}

	fields := [4]string{m.IBAN, m.BIC, m.BankCode, m.AccountOwner}
	for i, plain := range fields {
		sealed, err := seal(gcm, plain)
		if err != nil {
			return err
		}
		fields[i] = sealed
	}

	m.IBAN, m.BIC, m.BankCode, m.AccountOwner = fields[0], fields[1], fields[2], fields[3]
	m.Encrypted = true
	return nil
}

// DecryptFields is the inverse. Decryption is attempted for every field; if
// any one fails the mandate is left untouched and the whole call fails, so a
// half-decrypted record can never reach validation or export.
func (c *FieldCipher) DecryptFields(ctx context.Context, m *core.Mandate) error {
	if !m.Encrypted {
		return nil
	}

	gcm, err := c.gcm(ctx)
	if err != nil {
		return err
	}

	names := [4]string{"iban", "bic", "bankCode", "accountOwner"}
	fields := [4]string{m.IBAN, m.BIC, m.BankCode, m.AccountOwner}

	var failed []string
	for i, sealed := range fields {
		plain, err := open(gcm, sealed)
		if err != nil {
			failed = append(failed, names[i])
			continue
		}
		fields[i] = plain
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", core.ErrDecryption, strings.Join(failed, ", "))
	}

	m.IBAN, m.BIC, m.BankCode, m.AccountOwner = fields[0], fields[1], fields[2], fields[3]
	m.Encrypted = false
	return nil
}

func (c *FieldCipher) gcm(ctx context.Context) (cipher.AEAD, error) {
	key, err := c.keys.CurrentKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("key provider: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}

	return cipher.NewGCM(block)
}

func seal(gcm cipher.AEAD, plain string) (string, error) {
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to read nonce: %w", err)
	}

	out := gcm.Seal(nonce, nonce, []byte(plain), nil)
	return envelopePrefix + base64.StdEncoding.EncodeToString(out), nil
}

func open(gcm cipher.AEAD, sealed string) (string, error) {
	encoded, ok := strings.CutPrefix(sealed, envelopePrefix)
	if !ok {
		return "", fmt.Errorf("value lacks ciphertext envelope")
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode envelope: %w", err)
	}
	if len(raw) < gcm.NonceSize() {
		return "", fmt.Errorf("ciphertext shorter than nonce")
	}

	plain, err := gcm.Open(nil, raw[:gcm.NonceSize()], raw[gcm.NonceSize():], nil)
	if err != nil {
		return "", err
	}

	return string(plain), nil
}
