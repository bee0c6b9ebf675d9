package crypto

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mandate/internal/core"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newTestCipher(t *testing.T) *FieldCipher {
	t.Helper()

	keys, err := NewStaticKeyProvider(Config{Key: testKey})
	require.NoError(t, err)

	return NewFieldCipher(keys)
}

func TestNewStaticKeyProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		key           string
		expectedError bool
	}{
		{name: "valid_32_byte_key", key: testKey},
		{name: "short_key", key: "0001020304", expectedError: true},
		{name: "not_hex", key: strings.Repeat("zz", 32), expectedError: true},
		{name: "empty", key: "", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewStaticKeyProvider(Config{Key: tt.key})

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFieldCipher_RoundTrip(t *testing.T) {
	t.Parallel()

	cipher := newTestCipher(t)
	ctx := context.Background()

	original := core.Mandate{
		Reference:    "0015-0013-CH-SPRING2021",
		IBAN:         "DE89370400440532013000",
		BIC:          "COBADEFFXXX",
		BankCode:     "37040044",
		AccountOwner: "Claus-Justus Heine",
	}

	m := original
	require.NoError(t, cipher.EncryptFields(ctx, &m))
	require.True(t, m.Encrypted)

	// ciphertext must not leak any plaintext field
	require.NotEqual(t, original.IBAN, m.IBAN)
	require.NotEqual(t, original.BIC, m.BIC)
	require.NotEqual(t, original.BankCode, m.BankCode)
	require.NotEqual(t, original.AccountOwner, m.AccountOwner)
	for _, field := range []string{m.IBAN, m.BIC, m.BankCode, m.AccountOwner} {
		require.True(t, strings.HasPrefix(field, envelopePrefix))
	}

	// non-sensitive fields stay untouched
	require.Equal(t, original.Reference, m.Reference)

	require.NoError(t, cipher.DecryptFields(ctx, &m))
	require.False(t, m.Encrypted)
	require.Equal(t, original, m)
}

func TestFieldCipher_EncryptTwiceFails(t *testing.T) {
	t.Parallel()

	cipher := newTestCipher(t)
	ctx := context.Background()

	m := core.Mandate{IBAN: "DE89370400440532013000"}
	require.NoError(t, cipher.EncryptFields(ctx, &m))

	err := cipher.EncryptFields(ctx, &m)
	require.ErrorIs(t, err, core.ErrEncryptedFields)
}

func TestFieldCipher_DecryptPlaintextIsNoop(t *testing.T) {
	t.Parallel()

	cipher := newTestCipher(t)

	m := core.Mandate{IBAN: "DE89370400440532013000"}
	require.NoError(t, cipher.DecryptFields(context.Background(), &m))
	require.Equal(t, "DE89370400440532013000", m.IBAN)
}

func TestFieldCipher_FailClosed(t *testing.T) {
	t.Parallel()

	cipher := newTestCipher(t)
	ctx := context.Background()

	m := core.Mandate{
		IBAN:         "DE89370400440532013000",
		BIC:          "COBADEFFXXX",
		BankCode:     "37040044",
		AccountOwner: "Claus-Justus Heine",
	}
	require.NoError(t, cipher.EncryptFields(ctx, &m))

	// corrupt a single field: the whole decryption must fail and leave the
	// mandate untouched, never a partially decrypted record
	corrupted := m
	corrupted.BankCode = envelopePrefix + "AAAA" + corrupted.BankCode[len(envelopePrefix)+4:]

	before := corrupted
	err := cipher.DecryptFields(ctx, &corrupted)
	require.ErrorIs(t, err, core.ErrDecryption)
	require.Equal(t, before, corrupted)
	require.True(t, corrupted.Encrypted)
}

func TestFieldCipher_WrongKeyFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	m := core.Mandate{
		IBAN:         "DE89370400440532013000",
		BIC:          "COBADEFFXXX",
		BankCode:     "37040044",
		AccountOwner: "Claus-Justus Heine",
	}
	require.NoError(t, newTestCipher(t).EncryptFields(ctx, &m))

	otherKeys, err := NewStaticKeyProvider(Config{Key: strings.Repeat("ff", 32)})
	require.NoError(t, err)

	err = NewFieldCipher(otherKeys).DecryptFields(ctx, &m)
	require.ErrorIs(t, err, core.ErrDecryption)
}
