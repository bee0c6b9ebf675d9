package iban

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Domestic IBANs follow the fixed German layout: country code, two check
// digits, 8-digit BLZ, 10-digit account number (zero-padded left).
const (
	domesticCountry    = "DE"
	domesticLength     = 22
	bankCodeLength     = 8
	accountNumberLen   = 10
	domesticBankOffset = 4
)

var bicPattern = regexp.MustCompile(`^[A-Za-z]{4}[A-Za-z]{2}[0-9A-Za-z]{2}([0-9A-Za-z]{3})?$`)

var ErrUnknownBank = errors.New("bank code not present in bank directory")

// Bank is one bank-directory entry, keyed by its national bank code.
type Bank struct {
	BIC  string
	Name string
}

//go:generate go tool go.uber.org/mock/mockgen -source=iban.go -destination=directory_mock.go -package=iban

// Directory resolves a national bank code against an external bank directory.
type Directory interface {
	BankName(ctx context.Context, bankCode string) (Bank, error)
}

// MismatchError reports which field disagrees with the IBAN during a
// cross-check. Field is one of "bankCode" or "bic".
type MismatchError struct {
	Field string
	Want  string
	Got   string
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("%s mismatch: iban implies %q, got %q", e.Field, e.Want, e.Got)
}

// Verify runs the mod-97 checksum over the rearranged IBAN.
func Verify(iban string) bool {
	iban = normalize(iban)
	if len(iban) < 5 {
		return false
	}

	rearranged := iban[4:] + iban[:4]

	numeric, ok := toNumeric(rearranged)
	if !ok {
		return false
	}

	return mod97(numeric) == 1
}

// BankCode extracts the embedded 8-digit bank code from a domestic IBAN.
func BankCode(iban string) (string, error) {
	if err := requireDomestic(iban); err != nil {
		return "", err
	}

	return normalize(iban)[domesticBankOffset : domesticBankOffset+bankCodeLength], nil
}

// AccountNumber extracts the account number from a domestic IBAN with the
// zero padding stripped.
func AccountNumber(iban string) (string, error) {
	if err := requireDomestic(iban); err != nil {
		return "", err
	}

	padded := normalize(iban)[domesticBankOffset+bankCodeLength:]
	trimmed := strings.TrimLeft(padded, "0")
	if trimmed == "" {
		trimmed = "0"
	}

	return trimmed, nil
}

// Derive constructs a domestic IBAN from a bank code and account number,
// computing the two check digits as 98 minus the BBAN-plus-placeholder
// remainder mod 97.
func Derive(bankCode, accountNumber string) (string, error) {
	if len(bankCode) != bankCodeLength || !allDigits(bankCode) {
		return "", fmt.Errorf("invalid bank code %q: want %d digits", bankCode, bankCodeLength)
	}
	if accountNumber == "" || len(accountNumber) > accountNumberLen || !allDigits(accountNumber) {
		return "", fmt.Errorf("invalid account number %q: want 1-%d digits", accountNumber, accountNumberLen)
	}

	bban := bankCode + fmt.Sprintf("%0*s", accountNumberLen, accountNumber)

	numeric, ok := toNumeric(bban + domesticCountry + "00")
	if !ok {
		return "", fmt.Errorf("invalid bban %q", bban)
	}

	check := 98 - mod97(numeric)

	return fmt.Sprintf("%s%02d%s", domesticCountry, check, bban), nil
}

// CrossCheck verifies that the IBAN's embedded bank code matches the supplied
// one and that the directory BIC for that bank code matches the supplied BIC.
// Directory misses surface as ErrUnknownBank, never as a mismatch.
func CrossCheck(ctx context.Context, iban, bankCode, bic string, directory Directory) error {
	embedded, err := BankCode(iban)
	if err != nil {
		return err
	}

	if embedded != bankCode {
		return MismatchError{Field: "bankCode", Want: embedded, Got: bankCode}
	}

	bank, err := directory.BankName(ctx, bankCode)
	if err != nil {
		return err
	}

	if !strings.EqualFold(bank.BIC, bic) {
		return MismatchError{Field: "bic", Want: bank.BIC, Got: bic}
	}

	return nil
}

// ValidBIC checks BIC syntax: 8 or 11 characters, letters-only bank and
// country parts.
func ValidBIC(bic string) bool {
	return bicPattern.MatchString(bic)
}

func requireDomestic(iban string) error {
	iban = normalize(iban)
	if len(iban) != domesticLength || !strings.HasPrefix(iban, domesticCountry) {
		return fmt.Errorf("iban %q is not a domestic %s iban", iban, domesticCountry)
	}
	return nil
}

func normalize(iban string) string {
	return strings.ToUpper(strings.ReplaceAll(iban, " ", ""))
}

// toNumeric maps A-Z to 10-35 and keeps digits, producing the decimal string
// the mod-97 step operates on.
func toNumeric(s string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteString(fmt.Sprintf("%d", r-'A'+10))
		default:
			return "", false
		}
	}
	return b.String(), true
}

func mod97(numeric string) int {
	n := new(big.Int)
	if _, ok := n.SetString(numeric, 10); !ok {
		return -1
	}
	return int(new(big.Int).Mod(n, big.NewInt(97)).Int64())
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
