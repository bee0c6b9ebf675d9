package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mandate/internal/iban"
	"mandate/internal/sepatext"
)

// ViolationKind is the machine-readable classification of a single
// validation failure.
type ViolationKind string

const (
	ViolationMissing      ViolationKind = "missing"
	ViolationCharset      ViolationKind = "charset"
	ViolationLength       ViolationKind = "length"
	ViolationFutureDate   ViolationKind = "future_date"
	ViolationSequenceKind ViolationKind = "sequence_kind"
	ViolationChecksum     ViolationKind = "iban_checksum"
	ViolationMismatch     ViolationKind = "cross_mismatch"
	ViolationUnknownBank  ViolationKind = "unknown_bank"
)

// Violation is one field-level validation failure. The full list is returned
// to callers so a UI can redisplay every offending field at once.
type Violation struct {
	Field  string
	Kind   ViolationKind
	Detail string
}

// ValidationError carries the aggregated violations across an error
// boundary without losing their structure.
type ValidationError struct {
	Violations []Violation
}

func (e ValidationError) Error() string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}
	return fmt.Sprintf("mandate validation failed: %s", strings.Join(fields, ", "))
}

// Validator checks a decrypted mandate against field-presence, charset,
// date, and banking cross-consistency rules. It accumulates all violations
// rather than stopping at the first and never mutates the mandate.
type Validator struct {
	banks iban.Directory
}

func NewValidator(banks iban.Directory) *Validator {
	return &Validator{banks: banks}
}

// Validate returns the full violation list for a mandate; an empty list
// means valid. The returned error is reserved for infrastructure failures
// (directory outage, ciphertext input), never for validation outcomes.
func (v *Validator) Validate(ctx context.Context, m Mandate) ([]Violation, error) {
	if m.Encrypted {
		return nil, ErrEncryptedFields
	}

	var violations []Violation
	add := func(field string, kind ViolationKind, detail string) {
		violations = append(violations, Violation{Field: field, Kind: kind, Detail: detail})
	}

	if m.Reference == "" {
		add("reference", ViolationMissing, "mandate reference is required")
	} else {
		if len(m.Reference) > MaxReferenceLength {
			add("reference", ViolationLength, fmt.Sprintf("mandate reference exceeds %d characters", MaxReferenceLength))
		}
		if !sepatext.Conformant(m.Reference) {
			add("reference", ViolationCharset, "mandate reference contains characters outside the SEPA charset")
		}
	}
	if unsetDate(m.IssuedDate) {
		add("issuedDate", ViolationMissing, "mandate issue date is required")
	}
	if m.MusicianID == 0 {
		add("musicianId", ViolationMissing, "debtor id is required")
	}
	if m.ProjectID == 0 {
		add("projectId", ViolationMissing, "project id is required")
	}
	if m.SequenceKind == "" {
		add("sequenceKind", ViolationMissing, "sequence kind is required")
	}
	if m.IBAN == "" {
		add("iban", ViolationMissing, "IBAN is required")
	}
	if m.BankCode == "" {
		add("bankCode", ViolationMissing, "bank code is required")
	}
	if m.AccountOwner == "" {
		add("accountOwner", ViolationMissing, "account owner is required")
	}

	if m.AccountOwner != "" && !sepatext.Conformant(m.AccountOwner) {
		add("accountOwner", ViolationCharset, "account owner contains characters outside the SEPA charset")
	}

	if !unsetDate(m.IssuedDate) && m.IssuedDate.After(time.Now()) {
		add("issuedDate", ViolationFutureDate, "mandate issue date lies in the future")
	}

	if m.SequenceKind != "" && !m.SequenceKind.Valid() {
		add("sequenceKind", ViolationSequenceKind, fmt.Sprintf("unknown sequence kind %q", m.SequenceKind))
	}

	if m.IBAN != "" {
		if err := v.checkBanking(ctx, m, add); err != nil {
			return nil, err
		}
	}

	return violations, nil
}

func (v *Validator) checkBanking(ctx context.Context, m Mandate, add func(string, ViolationKind, string)) error {
	if !iban.Verify(m.IBAN) {
		add("iban", ViolationChecksum, "IBAN fails its checksum")
		return nil
	}

	embedded, err := iban.BankCode(m.IBAN)
	if err != nil {
		// foreign IBAN: no positional bank code to cross-check
		return nil
	}

	if m.BankCode != "" && embedded != m.BankCode {
		add("bankCode", ViolationMismatch, fmt.Sprintf("IBAN embeds bank code %s, not %s", embedded, m.BankCode))
		return nil
	}

	bank, err := v.banks.BankName(ctx, embedded)
	if errors.Is(err, iban.ErrUnknownBank) {
		add("bankCode", ViolationUnknownBank, fmt.Sprintf("bank code %s is not listed in the bank directory", embedded))
		return nil
	}
	if err != nil {
		return fmt.Errorf("bank directory lookup: %w", err)
	}

	if m.BIC != "" && !strings.EqualFold(bank.BIC, m.BIC) {
		add("bic", ViolationMismatch, fmt.Sprintf("bank code %s belongs to BIC %s, not %s", embedded, bank.BIC, m.BIC))
	}

	return nil
}

// Sentinel "unset" dates (zero value, epoch zero) count as missing, not as
// dates in their own right.
func unsetDate(t time.Time) bool {
	return t.IsZero() || t.Unix() == 0
}
