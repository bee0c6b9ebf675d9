package core

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const auditEntity = "mandate"

// Service owns the mandate lifecycle: creation, banking-detail changes,
// usage bookkeeping, deactivation and deletion. Every mutating transition
// appends an audit-log entry recording the changed columns only.
type Service struct {
	mandates  MandateRepository
	audit     AuditLog
	identity  IdentityResolver
	cipher    FieldCipher
	validator *Validator
}

func NewService(
	mandates MandateRepository,
	audit AuditLog,
	identity IdentityResolver,
	cipher FieldCipher,
	validator *Validator,
) Service {
	return Service{
		mandates:  mandates,
		audit:     audit,
		identity:  identity,
		cipher:    cipher,
		validator: validator,
	}
}

// Create validates a mandate draft, assigns its reference, encrypts the
// banking fields and persists it. At most one active mandate may exist per
// project/musician pair; a reference collision from the store is final, not
// retried.
func (s Service) Create(ctx context.Context, draft Mandate) (Mandate, error) {
	if draft.Encrypted {
		return Mandate{}, ErrEncryptedFields
	}

	if _, err := s.mandates.ActiveFor(ctx, draft.ProjectID, draft.MusicianID); err == nil {
		return Mandate{}, ErrMandateExists
	} else if !errors.Is(err, ErrMandateNotFound) {
		return Mandate{}, fmt.Errorf("active mandate lookup: %w", err)
	}

	if draft.Reference == "" {
		reference, err := s.nextReference(ctx, draft.ProjectID, draft.MusicianID)
		if err != nil {
			return Mandate{}, err
		}
		draft.Reference = reference
	}

	draft = withDefaults(draft)

	violations, err := s.validator.Validate(ctx, draft)
	if err != nil {
		return Mandate{}, err
	}
	if len(violations) > 0 {
		return Mandate{}, ValidationError{Violations: violations}
	}

	stored := draft
	if err := s.cipher.EncryptFields(ctx, &stored); err != nil {
		return Mandate{}, err
	}

	if err := s.mandates.Insert(ctx, stored); err != nil {
		return Mandate{}, err
	}

	if err := s.audit.Record(ctx, auditEntity, stored.Reference, nil, auditColumns(stored)); err != nil {
		return Mandate{}, fmt.Errorf("audit insert: %w", err)
	}

	return draft, nil
}

// ChangeBankAccount replaces the banking details of an active mandate. The
// old mandate is deactivated and a successor with an incremented reference
// is created, so historical debits stay attributable to the authorization
// that was in force. The successor starts with a fresh issue date and no
// usage history. It is validated before the prior is deactivated; a rejected
// change leaves the existing authorization in force.
func (s Service) ChangeBankAccount(ctx context.Context, reference string, issuedDate time.Time, newIBAN, newBIC, newBankCode, newOwner string) (Mandate, error) {
	prior, err := s.Get(ctx, reference)
	if err != nil {
		return Mandate{}, err
	}

	if prior.IBAN == newIBAN && prior.BIC == newBIC && prior.BankCode == newBankCode && prior.AccountOwner == newOwner {
		return prior, nil
	}

	successorRef, err := s.referenceFor(ctx, prior.ProjectID, prior.MusicianID, prior.Reference)
	if err != nil {
		return Mandate{}, err
	}

	successor := Mandate{
		Reference:    successorRef,
		ProjectID:    prior.ProjectID,
		MusicianID:   prior.MusicianID,
		IssuedDate:   issuedDate,
		NonRecurring: prior.NonRecurring,
		IBAN:         newIBAN,
		BIC:          newBIC,
		BankCode:     newBankCode,
		AccountOwner: newOwner,
	}

	violations, err := s.validator.Validate(ctx, withDefaults(successor))
	if err != nil {
		return Mandate{}, err
	}
	if len(violations) > 0 {
		return Mandate{}, ValidationError{Violations: violations}
	}

	if err := s.Deactivate(ctx, prior.Reference); err != nil {
		return Mandate{}, err
	}

	return s.Create(ctx, successor)
}

// withDefaults shapes a draft the way it will be persisted: an unset
// sequence kind resolves from the non-recurring flag and the mandate starts
// active.
func withDefaults(draft Mandate) Mandate {
	if draft.SequenceKind == "" {
		if draft.NonRecurring {
			draft.SequenceKind = SequenceOnce
		} else {
			draft.SequenceKind = SequenceFirst
		}
	}
	draft.Active = true
	return draft
}

// RecordUsage marks a debit as actually issued against the mandate. Called
// by the export path once a run is persisted, not when it is merely
// proposed.
func (s Service) RecordUsage(ctx context.Context, reference string, usedOn time.Time) error {
	m, err := s.mandates.ByReference(ctx, reference)
	if err != nil {
		return err
	}

	if !usedOn.After(m.LastUsedDate) {
		return nil
	}

	old := m
	m.LastUsedDate = usedOn

	if err := s.mandates.Update(ctx, m); err != nil {
		return err
	}

	return s.audit.Record(ctx, auditEntity, reference,
		map[string]string{"lastUsedDate": dateColumn(old.LastUsedDate)},
		map[string]string{"lastUsedDate": dateColumn(m.LastUsedDate)},
	)
}

// Deactivate soft-disables a mandate, keeping the row for bookkeeping.
func (s Service) Deactivate(ctx context.Context, reference string) error {
	m, err := s.mandates.ByReference(ctx, reference)
	if err != nil {
		return err
	}

	if !m.Active {
		return nil
	}

	m.Active = false
	if err := s.mandates.Update(ctx, m); err != nil {
		return err
	}

	return s.audit.Record(ctx, auditEntity, reference,
		map[string]string{"active": "true"},
		map[string]string{"active": "false"},
	)
}

// Delete hard-removes a mandate only while it has no usage history;
// otherwise it degrades to a deactivation.
func (s Service) Delete(ctx context.Context, reference string) error {
	m, err := s.mandates.ByReference(ctx, reference)
	if err != nil {
		return err
	}

	if m.Used() {
		return s.Deactivate(ctx, reference)
	}

	if err := s.mandates.Delete(ctx, reference); err != nil {
		return err
	}

	return s.audit.Record(ctx, auditEntity, reference, auditColumns(m), nil)
}

// Get loads a mandate and decrypts its banking fields.
func (s Service) Get(ctx context.Context, reference string) (Mandate, error) {
	m, err := s.mandates.ByReference(ctx, reference)
	if err != nil {
		return Mandate{}, err
	}

	if err := s.cipher.DecryptFields(ctx, &m); err != nil {
		return Mandate{}, err
	}

	return m, nil
}

// Candidates returns the active, non-expired mandates of a project with
// their fields still encrypted; the export path decrypts them as a set.
func (s Service) Candidates(ctx context.Context, projectID int64, asOf time.Time) ([]Mandate, error) {
	active, err := s.mandates.ListActive(ctx, projectID)
	if err != nil {
		return nil, err
	}

	candidates := make([]Mandate, 0, len(active))
	for _, m := range active {
		if !m.IsExpired(asOf) {
			candidates = append(candidates, m)
		}
	}

	return candidates, nil
}

func (s Service) nextReference(ctx context.Context, projectID, musicianID int64) (string, error) {
	prior := ""
	latest, err := s.mandates.LatestFor(ctx, projectID, musicianID)
	switch {
	case err == nil:
		prior = latest.Reference
	case !errors.Is(err, ErrMandateNotFound):
		return "", fmt.Errorf("latest mandate lookup: %w", err)
	}

	return s.referenceFor(ctx, projectID, musicianID, prior)
}

func (s Service) referenceFor(ctx context.Context, projectID, musicianID int64, prior string) (string, error) {
	project, err := s.identity.Project(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("%w: project %d: %s", ErrReferenceGeneration, projectID, err)
	}

	musician, err := s.identity.Musician(ctx, musicianID)
	if err != nil {
		return "", fmt.Errorf("%w: musician %d: %s", ErrReferenceGeneration, musicianID, err)
	}

	return GenerateReference(project, musician, prior)
}

// auditColumns flattens a mandate into the column map audit entries use.
// Banking fields are recorded in their stored (encrypted) representation.
func auditColumns(m Mandate) map[string]string {
	return map[string]string{
		"reference":    m.Reference,
		"projectId":    fmt.Sprintf("%d", m.ProjectID),
		"musicianId":   fmt.Sprintf("%d", m.MusicianID),
		"issuedDate":   dateColumn(m.IssuedDate),
		"lastUsedDate": dateColumn(m.LastUsedDate),
		"sequenceKind": string(m.SequenceKind),
		"iban":         m.IBAN,
		"bic":          m.BIC,
		"bankCode":     m.BankCode,
		"accountOwner": m.AccountOwner,
		"active":       fmt.Sprintf("%t", m.Active),
	}
}

func dateColumn(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
