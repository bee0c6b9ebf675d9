package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// SequenceKind classifies a debit within a mandate's lifetime.
type SequenceKind string

const (
	SequenceOnce      SequenceKind = "once"
	SequencePermanent SequenceKind = "permanent"
	SequenceFirst     SequenceKind = "first"
	SequenceFollowing SequenceKind = "following"
)

// Export tokens for the banking middleware batch format.
const (
	TokenFirst     = "FRST"
	TokenRecurring = "RCUR"
	TokenOneOff    = "OOFF"
)

func (k SequenceKind) Valid() bool {
	switch k {
	case SequenceOnce, SequencePermanent, SequenceFirst, SequenceFollowing:
		return true
	}
	return false
}

// Token returns the serialized batch token. Only resolved kinds have one;
// SequencePermanent must be resolved first and maps to the empty string.
func (k SequenceKind) Token() string {
	switch k {
	case SequenceOnce:
		return TokenOneOff
	case SequenceFirst:
		return TokenFirst
	case SequenceFollowing:
		return TokenRecurring
	}
	return ""
}

// Mandate is a debtor's standing authorization to debit a bank account for
// one project. The four banking fields are encrypted at rest; Encrypted
// tracks which representation the struct currently holds so that no code
// path operates on ciphertext by accident.
type Mandate struct {
	Reference    string
	ProjectID    int64
	MusicianID   int64
	IssuedDate   time.Time
	LastUsedDate time.Time // zero value means never used
	NonRecurring bool
	SequenceKind SequenceKind // as stored; may be the legacy permanent alias

	IBAN         string
	BIC          string
	BankCode     string
	AccountOwner string
	Encrypted    bool

	Active bool
}

// Used reports whether any debit was ever recorded against the mandate.
func (m Mandate) Used() bool {
	return !m.LastUsedDate.IsZero()
}

// expiry horizon in whole months since the last activity on the mandate
const expiryMonths = 36

// IsExpired reports whether 36 or more whole months have passed since the
// later of last usage and issue date. Expired mandates are excluded from new
// batches but never auto-deleted.
func (m Mandate) IsExpired(asOf time.Time) bool {
	anchor := m.IssuedDate
	if m.LastUsedDate.After(anchor) {
		anchor = m.LastUsedDate
	}
	if anchor.IsZero() {
		return false
	}
	return wholeMonthsBetween(anchor, asOf) >= expiryMonths
}

func wholeMonthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	return months
}

// ResolveSequenceKind is the single compatibility mapping between the stored
// kind, the legacy non-recurring flag, and usage history. It never returns
// SequencePermanent: the persisted alias resolves to first/following by the
// same usage rule as any other recurring mandate. A stored once-kind and the
// non-recurring flag both force a one-off.
func ResolveSequenceKind(m Mandate) SequenceKind {
	if m.NonRecurring || m.SequenceKind == SequenceOnce {
		return SequenceOnce
	}
	if m.Used() {
		return SequenceFollowing
	}
	return SequenceFirst
}

// Project and Musician carry the identity data that reference generation and
// export rendering need; they are resolved through the IdentityResolver
// collaborator, never loaded by this package.
type Project struct {
	ID   int64
	Name string
}

type Musician struct {
	ID        int64
	FirstName string
	LastName  string
}

// DebitRun is the persisted outcome of one successful bulk export.
type DebitRun struct {
	ID                 string
	ProjectID          int64
	JobLabel           string
	IssuedAt           time.Time
	SubmissionDeadline time.Time
	DueDate            time.Time
	ReminderIDs        []int64

	FileName string
	MIMEType string
	Data     []byte
}

// Debit is the resolved amount and purpose text for one mandate in a run.
type Debit struct {
	Amount  decimal.Decimal
	Purpose []string
}
