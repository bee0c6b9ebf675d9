package core

import (
	"context"
)

//go:generate go tool go.uber.org/mock/mockgen -source=repository.go -destination=repository_mock.go -package=core

// MandateRepository is the persistence gateway for mandates. Insert must
// enforce uniqueness of the reference, reported as ErrReferenceCollision,
// and the one-active-mandate-per-pair rule, reported as ErrMandateExists;
// lookups report ErrMandateNotFound.
type MandateRepository interface {
	Insert(ctx context.Context, m Mandate) error
	Update(ctx context.Context, m Mandate) error
	Delete(ctx context.Context, reference string) error
	ByReference(ctx context.Context, reference string) (Mandate, error)
	ActiveFor(ctx context.Context, projectID, musicianID int64) (Mandate, error)
	LatestFor(ctx context.Context, projectID, musicianID int64) (Mandate, error)
	ListActive(ctx context.Context, projectID int64) ([]Mandate, error)
}

// DebitRunRepository stores the artifact and bookkeeping of a bulk export.
type DebitRunRepository interface {
	Insert(ctx context.Context, run DebitRun) error
	UpdateReminders(ctx context.Context, id string, reminderIDs []int64) error
	ByID(ctx context.Context, id string) (DebitRun, error)
}

// AuditLog records old and new values for the changed columns of an entity.
type AuditLog interface {
	Record(ctx context.Context, entity, key string, oldValues, newValues map[string]string) error
}

// IdentityResolver loads the project and musician identity data that
// reference generation and export rendering depend on.
type IdentityResolver interface {
	Project(ctx context.Context, id int64) (Project, error)
	Musician(ctx context.Context, id int64) (Musician, error)
}

// ReminderSink schedules submission-deadline reminders for a persisted run
// and returns the created reminder ids. Invoked only after a successful
// export.
type ReminderSink interface {
	Schedule(ctx context.Context, run DebitRun) ([]int64, error)
}

// FieldCipher encrypts and decrypts the four sensitive mandate fields in
// place. A partially decrypted mandate must never leave the cipher: on any
// per-field failure the whole call errors and the Encrypted flag is left
// unchanged.
type FieldCipher interface {
	EncryptFields(ctx context.Context, m *Mandate) error
	DecryptFields(ctx context.Context, m *Mandate) error
}
