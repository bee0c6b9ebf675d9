package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"mandate/internal/core"
)

// MandateStore persists mandates with their banking fields encrypted at
// rest. Loaded rows carry Encrypted=true; callers decrypt through the
// field cipher, never here.
type MandateStore struct {
	db *sql.DB
}

func NewMandateStore(db *sql.DB) MandateStore {
	return MandateStore{db: db}
}

const mandateColumns = `
	reference, project_id, musician_id, issued_date, last_used_date,
	non_recurring, sequence_kind, iban, bic, bank_code, account_owner, active
`

func (s MandateStore) Insert(ctx context.Context, m core.Mandate) error {
	query := `
		INSERT INTO mandates (` + mandateColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		m.Reference,
		m.ProjectID,
		m.MusicianID,
		dateOrNil(m.IssuedDate),
		dateOrNil(m.LastUsedDate),
		m.NonRecurring,
		string(m.SequenceKind),
		m.IBAN,
		m.BIC,
		m.BankCode,
		m.AccountOwner,
		m.Active,
	)
	if err != nil {
		if mapped := constraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to insert mandate: %w", err)
	}

	return nil
}

func (s MandateStore) Update(ctx context.Context, m core.Mandate) error {
	query := `
		UPDATE mandates
		SET issued_date = ?, last_used_date = ?, non_recurring = ?,
		    sequence_kind = ?, iban = ?, bic = ?, bank_code = ?,
		    account_owner = ?, active = ?
		WHERE reference = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		dateOrNil(m.IssuedDate),
		dateOrNil(m.LastUsedDate),
		m.NonRecurring,
		string(m.SequenceKind),
		m.IBAN,
		m.BIC,
		m.BankCode,
		m.AccountOwner,
		m.Active,
		m.Reference,
	)
	if err != nil {
		return fmt.Errorf("failed to update mandate: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return core.ErrMandateNotFound
	}

	return nil
}

func (s MandateStore) Delete(ctx context.Context, reference string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM mandates WHERE reference = ?`, reference)
	if err != nil {
		return fmt.Errorf("failed to delete mandate: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return core.ErrMandateNotFound
	}

	return nil
}

func (s MandateStore) ByReference(ctx context.Context, reference string) (core.Mandate, error) {
	query := `SELECT ` + mandateColumns + ` FROM mandates WHERE reference = ?`
	return s.scanOne(s.db.QueryRowContext(ctx, query, reference))
}

func (s MandateStore) ActiveFor(ctx context.Context, projectID, musicianID int64) (core.Mandate, error) {
	query := `
		SELECT ` + mandateColumns + `
		FROM mandates
		WHERE project_id = ? AND musician_id = ? AND active = 1
	`
	return s.scanOne(s.db.QueryRowContext(ctx, query, projectID, musicianID))
}

func (s MandateStore) LatestFor(ctx context.Context, projectID, musicianID int64) (core.Mandate, error) {
	query := `
		SELECT ` + mandateColumns + `
		FROM mandates
		WHERE project_id = ? AND musician_id = ?
		ORDER BY rowid DESC
		LIMIT 1
	`
	return s.scanOne(s.db.QueryRowContext(ctx, query, projectID, musicianID))
}

func (s MandateStore) ListActive(ctx context.Context, projectID int64) ([]core.Mandate, error) {
	query := `
		SELECT ` + mandateColumns + `
		FROM mandates
		WHERE project_id = ? AND active = 1
		ORDER BY reference
	`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mandates: %w", err)
	}
	defer rows.Close()

	var mandates []core.Mandate
	for rows.Next() {
		m, err := scanMandate(rows.Scan)
		if err != nil {
			return nil, err
		}
		mandates = append(mandates, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mandates: %w", err)
	}

	return mandates, nil
}

func (s MandateStore) scanOne(row *sql.Row) (core.Mandate, error) {
	m, err := scanMandate(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Mandate{}, core.ErrMandateNotFound
	}
	return m, err
}

func scanMandate(scan func(dest ...any) error) (core.Mandate, error) {
	var (
		m        core.Mandate
		kind     string
		issued   sql.NullString
		lastUsed sql.NullString
	)

	err := scan(
		&m.Reference,
		&m.ProjectID,
		&m.MusicianID,
		&issued,
		&lastUsed,
		&m.NonRecurring,
		&kind,
		&m.IBAN,
		&m.BIC,
		&m.BankCode,
		&m.AccountOwner,
		&m.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Mandate{}, err
		}
		return core.Mandate{}, fmt.Errorf("failed to scan mandate: %w", err)
	}

	m.SequenceKind = core.SequenceKind(kind)
	if m.IssuedDate, err = parseDate(issued); err != nil {
		return core.Mandate{}, err
	}
	if m.LastUsedDate, err = parseDate(lastUsed); err != nil {
		return core.Mandate{}, err
	}

	// rows at rest hold ciphertext
	m.Encrypted = true

	return m, nil
}

func dateOrNil(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.DateOnly)
}

func parseDate(s sql.NullString) (time.Time, error) {
	if !s.Valid || s.String == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.DateOnly, s.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse stored date %q: %w", s.String, err)
	}

	return t, nil
}

// constraintError maps sqlite unique violations to domain errors. The
// active-pair index on (project_id, musician_id) signals a concurrent second
// active mandate; any other unique violation is a reference collision. SQLite
// names the violated columns in the error message, which is the only place
// the two can be told apart.
func constraintError(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}
	if sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique &&
		sqliteErr.ExtendedCode != sqlite3.ErrConstraintPrimaryKey {
		return nil
	}
	if strings.Contains(sqliteErr.Error(), "mandates.project_id") {
		return core.ErrMandateExists
	}
	return core.ErrReferenceCollision
}
