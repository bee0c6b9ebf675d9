package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mandate/internal/core"
)

// RunStore persists debit runs together with their serialized export
// artifact.
type RunStore struct {
	db *sql.DB
}

func NewRunStore(db *sql.DB) RunStore {
	return RunStore{db: db}
}

func (s RunStore) Insert(ctx context.Context, run core.DebitRun) error {
	reminders, err := json.Marshal(reminderIDs(run.ReminderIDs))
	if err != nil {
		return fmt.Errorf("failed to encode reminder ids: %w", err)
	}

	query := `
		INSERT INTO debit_runs (
			id, project_id, job_label, issued_at,
			submission_deadline, due_date, reminder_ids,
			file_name, mime_type, data
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		run.ID,
		run.ProjectID,
		run.JobLabel,
		run.IssuedAt.Format(time.RFC3339),
		run.SubmissionDeadline.Format(time.DateOnly),
		run.DueDate.Format(time.DateOnly),
		string(reminders),
		run.FileName,
		run.MIMEType,
		run.Data,
	)
	if err != nil {
		return fmt.Errorf("failed to insert debit run: %w", err)
	}

	return nil
}

func (s RunStore) UpdateReminders(ctx context.Context, id string, ids []int64) error {
	reminders, err := json.Marshal(reminderIDs(ids))
	if err != nil {
		return fmt.Errorf("failed to encode reminder ids: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE debit_runs SET reminder_ids = ? WHERE id = ?`,
		string(reminders), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder ids: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return core.ErrRunNotFound
	}

	return nil
}

func (s RunStore) ByID(ctx context.Context, id string) (core.DebitRun, error) {
	query := `
		SELECT id, project_id, job_label, issued_at,
		       submission_deadline, due_date, reminder_ids,
		       file_name, mime_type, data
		FROM debit_runs
		WHERE id = ?
	`

	var (
		run       core.DebitRun
		issuedAt  string
		deadline  string
		dueDate   string
		reminders string
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&run.ID,
		&run.ProjectID,
		&run.JobLabel,
		&issuedAt,
		&deadline,
		&dueDate,
		&reminders,
		&run.FileName,
		&run.MIMEType,
		&run.Data,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.DebitRun{}, core.ErrRunNotFound
		}
		return core.DebitRun{}, fmt.Errorf("failed to get debit run: %w", err)
	}

	if run.IssuedAt, err = time.Parse(time.RFC3339, issuedAt); err != nil {
		return core.DebitRun{}, fmt.Errorf("failed to parse issue timestamp %q: %w", issuedAt, err)
	}
	if run.SubmissionDeadline, err = time.Parse(time.DateOnly, deadline); err != nil {
		return core.DebitRun{}, fmt.Errorf("failed to parse submission deadline %q: %w", deadline, err)
	}
	if run.DueDate, err = time.Parse(time.DateOnly, dueDate); err != nil {
		return core.DebitRun{}, fmt.Errorf("failed to parse due date %q: %w", dueDate, err)
	}
	if err = json.Unmarshal([]byte(reminders), &run.ReminderIDs); err != nil {
		return core.DebitRun{}, fmt.Errorf("failed to decode reminder ids: %w", err)
	}

	return run, nil
}

// reminderIDs keeps the stored JSON an array even when the slice is nil.
func reminderIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
