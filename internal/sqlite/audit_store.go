package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// AuditStore appends change records to the audit_log table. Column maps are
// stored as JSON objects; entries are never updated or deleted.
type AuditStore struct {
	db *sql.DB
}

func NewAuditStore(db *sql.DB) AuditStore {
	return AuditStore{db: db}
}

func (s AuditStore) Record(ctx context.Context, entity, key string, oldValues, newValues map[string]string) error {
	oldJSON, err := encodeValues(oldValues)
	if err != nil {
		return err
	}
	newJSON, err := encodeValues(newValues)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO audit_log (entity, entity_key, old_values, new_values, recorded_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query, entity, key, oldJSON, newJSON, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return nil
}

func encodeValues(values map[string]string) (any, error) {
	if values == nil {
		return nil, nil
	}

	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to encode audit values: %w", err)
	}

	return string(data), nil
}
