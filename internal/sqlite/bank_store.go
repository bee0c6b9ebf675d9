package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mandate/internal/iban"
)

// BankStore implements the bank directory over the banks table.
type BankStore struct {
	db *sql.DB
}

func NewBankStore(db *sql.DB) BankStore {
	return BankStore{db: db}
}

func (s BankStore) BankName(ctx context.Context, bankCode string) (iban.Bank, error) {
	var bank iban.Bank
	err := s.db.QueryRowContext(ctx,
		`SELECT bic, name FROM banks WHERE bank_code = ?`, bankCode,
	).Scan(&bank.BIC, &bank.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return iban.Bank{}, iban.ErrUnknownBank
		}
		return iban.Bank{}, fmt.Errorf("failed to look up bank code %s: %w", bankCode, err)
	}

	return bank, nil
}

// Upsert seeds or refreshes one directory entry.
func (s BankStore) Upsert(ctx context.Context, bankCode string, bank iban.Bank) error {
	query := `
		INSERT INTO banks (bank_code, bic, name)
		VALUES (?, ?, ?)
		ON CONFLICT(bank_code) DO UPDATE SET bic = excluded.bic, name = excluded.name
	`

	if _, err := s.db.ExecContext(ctx, query, bankCode, bank.BIC, bank.Name); err != nil {
		return fmt.Errorf("failed to upsert bank %s: %w", bankCode, err)
	}

	return nil
}
