package integration

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mandate/internal/core"
	"mandate/internal/sqlite"
)

type TestSuite struct {
	DB       *sql.DB
	DBPath   string
	Client   *sqlite.Client
	teardown func()
}

func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_mandates.db")

	config := sqlite.Config{
		DatabasePath: dbPath,
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		BusyTimeout:  30 * time.Second,
		EnableWAL:    true,
	}

	client, err := sqlite.NewClient(config)
	require.NoError(t, err, "failed to create test client")
	require.NoError(t, client.Migrate(), "failed to create schema")

	suite := &TestSuite{
		DB:     client.DB(),
		DBPath: dbPath,
		Client: client,
		teardown: func() {
			client.Close()
			os.Remove(dbPath)
		},
	}

	return suite
}

func (s *TestSuite) Teardown() {
	s.teardown()
}

func (s *TestSuite) SeedMandate(t *testing.T, m core.Mandate) {
	t.Helper()

	query := `
		INSERT INTO mandates (
			reference, project_id, musician_id, issued_date, last_used_date,
			non_recurring, sequence_kind, iban, bic, bank_code, account_owner, active
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var lastUsed any
	if !m.LastUsedDate.IsZero() {
		lastUsed = m.LastUsedDate.Format(time.DateOnly)
	}

	_, err := s.DB.Exec(query,
		m.Reference, m.ProjectID, m.MusicianID,
		m.IssuedDate.Format(time.DateOnly), lastUsed,
		m.NonRecurring, string(m.SequenceKind),
		m.IBAN, m.BIC, m.BankCode, m.AccountOwner, m.Active,
	)
	require.NoError(t, err, "failed to seed mandate")
}

func (s *TestSuite) SeedBank(t *testing.T, bankCode, bic, name string) {
	t.Helper()

	_, err := s.DB.Exec(`INSERT INTO banks (bank_code, bic, name) VALUES (?, ?, ?)`, bankCode, bic, name)
	require.NoError(t, err, "failed to seed bank")
}

func (s *TestSuite) SeedProject(t *testing.T, id int64, name string) {
	t.Helper()

	_, err := s.DB.Exec(`INSERT INTO projects (id, name) VALUES (?, ?)`, id, name)
	require.NoError(t, err, "failed to seed project")
}

func (s *TestSuite) SeedMusician(t *testing.T, id int64, firstName, lastName string) {
	t.Helper()

	_, err := s.DB.Exec(`INSERT INTO musicians (id, first_name, last_name) VALUES (?, ?, ?)`, id, firstName, lastName)
	require.NoError(t, err, "failed to seed musician")
}

func (s *TestSuite) CountMandates(t *testing.T) int {
	t.Helper()

	var count int
	err := s.DB.QueryRow(`SELECT COUNT(*) FROM mandates`).Scan(&count)
	require.NoError(t, err, "failed to count mandates")

	return count
}

type AuditEntry struct {
	Entity    string
	EntityKey string
	OldValues sql.NullString
	NewValues sql.NullString
}

func (s *TestSuite) GetAuditEntries(t *testing.T, entityKey string) []AuditEntry {
	t.Helper()

	rows, err := s.DB.Query(`
		SELECT entity, entity_key, old_values, new_values
		FROM audit_log
		WHERE entity_key = ?
		ORDER BY id
	`, entityKey)
	require.NoError(t, err, "failed to query audit log")
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		require.NoError(t, rows.Scan(&e.Entity, &e.EntityKey, &e.OldValues, &e.NewValues), "failed to scan audit entry")
		entries = append(entries, e)
	}

	require.NoError(t, rows.Err(), "error iterating audit entries")
	return entries
}

func date(t *testing.T, s string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return parsed
}
