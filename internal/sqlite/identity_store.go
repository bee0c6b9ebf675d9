package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mandate/internal/core"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrMusicianNotFound = errors.New("musician not found")
)

// IdentityStore resolves project and musician identity data. The tables are
// maintained elsewhere; this store only reads them.
type IdentityStore struct {
	db *sql.DB
}

func NewIdentityStore(db *sql.DB) IdentityStore {
	return IdentityStore{db: db}
}

func (s IdentityStore) Project(ctx context.Context, id int64) (core.Project, error) {
	project := core.Project{ID: id}
	err := s.db.QueryRowContext(ctx, `SELECT name FROM projects WHERE id = ?`, id).Scan(&project.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Project{}, ErrProjectNotFound
		}
		return core.Project{}, fmt.Errorf("failed to load project %d: %w", id, err)
	}

	return project, nil
}

func (s IdentityStore) Musician(ctx context.Context, id int64) (core.Musician, error) {
	musician := core.Musician{ID: id}
	err := s.db.QueryRowContext(ctx,
		`SELECT first_name, last_name FROM musicians WHERE id = ?`, id,
	).Scan(&musician.FirstName, &musician.LastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Musician{}, ErrMusicianNotFound
		}
		return core.Musician{}, fmt.Errorf("failed to load musician %d: %w", id, err)
	}

	return musician, nil
}
