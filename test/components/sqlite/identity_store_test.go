package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mandate/internal/core"
	"mandate/internal/sqlite"
)

func TestIdentityStore_Project(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	defer suite.Teardown()

	store := sqlite.NewIdentityStore(suite.DB)
	ctx := context.Background()

	suite.SeedProject(t, 15, "Spring2021")

	project, err := store.Project(ctx, 15)
	require.NoError(t, err)
	require.Equal(t, core.Project{ID: 15, Name: "Spring2021"}, project)

	_, err = store.Project(ctx, 99)
	require.ErrorIs(t, err, sqlite.ErrProjectNotFound)
}

func TestIdentityStore_Musician(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	defer suite.Teardown()

	store := sqlite.NewIdentityStore(suite.DB)
	ctx := context.Background()

	suite.SeedMusician(t, 13, "Claus-Justus", "Heine")

	musician, err := store.Musician(ctx, 13)
	require.NoError(t, err)
	require.Equal(t, core.Musician{ID: 13, FirstName: "Claus-Justus", LastName: "Heine"}, musician)

	_, err = store.Musician(ctx, 99)
	require.ErrorIs(t, err, sqlite.ErrMusicianNotFound)
}
