package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mandate/internal/core"
	"mandate/internal/sqlite"
)

func storedRun(t *testing.T, id string) core.DebitRun {
	t.Helper()

	return core.DebitRun{
		ID:                 id,
		ProjectID:          15,
		JobLabel:           "June Dues 2024",
		IssuedAt:           date(t, "2024-06-01"),
		SubmissionDeadline: date(t, "2024-06-09"),
		DueDate:            date(t, "2024-06-15"),
		FileName:           "June-Dues-2024.csv",
		MIMEType:           "text/csv",
		Data:               []byte("localBic;localIban\n"),
	}
}

func TestRunStore_InsertAndByID(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	defer suite.Teardown()

	store := sqlite.NewRunStore(suite.DB)
	ctx := context.Background()

	run := storedRun(t, "run-1")
	require.NoError(t, store.Insert(ctx, run))

	loaded, err := store.ByID(ctx, run.ID)
	require.NoError(t, err)

	// a run without scheduled reminders loads as an empty id list
	require.Equal(t, []int64{}, loaded.ReminderIDs)
	loaded.ReminderIDs = nil
	require.Equal(t, run, loaded)
}

func TestRunStore_ByID_NotFound(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	defer suite.Teardown()

	store := sqlite.NewRunStore(suite.DB)

	_, err := store.ByID(context.Background(), "missing")
	require.ErrorIs(t, err, core.ErrRunNotFound)
}

func TestRunStore_UpdateReminders(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	defer suite.Teardown()

	store := sqlite.NewRunStore(suite.DB)
	ctx := context.Background()

	run := storedRun(t, "run-1")
	require.NoError(t, store.Insert(ctx, run))

	require.NoError(t, store.UpdateReminders(ctx, run.ID, []int64{101, 102}))

	loaded, err := store.ByID(ctx, run.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{101, 102}, loaded.ReminderIDs)

	require.ErrorIs(t, store.UpdateReminders(ctx, "missing", []int64{1}), core.ErrRunNotFound)
}

func TestRunStore_KeepsArtifactBytesIntact(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	defer suite.Teardown()

	store := sqlite.NewRunStore(suite.DB)
	ctx := context.Background()

	run := storedRun(t, "run-zip")
	run.FileName = "June-Dues-2024.zip"
	run.MIMEType = "application/zip"
	run.Data = []byte{0x50, 0x4b, 0x03, 0x04, 0x00, 0xff, 0xfe}
	require.NoError(t, store.Insert(ctx, run))

	loaded, err := store.ByID(ctx, run.ID)
	require.NoError(t, err)
	require.Equal(t, run.Data, loaded.Data)
	require.Equal(t, "application/zip", loaded.MIMEType)
}

func TestRunStore_IssueTimestampRoundTrips(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	defer suite.Teardown()

	store := sqlite.NewRunStore(suite.DB)
	ctx := context.Background()

	run := storedRun(t, "run-ts")
	run.IssuedAt = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, store.Insert(ctx, run))

	loaded, err := store.ByID(ctx, run.ID)
	require.NoError(t, err)
	require.True(t, run.IssuedAt.Equal(loaded.IssuedAt))
}
