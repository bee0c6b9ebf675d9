package export

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mandate/internal/core"
	"mandate/internal/crypto"
	"mandate/internal/iban"
)

type runnerMocks struct {
	mandates  *core.MockMandateRepository
	runs      *core.MockDebitRunRepository
	audit     *core.MockAuditLog
	identity  *core.MockIdentityResolver
	reminders *core.MockReminderSink
}

func newTestRunner(t *testing.T, withReminders bool) (Runner, runnerMocks, *crypto.FieldCipher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := runnerMocks{
		mandates: core.NewMockMandateRepository(ctrl),
		runs:     core.NewMockDebitRunRepository(ctrl),
		audit:    core.NewMockAuditLog(ctrl),
		identity: core.NewMockIdentityResolver(ctrl),
	}

	directory := iban.NewMockDirectory(ctrl)
	directory.EXPECT().
		BankName(gomock.Any(), "37040044").
		Return(iban.Bank{BIC: "COBADEFFXXX", Name: "Commerzbank"}, nil).
		AnyTimes()

	keys, err := crypto.NewStaticKeyProvider(crypto.Config{Key: testKey})
	require.NoError(t, err)
	cipher := crypto.NewFieldCipher(keys)

	validator := core.NewValidator(directory)
	service := core.NewService(mocks.mandates, mocks.audit, mocks.identity, cipher, validator)
	assembler := NewAssembler(cipher, validator, mocks.identity, creditor)

	var reminders core.ReminderSink
	if withReminders {
		mocks.reminders = core.NewMockReminderSink(ctrl)
		reminders = mocks.reminders
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := NewRunner(service, assembler, mocks.runs, reminders, logger)

	return runner, mocks, cipher
}

func candidateMandate(t *testing.T, cipher *crypto.FieldCipher, reference string, musicianID int64) core.Mandate {
	t.Helper()

	m := core.Mandate{
		Reference:    reference,
		ProjectID:    15,
		MusicianID:   musicianID,
		IssuedDate:   date("2024-01-15"),
		SequenceKind: core.SequencePermanent,
		IBAN:         "DE89370400440532013000",
		BIC:          "COBADEFFXXX",
		BankCode:     "37040044",
		AccountOwner: "Claus-Justus Heine",
		Active:       true,
	}
	require.NoError(t, cipher.EncryptFields(context.Background(), &m))
	return m
}

func TestRunner_Start(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	asOf := date("2024-06-01")

	runner, mocks, cipher := newTestRunner(t, true)

	first := candidateMandate(t, cipher, "0015-0001-CS-SPRING2021", 1)
	second := candidateMandate(t, cipher, "0015-0002-CS-SPRING2021", 2)

	mocks.mandates.EXPECT().
		ListActive(ctx, int64(15)).
		Return([]core.Mandate{first, second}, nil)
	mocks.identity.EXPECT().
		Musician(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64) (core.Musician, error) {
			return core.Musician{ID: id, FirstName: "Clara", LastName: "Schumann"}, nil
		}).
		Times(2)

	var persisted core.DebitRun
	mocks.runs.EXPECT().
		Insert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, run core.DebitRun) error {
			persisted = run
			return nil
		})

	// usage bookkeeping for both rows
	for _, m := range []core.Mandate{first, second} {
		stored := m
		mocks.mandates.EXPECT().ByReference(ctx, stored.Reference).Return(stored, nil)

		updated := stored
		updated.LastUsedDate = asOf
		mocks.mandates.EXPECT().Update(ctx, updated).Return(nil)
		mocks.audit.EXPECT().
			Record(ctx, "mandate", stored.Reference, gomock.Any(), gomock.Any()).
			Return(nil)
	}

	mocks.reminders.EXPECT().
		Schedule(ctx, gomock.Any()).
		Return([]int64{101, 102}, nil)
	mocks.runs.EXPECT().
		UpdateReminders(ctx, gomock.Any(), []int64{101, 102}).
		Return(nil)

	run, err := runner.Start(ctx, 15, "June Dues 2024", asOf, 14, 6,
		fixedDebit{amount: "12.00", purpose: []string{"Beitrag"}})
	require.NoError(t, err)

	require.NotEmpty(t, run.ID)
	require.Equal(t, persisted.ID, run.ID)
	require.Equal(t, int64(15), run.ProjectID)
	require.Equal(t, "June Dues 2024", run.JobLabel)
	require.Equal(t, "June-Dues-2024.csv", run.FileName)
	require.Equal(t, "text/csv", run.MIMEType)
	require.Equal(t, date("2024-06-15"), run.DueDate)
	require.Equal(t, date("2024-06-09"), run.SubmissionDeadline)
	require.Equal(t, []int64{101, 102}, run.ReminderIDs)
	require.NotEmpty(t, run.Data)
}

func TestRunner_Start_NoCandidates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	runner, mocks, _ := newTestRunner(t, false)

	mocks.mandates.EXPECT().
		ListActive(ctx, int64(15)).
		Return(nil, nil)

	_, err := runner.Start(ctx, 15, "dues", date("2024-06-01"), 14, 6,
		fixedDebit{amount: "12.00", purpose: []string{"Beitrag"}})
	require.ErrorIs(t, err, core.ErrEmptyBatch)
}

func TestRunner_Start_ExpiredMandatesAreExcluded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	runner, mocks, cipher := newTestRunner(t, false)

	expired := candidateMandate(t, cipher, "0015-0001-CS-SPRING2021", 1)
	expired.IssuedDate = date("2019-01-15")

	mocks.mandates.EXPECT().
		ListActive(ctx, int64(15)).
		Return([]core.Mandate{expired}, nil)

	_, err := runner.Start(ctx, 15, "dues", date("2024-06-01"), 14, 6,
		fixedDebit{amount: "12.00", purpose: []string{"Beitrag"}})
	require.ErrorIs(t, err, core.ErrEmptyBatch)
}

func TestRunner_Start_AssemblyFailureWritesNothing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	runner, mocks, cipher := newTestRunner(t, false)

	m := candidateMandate(t, cipher, "0015-0001-CS-SPRING2021", 1)
	mocks.mandates.EXPECT().
		ListActive(ctx, int64(15)).
		Return([]core.Mandate{m}, nil)
	mocks.identity.EXPECT().
		Musician(gomock.Any(), gomock.Any()).
		Return(core.Musician{FirstName: "Clara", LastName: "Schumann"}, nil).
		AnyTimes()

	// zero amount aborts before any insert or usage update
	_, err := runner.Start(ctx, 15, "dues", date("2024-06-01"), 14, 6,
		fixedDebit{amount: "0.00", purpose: []string{"Beitrag"}})
	require.ErrorIs(t, err, core.ErrAmount)
}

func TestRunner_Start_ReminderFailureKeepsTheRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	asOf := date("2024-06-01")
	runner, mocks, cipher := newTestRunner(t, true)

	m := candidateMandate(t, cipher, "0015-0001-CS-SPRING2021", 1)

	mocks.mandates.EXPECT().
		ListActive(ctx, int64(15)).
		Return([]core.Mandate{m}, nil)
	mocks.identity.EXPECT().
		Musician(gomock.Any(), int64(1)).
		Return(core.Musician{ID: 1, FirstName: "Clara", LastName: "Schumann"}, nil)
	mocks.runs.EXPECT().Insert(ctx, gomock.Any()).Return(nil)

	mocks.mandates.EXPECT().ByReference(ctx, m.Reference).Return(m, nil)
	mocks.mandates.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	mocks.audit.EXPECT().
		Record(ctx, "mandate", m.Reference, gomock.Any(), gomock.Any()).
		Return(nil)

	mocks.reminders.EXPECT().
		Schedule(ctx, gomock.Any()).
		Return(nil, errors.New("scheduler unreachable"))

	run, err := runner.Start(ctx, 15, "dues", asOf, 14, 6,
		fixedDebit{amount: "12.00", purpose: []string{"Beitrag"}})
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)
	require.Empty(t, run.ReminderIDs)
}

func TestBaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		jobLabel string
		expected string
	}{
		{jobLabel: "June Dues 2024", expected: "June-Dues-2024"},
		{jobLabel: "  dues  ", expected: "dues"},
		{jobLabel: "Beiträge!!", expected: "Beitr-ge"},
		{jobLabel: "???", expected: "debit-run"},
		{jobLabel: "", expected: "debit-run"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, baseName(tt.jobLabel), "label %q", tt.jobLabel)
	}
}
