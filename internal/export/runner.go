package export

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"mandate/internal/core"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Runner drives one debit run end to end: select candidates, assemble the
// artifact, persist the run, record usage, schedule reminders. Nothing is
// persisted until the artifact is fully built.
type Runner struct {
	service   core.Service
	assembler *Assembler
	runs      core.DebitRunRepository
	reminders core.ReminderSink // may be nil
	logger    core.Logger
}

func NewRunner(service core.Service, assembler *Assembler, runs core.DebitRunRepository, reminders core.ReminderSink, logger core.Logger) Runner {
	return Runner{
		service:   service,
		assembler: assembler,
		runs:      runs,
		reminders: reminders,
		logger:    logger,
	}
}

// Start executes a debit run for every active, non-expired mandate of the
// project. Any invalid row aborts the batch before anything is written.
func (r Runner) Start(
	ctx context.Context,
	projectID int64,
	jobLabel string,
	asOf time.Time,
	gracePeriodDays, submitLeadDays int,
	resolver SubjectResolver,
) (core.DebitRun, error) {
	candidates, err := r.service.Candidates(ctx, projectID, asOf)
	if err != nil {
		return core.DebitRun{}, err
	}
	if len(candidates) == 0 {
		return core.DebitRun{}, core.ErrEmptyBatch
	}

	artifact, err := r.assembler.Assemble(ctx, candidates, asOf, gracePeriodDays, submitLeadDays, resolver, baseName(jobLabel))
	if err != nil {
		return core.DebitRun{}, err
	}

	run := core.DebitRun{
		ID:                 uuid.NewString(),
		ProjectID:          projectID,
		JobLabel:           jobLabel,
		IssuedAt:           asOf,
		SubmissionDeadline: artifact.SubmissionDeadline,
		DueDate:            artifact.DueDate,
		FileName:           artifact.FileName,
		MIMEType:           artifact.MIMEType,
		Data:               artifact.Data,
	}

	if err := r.runs.Insert(ctx, run); err != nil {
		return core.DebitRun{}, fmt.Errorf("failed to persist debit run: %w", err)
	}

	for _, m := range candidates {
		if err := r.service.RecordUsage(ctx, m.Reference, asOf); err != nil {
			return core.DebitRun{}, fmt.Errorf("failed to record usage for %s: %w", m.Reference, err)
		}
	}

	if r.reminders != nil {
		ids, err := r.reminders.Schedule(ctx, run)
		if err != nil {
			// the run itself succeeded; reminders are an optional side effect
			r.logger.ErrorContext(ctx, "failed to schedule reminders", "run", run.ID, "error", err)
			return run, nil
		}

		run.ReminderIDs = ids
		if err := r.runs.UpdateReminders(ctx, run.ID, ids); err != nil {
			return core.DebitRun{}, fmt.Errorf("failed to store reminder ids: %w", err)
		}
	}

	return run, nil
}

func baseName(jobLabel string) string {
	name := unsafeName.ReplaceAllString(strings.TrimSpace(jobLabel), "-")
	name = strings.Trim(name, "-")
	if name == "" {
		name = "debit-run"
	}
	return name
}
