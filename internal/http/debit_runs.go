package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"mandate/internal/core"
	"mandate/internal/export"
)

//go:generate go tool go.uber.org/mock/mockgen -source=debit_runs.go -destination=debit_runs_mock.go -package=http

// RunStarter executes one bulk export end to end.
type RunStarter interface {
	Start(ctx context.Context, projectID int64, jobLabel string, asOf time.Time, gracePeriodDays, submitLeadDays int, resolver export.SubjectResolver) (core.DebitRun, error)
}

// RunReader loads persisted debit runs for artifact download.
type RunReader interface {
	ByID(ctx context.Context, id string) (core.DebitRun, error)
}

type DebitRunHandler struct {
	runner   RunStarter
	runs     RunReader
	defaults export.Config
	validate *validator.Validate
	logger   core.Logger
}

func NewDebitRunHandler(runner RunStarter, runs RunReader, defaults export.Config, logger core.Logger) DebitRunHandler {
	return DebitRunHandler{
		runner:   runner,
		runs:     runs,
		defaults: defaults,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h DebitRunHandler) PostDebitRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StartDebitRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", validationMessages(err))
		return
	}

	resolver, err := newUniformDebit(req.Amount, req.Purpose)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	graceDays := req.GracePeriodDays
	if graceDays == 0 {
		graceDays = h.defaults.GracePeriodDays
	}
	leadDays := req.SubmitLeadDays
	if leadDays == 0 {
		leadDays = h.defaults.SubmitLeadDays
	}

	run, err := h.runner.Start(ctx, req.ProjectID, req.JobLabel, time.Now(), graceDays, leadDays, resolver)
	if err != nil {
		var validationErr core.ValidationError
		switch {
		case errors.Is(err, core.ErrEmptyBatch):
			writeError(w, http.StatusUnprocessableEntity, "No candidate mandates selected", nil)
		case errors.As(err, &validationErr):
			writeError(w, http.StatusUnprocessableEntity, err.Error(), NewViolationResponses(validationErr.Violations))
		case errors.Is(err, core.ErrAmount),
			errors.Is(err, core.ErrPurposeLength),
			errors.Is(err, core.ErrPurposeCharset):
			writeError(w, http.StatusUnprocessableEntity, err.Error(), nil)
		default:
			h.logger.ErrorContext(ctx, "Failed to start debit run", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to start debit run", nil)
		}
		return
	}

	writeJSON(w, http.StatusCreated, NewDebitRunResponse(run))
}

func (h DebitRunHandler) GetArtifact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	run, err := h.runs.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrRunNotFound) {
			writeError(w, http.StatusNotFound, "Debit run not found", nil)
			return
		}

		h.logger.ErrorContext(ctx, "Failed to load debit run", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load debit run", nil)
		return
	}

	w.Header().Set("Content-Type", run.MIMEType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+run.FileName+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(run.Data)
}
