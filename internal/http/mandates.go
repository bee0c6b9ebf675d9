package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"mandate/internal/core"
)

//go:generate go tool go.uber.org/mock/mockgen -source=mandates.go -destination=mandates_mock.go -package=http

// MandateLifecycle is the slice of the lifecycle service the mandate
// handlers need.
type MandateLifecycle interface {
	Create(ctx context.Context, draft core.Mandate) (core.Mandate, error)
	RecordUsage(ctx context.Context, reference string, usedOn time.Time) error
	Delete(ctx context.Context, reference string) error
	Deactivate(ctx context.Context, reference string) error
}

type MandateHandler struct {
	lifecycle MandateLifecycle
	validate  *validator.Validate
	logger    core.Logger
}

func NewMandateHandler(lifecycle MandateLifecycle, logger core.Logger) MandateHandler {
	return MandateHandler{
		lifecycle: lifecycle,
		validate:  validator.New(),
		logger:    logger,
	}
}

func (h MandateHandler) PostMandate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateMandateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", validationMessages(err))
		return
	}

	draft, err := req.ToDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	created, err := h.lifecycle.Create(ctx, draft)
	if err != nil {
		var validationErr core.ValidationError
		switch {
		case errors.As(err, &validationErr):
			writeError(w, http.StatusUnprocessableEntity, "Mandate validation failed", NewViolationResponses(validationErr.Violations))
		case errors.Is(err, core.ErrMandateExists), errors.Is(err, core.ErrReferenceCollision):
			writeError(w, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, core.ErrReferenceGeneration):
			writeError(w, http.StatusUnprocessableEntity, err.Error(), nil)
		default:
			h.logger.ErrorContext(ctx, "Failed to create mandate", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to create mandate", nil)
		}
		return
	}

	writeJSON(w, http.StatusCreated, NewMandateResponse(created))
}

func (h MandateHandler) PostUsage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reference := r.PathValue("reference")

	var req RecordUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", validationMessages(err))
		return
	}

	usedOn, err := time.Parse(time.DateOnly, req.UsedOn)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid used_on date", nil)
		return
	}

	if err := h.lifecycle.RecordUsage(ctx, reference, usedOn); err != nil {
		if errors.Is(err, core.ErrMandateNotFound) {
			writeError(w, http.StatusNotFound, "Mandate not found", nil)
			return
		}

		h.logger.ErrorContext(ctx, "Failed to record mandate usage", "reference", reference, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to record mandate usage", nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h MandateHandler) DeleteMandate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reference := r.PathValue("reference")

	if err := h.lifecycle.Delete(ctx, reference); err != nil {
		if errors.Is(err, core.ErrMandateNotFound) {
			writeError(w, http.StatusNotFound, "Mandate not found", nil)
			return
		}

		h.logger.ErrorContext(ctx, "Failed to delete mandate", "reference", reference, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete mandate", nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h MandateHandler) PostDeactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reference := r.PathValue("reference")

	if err := h.lifecycle.Deactivate(ctx, reference); err != nil {
		if errors.Is(err, core.ErrMandateNotFound) {
			writeError(w, http.StatusNotFound, "Mandate not found", nil)
			return
		}

		h.logger.ErrorContext(ctx, "Failed to deactivate mandate", "reference", reference, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to deactivate mandate", nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string, violations []ViolationResponse) {
	writeJSON(w, status, ErrorResponse{Error: message, Violations: violations})
}
