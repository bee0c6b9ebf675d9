package http

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"mandate/internal/core"
	"mandate/internal/currency"
)

type CreateMandateRequest struct {
	ProjectID    int64  `json:"project_id" validate:"required,gt=0"`
	MusicianID   int64  `json:"musician_id" validate:"required,gt=0"`
	IssuedDate   string `json:"issued_date" validate:"required,datetime=2006-01-02"`
	NonRecurring bool   `json:"non_recurring"`
	IBAN         string `json:"iban" validate:"required"`
	BIC          string `json:"bic"`
	BankCode     string `json:"bank_code" validate:"required,len=8,numeric"`
	AccountOwner string `json:"account_owner" validate:"required"`
}

func (req CreateMandateRequest) ToDomain() (core.Mandate, error) {
	issued, err := time.Parse(time.DateOnly, req.IssuedDate)
	if err != nil {
		return core.Mandate{}, fmt.Errorf("invalid issued_date %q: %w", req.IssuedDate, err)
	}

	return core.Mandate{
		ProjectID:    req.ProjectID,
		MusicianID:   req.MusicianID,
		IssuedDate:   issued,
		NonRecurring: req.NonRecurring,
		IBAN:         req.IBAN,
		BIC:          req.BIC,
		BankCode:     req.BankCode,
		AccountOwner: req.AccountOwner,
	}, nil
}

type RecordUsageRequest struct {
	UsedOn string `json:"used_on" validate:"required,datetime=2006-01-02"`
}

type MandateResponse struct {
	Reference    string `json:"reference"`
	ProjectID    int64  `json:"project_id"`
	MusicianID   int64  `json:"musician_id"`
	IssuedDate   string `json:"issued_date"`
	SequenceKind string `json:"sequence_kind"`
	Active       bool   `json:"active"`
}

func NewMandateResponse(m core.Mandate) MandateResponse {
	return MandateResponse{
		Reference:    m.Reference,
		ProjectID:    m.ProjectID,
		MusicianID:   m.MusicianID,
		IssuedDate:   m.IssuedDate.Format(time.DateOnly),
		SequenceKind: string(core.ResolveSequenceKind(m)),
		Active:       m.Active,
	}
}

type StartDebitRunRequest struct {
	ProjectID       int64    `json:"project_id" validate:"required,gt=0"`
	JobLabel        string   `json:"job_label" validate:"required"`
	Amount          string   `json:"amount" validate:"required"`
	Purpose         []string `json:"purpose" validate:"required,min=1,max=4"`
	GracePeriodDays int      `json:"grace_period_days" validate:"omitempty,gt=0"`
	SubmitLeadDays  int      `json:"submit_lead_days" validate:"omitempty,gt=0"`
}

type DebitRunResponse struct {
	ID                 string  `json:"id"`
	ProjectID          int64   `json:"project_id"`
	JobLabel           string  `json:"job_label"`
	FileName           string  `json:"file_name"`
	MIMEType           string  `json:"mime_type"`
	SizeBytes          int     `json:"size_bytes"`
	DueDate            string  `json:"due_date"`
	SubmissionDeadline string  `json:"submission_deadline"`
	ReminderIDs        []int64 `json:"reminder_ids,omitempty"`
}

func NewDebitRunResponse(run core.DebitRun) DebitRunResponse {
	return DebitRunResponse{
		ID:                 run.ID,
		ProjectID:          run.ProjectID,
		JobLabel:           run.JobLabel,
		FileName:           run.FileName,
		MIMEType:           run.MIMEType,
		SizeBytes:          len(run.Data),
		DueDate:            run.DueDate.Format(time.DateOnly),
		SubmissionDeadline: run.SubmissionDeadline.Format(time.DateOnly),
		ReminderIDs:        run.ReminderIDs,
	}
}

type ViolationResponse struct {
	Field  string `json:"field"`
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

type ErrorResponse struct {
	Error      string              `json:"error"`
	Violations []ViolationResponse `json:"violations,omitempty"`
}

func NewViolationResponses(violations []core.Violation) []ViolationResponse {
	out := make([]ViolationResponse, len(violations))
	for i, v := range violations {
		out[i] = ViolationResponse{Field: v.Field, Kind: string(v.Kind), Detail: v.Detail}
	}
	return out
}

// uniformDebit resolves every mandate of a run to the same amount and
// purpose lines.
type uniformDebit struct {
	debit core.Debit
}

func newUniformDebit(amount string, purpose []string) (uniformDebit, error) {
	parsed, err := currency.Parse(amount)
	if err != nil {
		return uniformDebit{}, fmt.Errorf("%w: %s", core.ErrAmount, err)
	}

	return uniformDebit{debit: core.Debit{Amount: parsed, Purpose: purpose}}, nil
}

func (u uniformDebit) Resolve(ctx context.Context, m core.Mandate) (core.Debit, error) {
	return u.debit, nil
}

func validationMessages(err error) []ViolationResponse {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ViolationResponse{{Field: "_", Kind: "invalid", Detail: err.Error()}}
	}

	out := make([]ViolationResponse, 0, len(ve))
	for _, e := range ve {
		out = append(out, ViolationResponse{
			Field:  e.Field(),
			Kind:   e.Tag(),
			Detail: fmt.Sprintf("failed %q validation", e.Tag()),
		})
	}
	return out
}
