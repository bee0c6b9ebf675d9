package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mandate/internal/core"
)

func testLogger() core.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func decodeError(t *testing.T, body io.Reader) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

const createBody = `{
	"project_id": 15,
	"musician_id": 13,
	"issued_date": "2021-03-01",
	"iban": "DE89370400440532013000",
	"bic": "COBADEFFXXX",
	"bank_code": "37040044",
	"account_owner": "Claus-Justus Heine"
}`

func TestMandateHandler_PostMandate(t *testing.T) {
	t.Parallel()

	created := core.Mandate{
		Reference:    "0015-0013-CH-SPRING2021",
		ProjectID:    15,
		MusicianID:   13,
		IssuedDate:   date("2021-03-01"),
		SequenceKind: core.SequenceFirst,
		Active:       true,
	}

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockMandateLifecycle)
		expectedStatus int
	}{
		{
			name: "created",
			body: createBody,
			mockSetup: func(m *MockMandateLifecycle) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed_json",
			body:           `{"project_id": `,
			mockSetup:      func(m *MockMandateLifecycle) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing_required_fields",
			body:           `{"project_id": 15}`,
			mockSetup:      func(m *MockMandateLifecycle) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bank_code_must_be_eight_digits",
			body:           strings.Replace(createBody, `"bank_code": "37040044"`, `"bank_code": "3704"`, 1),
			mockSetup:      func(m *MockMandateLifecycle) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "domain_violations_map_to_422",
			body: createBody,
			mockSetup: func(m *MockMandateLifecycle) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(core.Mandate{}, core.ValidationError{Violations: []core.Violation{
						{Field: "iban", Kind: core.ViolationChecksum, Detail: "IBAN fails its checksum"},
					}})
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "duplicate_active_mandate_conflicts",
			body: createBody,
			mockSetup: func(m *MockMandateLifecycle) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(core.Mandate{}, core.ErrMandateExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "reference_collision_conflicts",
			body: createBody,
			mockSetup: func(m *MockMandateLifecycle) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(core.Mandate{}, core.ErrReferenceCollision)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "unresolvable_identity_is_422",
			body: createBody,
			mockSetup: func(m *MockMandateLifecycle) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(core.Mandate{}, core.ErrReferenceGeneration)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "storage_failure_is_500",
			body: createBody,
			mockSetup: func(m *MockMandateLifecycle) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(core.Mandate{}, io.ErrUnexpectedEOF)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			lifecycle := NewMockMandateLifecycle(ctrl)
			tt.mockSetup(lifecycle)

			handler := NewMandateHandler(lifecycle, testLogger())

			req := httptest.NewRequest(http.MethodPost, "/mandates", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.PostMandate(rec, req)
			require.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus != http.StatusCreated {
				return
			}

			var resp MandateResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			require.Equal(t, MandateResponse{
				Reference:    "0015-0013-CH-SPRING2021",
				ProjectID:    15,
				MusicianID:   13,
				IssuedDate:   "2021-03-01",
				SequenceKind: "first",
				Active:       true,
			}, resp)
		})
	}
}

func TestMandateHandler_PostMandate_ViolationPayload(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	lifecycle := NewMockMandateLifecycle(ctrl)
	lifecycle.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(core.Mandate{}, core.ValidationError{Violations: []core.Violation{
			{Field: "iban", Kind: core.ViolationChecksum, Detail: "IBAN fails its checksum"},
			{Field: "accountOwner", Kind: core.ViolationCharset, Detail: "account owner contains characters outside the SEPA charset"},
		}})

	handler := NewMandateHandler(lifecycle, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/mandates", strings.NewReader(createBody))
	rec := httptest.NewRecorder()
	handler.PostMandate(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decodeError(t, rec.Body)
	require.Equal(t, []ViolationResponse{
		{Field: "iban", Kind: "iban_checksum", Detail: "IBAN fails its checksum"},
		{Field: "accountOwner", Kind: "charset", Detail: "account owner contains characters outside the SEPA charset"},
	}, resp.Violations)
}

func TestMandateHandler_PostUsage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockMandateLifecycle)
		expectedStatus int
	}{
		{
			name: "recorded",
			body: `{"used_on": "2024-06-01"}`,
			mockSetup: func(m *MockMandateLifecycle) {
				m.EXPECT().
					RecordUsage(gomock.Any(), "0015-0013-CH-SPRING2021", date("2024-06-01")).
					Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "missing_date",
			body:           `{}`,
			mockSetup:      func(m *MockMandateLifecycle) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed_date",
			body:           `{"used_on": "01.06.2024"}`,
			mockSetup:      func(m *MockMandateLifecycle) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not_found",
			body: `{"used_on": "2024-06-01"}`,
			mockSetup: func(m *MockMandateLifecycle) {
				m.EXPECT().
					RecordUsage(gomock.Any(), "0015-0013-CH-SPRING2021", date("2024-06-01")).
					Return(core.ErrMandateNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			lifecycle := NewMockMandateLifecycle(ctrl)
			tt.mockSetup(lifecycle)

			handler := NewMandateHandler(lifecycle, testLogger())

			req := httptest.NewRequest(http.MethodPost, "/mandates/0015-0013-CH-SPRING2021/usage", strings.NewReader(tt.body))
			req.SetPathValue("reference", "0015-0013-CH-SPRING2021")
			rec := httptest.NewRecorder()

			handler.PostUsage(rec, req)
			require.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestMandateHandler_DeleteMandate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		mockSetup      func(m *MockMandateLifecycle)
		expectedStatus int
	}{
		{
			name: "deleted",
			mockSetup: func(m *MockMandateLifecycle) {
				m.EXPECT().
					Delete(gomock.Any(), "0015-0013-CH-SPRING2021").
					Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "not_found",
			mockSetup: func(m *MockMandateLifecycle) {
				m.EXPECT().
					Delete(gomock.Any(), "0015-0013-CH-SPRING2021").
					Return(core.ErrMandateNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "storage_failure",
			mockSetup: func(m *MockMandateLifecycle) {
				m.EXPECT().
					Delete(gomock.Any(), "0015-0013-CH-SPRING2021").
					Return(io.ErrUnexpectedEOF)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			lifecycle := NewMockMandateLifecycle(ctrl)
			tt.mockSetup(lifecycle)

			handler := NewMandateHandler(lifecycle, testLogger())

			req := httptest.NewRequest(http.MethodDelete, "/mandates/0015-0013-CH-SPRING2021", nil)
			req.SetPathValue("reference", "0015-0013-CH-SPRING2021")
			rec := httptest.NewRecorder()

			handler.DeleteMandate(rec, req)
			require.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestMandateHandler_PostDeactivate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		mockSetup      func(m *MockMandateLifecycle)
		expectedStatus int
	}{
		{
			name: "deactivated",
			mockSetup: func(m *MockMandateLifecycle) {
				m.EXPECT().
					Deactivate(gomock.Any(), "0015-0013-CH-SPRING2021").
					Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "not_found",
			mockSetup: func(m *MockMandateLifecycle) {
				m.EXPECT().
					Deactivate(gomock.Any(), "0015-0013-CH-SPRING2021").
					Return(core.ErrMandateNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			lifecycle := NewMockMandateLifecycle(ctrl)
			tt.mockSetup(lifecycle)

			handler := NewMandateHandler(lifecycle, testLogger())

			req := httptest.NewRequest(http.MethodPost, "/mandates/0015-0013-CH-SPRING2021/deactivate", nil)
			req.SetPathValue("reference", "0015-0013-CH-SPRING2021")
			rec := httptest.NewRecorder()

			handler.PostDeactivate(rec, req)
			require.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
