package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/dto"
	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/handlers"
	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/middleware"
	"github.com/sahilbrid/nyaay-saathi/internal/domain"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/category"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/document"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
	"github.com/sahilbrid/nyaay-saathi/mocks"
)

func newSessionHandler(t *testing.T) (*handlers.SessionHandler, *mocks.MockDocumentService) {
	t.Helper()
	svc := mocks.NewMockDocumentService(t)
	return handlers.NewSessionHandler(svc), svc
}

// --- StartSession / EndSession ---

func TestStartSession_ReturnsIDInHeaderAndBody(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().StartSession(mock.Anything).Return(ports.StateView{
		SessionID: testSessionID,
		State:     document.Empty(),
		Persisted: true,
	}, nil)

	rec := httptest.NewRecorder()
	h.StartSession(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))

	requireStatus(t, rec, http.StatusCreated)
	assert.Equal(t, testSessionID, rec.Header().Get(middleware.HeaderSessionID))

	resp := decodeJSON[dto.StateResponse](t, rec)
	assert.Equal(t, testSessionID, resp.SessionID)
	assert.Empty(t, resp.Category)
	assert.NotNil(t, resp.FormData)
}

func TestEndSession_NoContent(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().EndSession(mock.Anything, testSessionID).Return(nil)

	rec := httptest.NewRecorder()
	h.EndSession(rec, withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/current", nil)))

	requireStatus(t, rec, http.StatusNoContent)
}

func TestEndSession_MissingSession(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().EndSession(mock.Anything, "").
		Return(domain.NewValidationError(map[string]string{"session_id": domain.MsgRequired}))

	rec := httptest.NewRecorder()
	h.EndSession(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/current", nil))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "header.X-Session-ID", resp.Errors[0].Location)
}

// --- GetState ---

func TestGetState_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().State(mock.Anything, testSessionID).Return(wageTheftState(), nil)

	rec := httptest.NewRecorder()
	h.GetState(rec, withSession(httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.StateResponse](t, rec)
	assert.Equal(t, category.WageTheft, resp.Category)
	assert.Equal(t, "Acme Co", resp.FormData["employerName"])
	assert.True(t, resp.Persisted)
}

// --- SelectCategory ---

func TestSelectCategory_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().SelectCategory(mock.Anything, testSessionID, category.WageTheft).Return(wageTheftState(), nil)

	rec := httptest.NewRecorder()
	body := jsonBody(t, dto.SelectCategoryRequest{Category: category.WageTheft})
	h.SelectCategory(rec, withSession(httptest.NewRequest(http.MethodPut, "/api/v1/state/category", body)))

	requireStatus(t, rec, http.StatusOK)
}

func TestSelectCategory_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"invalid JSON", `{not json`},
		{"missing category", `{}`},
		{"blank category", `{"category":"  "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newSessionHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/state/category", bytes.NewBufferString(tt.body))
			h.SelectCategory(rec, withSession(req))

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

func TestSelectCategory_UnknownCategory(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().SelectCategory(mock.Anything, testSessionID, "tax-appeal").
		Return(ports.StateView{}, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	body := jsonBody(t, dto.SelectCategoryRequest{Category: "tax-appeal"})
	h.SelectCategory(rec, withSession(httptest.NewRequest(http.MethodPut, "/api/v1/state/category", body)))

	requireStatus(t, rec, http.StatusNotFound)
}

// --- UpdateFormData ---

func TestUpdateFormData_ReportsIssuesWithOK(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	view := wageTheftState()
	view.Issues = map[string]string{"unpaidAmount": "Please enter a valid amount"}
	svc.EXPECT().UpdateFormData(mock.Anything, testSessionID, form.Values{"unpaidAmount": "lots"}).Return(view, nil)

	rec := httptest.NewRecorder()
	body := jsonBody(t, dto.FormDataRequest{FormData: map[string]string{"unpaidAmount": "lots"}})
	h.UpdateFormData(rec, withSession(httptest.NewRequest(http.MethodPatch, "/api/v1/state/form-data", body)))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.StateResponse](t, rec)
	assert.Equal(t, "Please enter a valid amount", resp.Issues["unpaidAmount"])
}

func TestUpdateFormData_MissingFormData(t *testing.T) {
	t.Parallel()
	h, _ := newSessionHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/state/form-data", bytes.NewBufferString(`{}`))
	h.UpdateFormData(rec, withSession(req))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "body.form_data", resp.Errors[0].Location)
}

func TestUpdateFormData_StorageUnavailable(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().UpdateFormData(mock.Anything, testSessionID, mock.Anything).
		Return(ports.StateView{}, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	body := jsonBody(t, dto.FormDataRequest{FormData: map[string]string{"fullName": "Jane Doe"}})
	h.UpdateFormData(rec, withSession(httptest.NewRequest(http.MethodPatch, "/api/v1/state/form-data", body)))

	requireStatus(t, rec, http.StatusServiceUnavailable)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	assert.True(t, resp.Retryable)
}

// --- ResetState ---

func TestResetState_ReturnsEmptyState(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().Reset(mock.Anything, testSessionID).Return(ports.StateView{
		SessionID: testSessionID,
		State:     document.Empty(),
		Persisted: true,
	}, nil)

	rec := httptest.NewRecorder()
	h.ResetState(rec, withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/state", nil)))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.StateResponse](t, rec)
	assert.Empty(t, resp.Category)
	assert.Empty(t, resp.FormData)
	assert.False(t, resp.Complete)
}
