package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/dto"
	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/handlers"
	"github.com/sahilbrid/nyaay-saathi/internal/domain"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/category"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
	"github.com/sahilbrid/nyaay-saathi/mocks"
)

func newDocumentHandler(t *testing.T) (*handlers.DocumentHandler, *mocks.MockDocumentService) {
	t.Helper()
	svc := mocks.NewMockDocumentService(t)
	return handlers.NewDocumentHandler(svc), svc
}

func documentRequest(method, target, id string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return withSession(withChiParams(req, map[string]string{"id": id}))
}

// --- GetForm ---

func TestGetForm_KnownCategory(t *testing.T) {
	t.Parallel()
	h, svc := newDocumentHandler(t)

	cat := wageTheft()
	svc.EXPECT().Form(mock.Anything, testSessionID, category.WageTheft).Return(ports.FormView{
		CategoryID: category.WageTheft,
		Category:   &cat,
		Found:      true,
		Layout: form.Layout{Sections: []form.Section{{
			Name:   "employerDetails",
			Title:  "Employer Information",
			Fields: []form.FieldDescriptor{{Name: "employerName", Label: "Employer/Company Name", Input: "text", Required: true}},
		}}},
		Schema:        form.Schema{Fields: []form.Field{{Name: "employerName", Kind: form.KindText, Required: true, MinLength: 2}}},
		InitialValues: form.Values{"employerName": ""},
	}, nil)

	rec := httptest.NewRecorder()
	h.GetForm(rec, documentRequest(http.MethodGet, "/api/v1/forms/wage-theft", category.WageTheft))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.FormResponse](t, rec)
	assert.False(t, resp.NotFound)
	require.NotNil(t, resp.Category)
	require.Len(t, resp.Sections, 1)
	assert.Equal(t, "employerName", resp.Sections[0].Fields[0].Name)
	require.Len(t, resp.Rules, 1)
	assert.Equal(t, 2, resp.Rules[0].MinLength)
}

func TestGetForm_UnknownCategoryIsNotAnError(t *testing.T) {
	t.Parallel()
	h, svc := newDocumentHandler(t)

	svc.EXPECT().Form(mock.Anything, testSessionID, "tax-appeal").Return(ports.FormView{
		CategoryID: "tax-appeal",
		Layout:     form.Layout{Sections: []form.Section{{Name: "personal", Title: "Personal Information"}}},
	}, nil)

	rec := httptest.NewRecorder()
	h.GetForm(rec, documentRequest(http.MethodGet, "/api/v1/forms/tax-appeal", "tax-appeal"))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.FormResponse](t, rec)
	assert.True(t, resp.NotFound)
	assert.Nil(t, resp.Category)
	require.Len(t, resp.Sections, 1)
	assert.Equal(t, "personal", resp.Sections[0].Name)
}

// --- SubmitForm ---

func TestSubmitForm_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDocumentHandler(t)

	values := form.Values{"employerName": "Acme Co"}
	svc.EXPECT().Submit(mock.Anything, testSessionID, category.WageTheft, values).Return(wageTheftState(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/wage-theft/submit",
		jsonBody(t, dto.FormDataRequest{FormData: values}))
	req = withSession(withChiParams(req, map[string]string{"id": category.WageTheft}))
	h.SubmitForm(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestSubmitForm_FieldFailures(t *testing.T) {
	t.Parallel()
	h, svc := newDocumentHandler(t)

	svc.EXPECT().Submit(mock.Anything, testSessionID, category.WageTheft, mock.Anything).
		Return(ports.StateView{}, domain.NewValidationError(map[string]string{
			"employerName": "Employer name is required",
			"unpaidAmount": "Please enter a valid amount",
		}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/wage-theft/submit",
		jsonBody(t, dto.FormDataRequest{FormData: map[string]string{"unpaidAmount": "x"}}))
	req = withSession(withChiParams(req, map[string]string{"id": category.WageTheft}))
	h.SubmitForm(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "body.employerName", resp.Errors[0].Location)
	assert.Equal(t, "body.unpaidAmount", resp.Errors[1].Location)
}

// --- Preview ---

func TestPreview_WritesHTML(t *testing.T) {
	t.Parallel()
	h, svc := newDocumentHandler(t)

	svc.EXPECT().Preview(mock.Anything, testSessionID, category.WageTheft).
		Return("<html><body><h1>WAGE CLAIM</h1></body></html>", nil)

	rec := httptest.NewRecorder()
	h.Preview(rec, documentRequest(http.MethodGet, "/api/v1/previews/wage-theft", category.WageTheft))

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "WAGE CLAIM")
}

func TestPreview_Incomplete(t *testing.T) {
	t.Parallel()
	h, svc := newDocumentHandler(t)

	svc.EXPECT().Preview(mock.Anything, testSessionID, category.WageTheft).Return("", domain.ErrIncomplete)

	rec := httptest.NewRecorder()
	h.Preview(rec, documentRequest(http.MethodGet, "/api/v1/previews/wage-theft", category.WageTheft))

	requireStatus(t, rec, http.StatusConflict)
}

// --- Export ---

func TestExport_WritesAttachment(t *testing.T) {
	t.Parallel()
	h, svc := newDocumentHandler(t)

	pdf := []byte("%PDF-1.3 fake")
	svc.EXPECT().Export(mock.Anything, testSessionID, category.WageTheft).Return(ports.Artifact{
		Filename:    "wage-theft-claim.pdf",
		ContentType: "application/pdf",
		Data:        pdf,
		Pages:       2,
	}, nil)

	rec := httptest.NewRecorder()
	h.Export(rec, documentRequest(http.MethodPost, "/api/v1/exports/wage-theft", category.WageTheft))

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="wage-theft-claim.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "2", rec.Header().Get("X-Page-Count"))
	assert.Equal(t, pdf, rec.Body.Bytes())
}

func TestExport_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		status    int
		retryable bool
	}{
		{"unknown category", domain.ErrNotFound, http.StatusNotFound, false},
		{"no form data", domain.ErrIncomplete, http.StatusConflict, false},
		{"rasterization failed", fmt.Errorf("rasterize: %w", domain.ErrExport), http.StatusBadGateway, true},
		{"browser unavailable", fmt.Errorf("%w: browser", domain.ErrUnavailable), http.StatusServiceUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newDocumentHandler(t)

			svc.EXPECT().Export(mock.Anything, testSessionID, category.WageTheft).Return(ports.Artifact{}, tt.err)

			rec := httptest.NewRecorder()
			h.Export(rec, documentRequest(http.MethodPost, "/api/v1/exports/wage-theft", category.WageTheft))

			requireStatus(t, rec, tt.status)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			assert.Equal(t, tt.retryable, resp.Retryable)
		})
	}
}

// --- Print ---

func TestPrint_DefaultsToHTMLInline(t *testing.T) {
	t.Parallel()
	h, svc := newDocumentHandler(t)

	svc.EXPECT().Print(mock.Anything, testSessionID, category.WageTheft, ports.PrintEngineHTML).Return(ports.Artifact{
		Filename:    "wage-theft-claim.html",
		ContentType: "text/html; charset=utf-8",
		Data:        []byte("<html></html>"),
	}, nil)

	rec := httptest.NewRecorder()
	h.Print(rec, documentRequest(http.MethodGet, "/api/v1/prints/wage-theft", category.WageTheft))

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, `inline; filename="wage-theft-claim.html"`, rec.Header().Get("Content-Disposition"))
	assert.Empty(t, rec.Header().Get("X-Page-Count"))
}

func TestPrint_ChromeEngine(t *testing.T) {
	t.Parallel()
	h, svc := newDocumentHandler(t)

	svc.EXPECT().Print(mock.Anything, testSessionID, category.WageTheft, ports.PrintEngineChrome).Return(ports.Artifact{
		Filename:    "wage-theft-claim.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF"),
	}, nil)

	rec := httptest.NewRecorder()
	h.Print(rec, documentRequest(http.MethodGet, "/api/v1/prints/wage-theft?engine=chrome", category.WageTheft))

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, `attachment; filename="wage-theft-claim.pdf"`, rec.Header().Get("Content-Disposition"))
}

func TestPrint_UnknownEngine(t *testing.T) {
	t.Parallel()
	h, svc := newDocumentHandler(t)

	svc.EXPECT().Print(mock.Anything, testSessionID, category.WageTheft, ports.PrintEngine("laser")).
		Return(ports.Artifact{}, domain.NewValidationError(map[string]string{"engine": "must be one of: html, chrome"}))

	rec := httptest.NewRecorder()
	h.Print(rec, documentRequest(http.MethodGet, "/api/v1/prints/wage-theft?engine=laser", category.WageTheft))

	requireStatus(t, rec, http.StatusBadRequest)
}
