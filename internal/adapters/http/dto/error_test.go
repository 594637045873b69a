package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/dto"
	"github.com/sahilbrid/nyaay-saathi/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantTitle     string
		wantRetryable bool
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "Not Found", false},
		{
			"validation",
			&domain.ValidationError{Fields: map[string]string{"fullName": "Full name is required"}},
			http.StatusBadRequest, "Bad Request", false,
		},
		{"incomplete document", domain.ErrIncomplete, http.StatusConflict, "Conflict", false},
		{"conflict", domain.ErrConflict, http.StatusConflict, "Conflict", false},
		{
			"export failure",
			fmt.Errorf("%w: rasterize: %w", domain.ErrExport, errors.New("chrome crashed")),
			http.StatusBadGateway, "Bad Gateway", true,
		},
		{"unavailable", domain.ErrUnavailable, http.StatusServiceUnavailable, "Service Unavailable", true},
		{"deadline", fmt.Errorf("render: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "Gateway Timeout", true},
		{"unknown error", errors.New("oops"), http.StatusInternalServerError, "Internal Server Error", false},
		{
			"wrapped not found",
			fmt.Errorf(`category "x": %w`, domain.ErrNotFound),
			http.StatusNotFound, "Not Found", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/api/v1/previews/wage-theft", nil)
			got := dto.NewErrorResponse(r, tt.err)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantRetryable, got.Retryable)
			assert.Equal(t, "about:blank", got.Type)
			assert.Equal(t, "/api/v1/previews/wage-theft", got.Instance)
			assert.Equal(t, tt.err.Error(), got.Detail)
		})
	}
}

func TestNewErrorResponse_ValidationDetails(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"zipCode":    "Valid ZIP code is required",
		"email":      "Please enter a valid email address",
		"session_id": "is required",
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/forms/wage-theft/submit", nil)
	got := dto.NewErrorResponse(r, verr)

	assert.Equal(t, []dto.ErrorDetail{
		{Location: "body.email", Message: "Please enter a valid email address"},
		{Location: "body.zipCode", Message: "Valid ZIP code is required"},
		{Location: "header.X-Session-ID", Message: "is required"},
	}, got.Errors)
}

func TestNewErrorResponse_NoDetailsForOtherErrors(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/categories/x", nil)
	assert.Nil(t, dto.NewErrorResponse(r, domain.ErrNotFound).Errors)
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/exports/wage-theft", nil)

	dto.WriteErrorResponse(w, r, fmt.Errorf("session abc: %w", domain.ErrIncomplete))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.Contains(t, resp.Detail, "document incomplete")
}
