package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/middleware"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/category"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/document"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

const testSessionID = "7d0f3f52-8a43-4a4f-9a55-0c2b4b1de7a1"

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withSession stores the test session ID the way the Session middleware does.
func withSession(r *http.Request) *http.Request {
	return r.WithContext(middleware.WithSessionID(r.Context(), testSessionID))
}

func wageTheft() category.Category {
	c, _ := category.Default().Get(category.WageTheft)
	return c
}

func wageTheftState() ports.StateView {
	return ports.StateView{
		SessionID: testSessionID,
		State: document.State{
			Category: category.WageTheft,
			FormData: form.Values{"employerName": "Acme Co", "unpaidAmount": "1200"},
		},
		Persisted: true,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
