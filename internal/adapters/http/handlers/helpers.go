package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/dto"
	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/middleware"
	"github.com/sahilbrid/nyaay-saathi/internal/domain"
	"github.com/sahilbrid/nyaay-saathi/internal/platform/logging"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

// sessionID returns the session of the request as set by the Session
// middleware. An empty ID is passed on so the service reports it.
func sessionID(r *http.Request) string {
	return middleware.SessionIDFromContext(r.Context())
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeHTML writes a complete HTML page.
func writeHTML(w http.ResponseWriter, r *http.Request, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(page)); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "failed to write page", slog.Any("error", err))
	}
}

// writeArtifact writes a download. disposition is "attachment" for files the
// browser should save and "inline" for pages it should show.
func writeArtifact(w http.ResponseWriter, r *http.Request, a ports.Artifact, disposition string) {
	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(a.Data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, a.Filename))
	if a.Pages > 0 {
		w.Header().Set("X-Page-Count", strconv.Itoa(a.Pages))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(a.Data); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "failed to write artifact",
			slog.String("filename", a.Filename),
			slog.Any("error", err),
		)
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError(map[string]string{"body": "invalid JSON"}))
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
