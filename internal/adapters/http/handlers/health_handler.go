package handlers

import (
	"log/slog"
	"net/http"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/dto"
	"github.com/sahilbrid/nyaay-saathi/internal/platform/logging"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. It answers 503 while the snapshot
// store or the browser is unusable, naming the failing checks.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.HealthResponse{Status: statusReady, Checks: map[string]string{}}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.String("check", name),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, resp)
}
