package handlers

import (
	"net/http"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/dto"
	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/middleware"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

// SessionHandler serves session lifecycle and document state endpoints.
type SessionHandler struct {
	svc ports.DocumentService
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc ports.DocumentService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// StartSession handles POST /api/v1/sessions. The new ID is returned in the
// body and in the X-Session-ID header.
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.StartSession(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set(middleware.HeaderSessionID, view.SessionID)
	writeJSON(w, http.StatusCreated, dto.ToStateResponse(view))
}

// EndSession handles DELETE /api/v1/sessions/current.
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.EndSession(r.Context(), sessionID(r)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetState handles GET /api/v1/state.
func (h *SessionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.svc.State(r.Context(), sessionID(r)))
}

// SelectCategory handles PUT /api/v1/state/category.
func (h *SessionHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectCategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.respond(w, r)(h.svc.SelectCategory(r.Context(), sessionID(r), req.Category))
}

// UpdateFormData handles PATCH /api/v1/state/form-data. Field problems are
// returned in the issues object with a 200 status.
func (h *SessionHandler) UpdateFormData(w http.ResponseWriter, r *http.Request) {
	var req dto.FormDataRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.respond(w, r)(h.svc.UpdateFormData(r.Context(), sessionID(r), req.Values()))
}

// ResetState handles DELETE /api/v1/state.
func (h *SessionHandler) ResetState(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.svc.Reset(r.Context(), sessionID(r)))
}

func (h *SessionHandler) respond(w http.ResponseWriter, r *http.Request) func(ports.StateView, error) {
	return func(view ports.StateView, err error) {
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dto.ToStateResponse(view))
	}
}
