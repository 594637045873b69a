package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/dto"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

// DocumentHandler serves category forms and the rendered document outputs.
type DocumentHandler struct {
	svc ports.DocumentService
}

// NewDocumentHandler creates a DocumentHandler.
func NewDocumentHandler(svc ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// GetForm handles GET /api/v1/forms/{id}. An unknown category yields 200 with
// not_found set and the personal section only.
func (h *DocumentHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Form(r.Context(), sessionID(r), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToFormResponse(view))
}

// SubmitForm handles POST /api/v1/forms/{id}/submit.
func (h *DocumentHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	var req dto.FormDataRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.Submit(r.Context(), sessionID(r), chi.URLParam(r, "id"), req.Values())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToStateResponse(view))
}

// Preview handles GET /api/v1/previews/{id}.
func (h *DocumentHandler) Preview(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Preview(r.Context(), sessionID(r), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeHTML(w, r, page)
}

// Export handles POST /api/v1/exports/{id}.
func (h *DocumentHandler) Export(w http.ResponseWriter, r *http.Request) {
	artifact, err := h.svc.Export(r.Context(), sessionID(r), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeArtifact(w, r, artifact, "attachment")
}

// Print handles GET /api/v1/prints/{id}?engine=html|chrome. The engine
// defaults to html.
func (h *DocumentHandler) Print(w http.ResponseWriter, r *http.Request) {
	engine := ports.PrintEngine(r.URL.Query().Get("engine"))
	if engine == "" {
		engine = ports.PrintEngineHTML
	}

	artifact, err := h.svc.Print(r.Context(), sessionID(r), chi.URLParam(r, "id"), engine)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	disposition := "attachment"
	if engine == ports.PrintEngineHTML {
		disposition = "inline"
	}
	writeArtifact(w, r, artifact, disposition)
}
