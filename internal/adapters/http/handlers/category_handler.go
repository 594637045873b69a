package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/dto"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

// CategoryHandler serves the category catalog.
type CategoryHandler struct {
	svc ports.DocumentService
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc ports.DocumentService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// ListCategories handles GET /api/v1/categories.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToCategoryListResponse(h.svc.ListCategories(r.Context())))
}

// GetCategory handles GET /api/v1/categories/{id}.
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	cat, err := h.svc.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToCategoryResponse(cat))
}
