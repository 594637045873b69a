// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/sahilbrid/nyaay-saathi/internal/domain/category"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

// CategoryResponse represents a single category in HTTP responses.
type CategoryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

// CategoryListResponse represents the category list.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Count      int                `json:"count"`
}

// ToCategoryResponse converts a domain Category to its HTTP representation.
func ToCategoryResponse(c category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
	}
}

// ToCategoryListResponse converts categories, keeping their order.
func ToCategoryListResponse(cats []category.Category) CategoryListResponse {
	items := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		items[i] = ToCategoryResponse(c)
	}
	return CategoryListResponse{Categories: items, Count: len(items)}
}

// StateResponse is a session's document state.
type StateResponse struct {
	SessionID string            `json:"session_id"`
	Category  string            `json:"category"`
	FormData  map[string]string `json:"form_data"`
	Complete  bool              `json:"complete"`
	Persisted bool              `json:"persisted"`
	Issues    map[string]string `json:"issues,omitempty"`
}

// ToStateResponse converts a service StateView.
func ToStateResponse(v ports.StateView) StateResponse {
	data := v.State.FormData
	if data == nil {
		data = form.Values{}
	}
	return StateResponse{
		SessionID: v.SessionID,
		Category:  v.State.Category,
		FormData:  data,
		Complete:  v.Complete,
		Persisted: v.Persisted,
		Issues:    v.Issues,
	}
}

// FieldResponse is one input of a form section.
type FieldResponse struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Input    string `json:"input"`
	Required bool   `json:"required"`
}

// SectionResponse is one titled group of form inputs.
type SectionResponse struct {
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Fields      []FieldResponse `json:"fields"`
}

// RuleResponse is the validation rule of one field.
type RuleResponse struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Required  bool   `json:"required"`
	MinLength int    `json:"min_length,omitempty"`
	Message   string `json:"message,omitempty"`
}

// FormResponse is the complete contract of a category form. NotFound is set,
// and Category omitted, when the requested category does not exist; the
// sections then hold only the shared personal section.
type FormResponse struct {
	CategoryID    string            `json:"category_id"`
	Category      *CategoryResponse `json:"category,omitempty"`
	NotFound      bool              `json:"not_found"`
	Sections      []SectionResponse `json:"sections"`
	Rules         []RuleResponse    `json:"rules"`
	InitialValues map[string]string `json:"initial_values"`
}

// ToFormResponse converts a service FormView.
func ToFormResponse(v ports.FormView) FormResponse {
	resp := FormResponse{
		CategoryID:    v.CategoryID,
		NotFound:      !v.Found,
		Sections:      make([]SectionResponse, len(v.Layout.Sections)),
		Rules:         make([]RuleResponse, len(v.Schema.Fields)),
		InitialValues: v.InitialValues,
	}
	if v.Category != nil {
		c := ToCategoryResponse(*v.Category)
		resp.Category = &c
	}

	for i, s := range v.Layout.Sections {
		fields := make([]FieldResponse, len(s.Fields))
		for j, f := range s.Fields {
			fields[j] = FieldResponse{Name: f.Name, Label: f.Label, Input: f.Input, Required: f.Required}
		}
		resp.Sections[i] = SectionResponse{
			Name:        s.Name,
			Title:       s.Title,
			Description: s.Description,
			Fields:      fields,
		}
	}

	for i, f := range v.Schema.Fields {
		resp.Rules[i] = RuleResponse{
			Name:      f.Name,
			Kind:      string(f.Kind),
			Required:  f.Required,
			MinLength: f.MinLength,
			Message:   f.Message,
		}
	}

	if resp.InitialValues == nil {
		resp.InitialValues = map[string]string{}
	}
	return resp
}

// HealthResponse represents the response body for health check endpoints.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
