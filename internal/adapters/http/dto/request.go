package dto

import (
	"strings"

	"github.com/sahilbrid/nyaay-saathi/internal/domain"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
)

// SelectCategoryRequest is the JSON body of PUT /state/category.
type SelectCategoryRequest struct {
	Category string `json:"category"`
}

// Validate checks that a category is named.
// Returns a *domain.ValidationError if any checks fail.
func (r *SelectCategoryRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Category) == "" {
		fields["category"] = domain.MsgRequired
	}

	return domain.NewValidationError(fields)
}

// FormDataRequest is the JSON body of PATCH /state/form-data and of form
// submission. Keys are form field names.
type FormDataRequest struct {
	FormData map[string]string `json:"form_data"`
}

// Validate checks that the form_data object is present. Field values are
// checked by the form schema, not here.
func (r *FormDataRequest) Validate() error {
	fields := make(map[string]string)

	if r.FormData == nil {
		fields["form_data"] = domain.MsgRequired
	}

	return domain.NewValidationError(fields)
}

// Values returns the request data as form values.
func (r *FormDataRequest) Values() form.Values {
	return form.Values(r.FormData)
}
