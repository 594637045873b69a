// Package document holds the session-scoped document state and its durable
// snapshot form.
package document

import "github.com/sahilbrid/nyaay-saathi/internal/domain/form"

// State is the in-progress document of one session: the selected category
// and the field values entered so far.
//
// State values are treated as immutable. Every mutator returns a new State
// and never writes into the receiver's FormData map, so a State read from a
// shared reference can be used without copying.
type State struct {
	Category string      `json:"category"`
	FormData form.Values `json:"formData"`
}

// Empty returns the initial state: no category and no form data.
func Empty() State {
	return State{FormData: form.Values{}}
}

// WithCategory returns s with the category replaced. Form data is kept even
// when the category changes; see InitialValues.
func (s State) WithCategory(id string) State {
	return State{Category: id, FormData: s.FormData}
}

// WithFormData returns s with partial merged key by key into its form data.
func (s State) WithFormData(partial form.Values) State {
	return State{Category: s.Category, FormData: s.FormData.Merge(partial)}
}

// HasFormData reports whether any field value has been stored.
func (s State) HasFormData() bool {
	return len(s.FormData) > 0
}

// InitialValues returns the values a form for categoryID starts from: the
// stored form data when it belongs to categoryID, otherwise defaults.
// Stale data from another category never leaks into a new form.
func (s State) InitialValues(categoryID string, defaults form.Values) form.Values {
	if s.Category == categoryID && s.HasFormData() {
		return s.FormData.Clone()
	}
	return defaults.Clone()
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{Category: s.Category, FormData: s.FormData.Clone()}
}
