package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
)

func TestState_WithCategoryKeepsFormData(t *testing.T) {
	t.Parallel()

	s := Empty().
		WithFormData(form.Values{"fullName": "Asha Rao"}).
		WithCategory("wage-theft").
		WithCategory("family-law")

	assert.Equal(t, "family-law", s.Category)
	assert.Equal(t, form.Values{"fullName": "Asha Rao"}, s.FormData)
}

func TestState_WithFormDataMerges(t *testing.T) {
	t.Parallel()

	before := Empty().WithFormData(form.Values{"fullName": "Asha", "city": "Pune"})
	after := before.WithFormData(form.Values{"fullName": "Asha Rao", "state": "MH"})

	assert.Equal(t, form.Values{"fullName": "Asha Rao", "city": "Pune", "state": "MH"}, after.FormData)
	// The earlier state is not modified.
	assert.Equal(t, form.Values{"fullName": "Asha", "city": "Pune"}, before.FormData)
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	s := Empty()
	assert.Empty(t, s.Category)
	require.NotNil(t, s.FormData)
	assert.False(t, s.HasFormData())
}

func TestState_InitialValues(t *testing.T) {
	t.Parallel()

	defaults := form.Values{"fullName": "", "employerName": ""}
	stored := form.Values{"fullName": "Asha Rao"}

	tests := []struct {
		name     string
		state    State
		category string
		want     form.Values
	}{
		{
			name:     "same category with data uses stored values",
			state:    State{Category: "wage-theft", FormData: stored},
			category: "wage-theft",
			want:     stored,
		},
		{
			name:     "different category uses defaults",
			state:    State{Category: "family-law", FormData: stored},
			category: "wage-theft",
			want:     defaults,
		},
		{
			name:     "same category without data uses defaults",
			state:    State{Category: "wage-theft", FormData: form.Values{}},
			category: "wage-theft",
			want:     defaults,
		},
		{
			name:     "no category uses defaults",
			state:    State{FormData: stored},
			category: "wage-theft",
			want:     defaults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.state.InitialValues(tt.category, defaults))
		})
	}
}

func TestState_InitialValuesReturnsCopy(t *testing.T) {
	t.Parallel()

	s := State{Category: "wage-theft", FormData: form.Values{"fullName": "Asha"}}
	got := s.InitialValues("wage-theft", nil)
	got["fullName"] = "changed"

	assert.Equal(t, "Asha", s.FormData["fullName"])
}

func TestState_Clone(t *testing.T) {
	t.Parallel()

	s := State{Category: "wage-theft", FormData: form.Values{"a": "1"}}
	c := s.Clone()
	c.FormData["a"] = "2"

	assert.Equal(t, "1", s.FormData["a"])
	assert.Equal(t, s.Category, c.Category)
}
