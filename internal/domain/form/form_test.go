package form_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
)

func TestValues_Merge(t *testing.T) {
	t.Parallel()

	base := form.Values{"fullName": "Asha", "city": "Pune"}
	merged := base.Merge(form.Values{"city": "Mumbai", "state": "MH"})

	want := form.Values{"fullName": "Asha", "city": "Mumbai", "state": "MH"}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
	if base["city"] != "Pune" {
		t.Errorf("Merge() modified receiver: city = %q", base["city"])
	}
}

func TestValues_CloneNil(t *testing.T) {
	t.Parallel()

	var v form.Values
	c := v.Clone()
	if c == nil {
		t.Fatal("Clone(nil) = nil, want empty map")
	}
	c["a"] = "b"
	if len(v) != 0 {
		t.Error("Clone() shares storage with receiver")
	}
}

func TestKind_Input(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind form.Kind
		want string
	}{
		{form.KindNumeric, "text"},
		{form.KindDate, "date"},
		{form.KindTextArea, "textarea"},
		{form.KindEmail, "email"},
	}
	for _, tt := range tests {
		if got := tt.kind.Input(); got != tt.want {
			t.Errorf("%s.Input() = %q, want %q", tt.kind, got, tt.want)
		}
	}
	if form.Kind("color").IsValid() {
		t.Error(`Kind("color").IsValid() = true, want false`)
	}
}

func TestLayout_FieldNames(t *testing.T) {
	t.Parallel()

	l := form.Layout{Sections: []form.Section{
		{Name: "a", Fields: []form.FieldDescriptor{{Name: "x"}, {Name: "y"}}},
		{Name: "b", Fields: []form.FieldDescriptor{{Name: "z"}}},
	}}

	if diff := cmp.Diff([]string{"x", "y", "z"}, l.FieldNames()); diff != "" {
		t.Errorf("FieldNames() mismatch (-want +got):\n%s", diff)
	}
	if s, ok := l.Section("b"); !ok || len(s.Fields) != 1 {
		t.Errorf("Section(b) = %+v, %v", s, ok)
	}
}
