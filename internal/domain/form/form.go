// Package form defines the per-category form contract: the validation schema,
// the grouped field layout, and the field values a user submits.
package form

import "maps"

// Kind is the value type of a schema field.
type Kind string

const (
	KindText     Kind = "text"
	KindTextArea Kind = "textarea"
	KindEmail    Kind = "email"
	KindTel      Kind = "tel"
	KindDate     Kind = "date"
	KindNumeric  Kind = "numeric"
)

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindText, KindTextArea, KindEmail, KindTel, KindDate, KindNumeric:
		return true
	default:
		return false
	}
}

// Input returns the input control used to edit a field of this kind.
// Numeric amounts are edited as free text so users can type "$1,200".
func (k Kind) Input() string {
	if k == KindNumeric {
		return string(KindText)
	}
	return string(k)
}

// Values maps field names to their raw string values. Dates are ISO
// "YYYY-MM-DD" strings and untouched fields are empty strings.
type Values map[string]string

// Clone returns a shallow copy of v. A nil map clones to an empty map.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	maps.Copy(out, v)
	return out
}

// Merge returns a new map holding v overwritten key by key with partial.
// Neither input is modified.
func (v Values) Merge(partial Values) Values {
	out := make(Values, len(v)+len(partial))
	maps.Copy(out, v)
	maps.Copy(out, partial)
	return out
}
