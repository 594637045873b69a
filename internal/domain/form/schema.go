package form

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sahilbrid/nyaay-saathi/internal/domain"
)

// DateLayout is the wire format of date fields.
const DateLayout = "2006-01-02"

const (
	msgInvalidEmail  = "Please enter a valid email address"
	msgInvalidDate   = "must be a date in YYYY-MM-DD format"
	msgInvalidAmount = "must be a numeric amount"
)

// amountPattern accepts "1200", "1200.50", "$1,200" and "1,200.00".
var amountPattern = regexp.MustCompile(`^\$?(\d{1,3}(,\d{3})+|\d+)(\.\d+)?$`)

// emailPattern requires a dotted domain with an alphabetic top-level label.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)*\.[a-zA-Z]{2,}$`)

// IsAmount reports whether v is a plain or formatted numeric amount.
func IsAmount(v string) bool {
	return amountPattern.MatchString(v)
}

// Field is one entry of a Schema.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	// MinLength is the minimum rune count of a non-empty value; zero disables it.
	MinLength int
	// Message is reported when MinLength is not met.
	Message string
}

// Check validates a single value and returns the failure message, or "" when
// the value is acceptable. Empty optional values are always acceptable.
func (f Field) Check(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		if f.Required {
			return f.requiredMessage()
		}
		return ""
	}

	if f.MinLength > 0 && utf8.RuneCountInString(v) < f.MinLength {
		return f.requiredMessage()
	}

	switch f.Kind {
	case KindEmail:
		if !emailPattern.MatchString(v) {
			return msgInvalidEmail
		}
	case KindDate:
		if _, err := time.Parse(DateLayout, v); err != nil {
			return msgInvalidDate
		}
	case KindNumeric:
		if !IsAmount(v) {
			return msgInvalidAmount
		}
	case KindText, KindTextArea, KindTel:
	}
	return ""
}

func (f Field) requiredMessage() string {
	if f.Message != "" {
		return f.Message
	}
	return domain.MsgRequired
}

// Schema is the ordered validation contract of a category.
type Schema struct {
	Fields []Field
}

// Names returns the field names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Field looks up a field by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Defaults returns every schema field mapped to the empty string. Date fields
// are empty too, so callers can tell "untouched" from "invalid date".
func (s Schema) Defaults() Values {
	out := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		out[f.Name] = ""
	}
	return out
}

// Validate checks every schema field against v and returns a
// *domain.ValidationError listing each failing field, or nil.
// Keys of v that are not in the schema are ignored.
func (s Schema) Validate(v Values) error {
	fields := make(map[string]string)
	for _, f := range s.Fields {
		if msg := f.Check(v[f.Name]); msg != "" {
			fields[f.Name] = msg
		}
	}
	return domain.NewValidationError(fields)
}

// ValidatePartial checks only the schema fields present in v. It backs
// inline validation of a single edit, where untouched fields must not be
// reported yet.
func (s Schema) ValidatePartial(v Values) error {
	fields := make(map[string]string)
	for _, f := range s.Fields {
		value, ok := v[f.Name]
		if !ok {
			continue
		}
		if msg := f.Check(value); msg != "" {
			fields[f.Name] = msg
		}
	}
	return domain.NewValidationError(fields)
}
