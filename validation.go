package propfolio

import (
	"fmt"
	"strings"
	"time"
)

// FieldError is a single validation problem, tied to the input field that
// caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult accumulates every problem found during one validation
// pass over an input record. Helpers append errors and return whether the
// individual check passed, but never stop subsequent checks from running:
// a form must report all of its problems in one round trip.
//
// A ValidationResult belongs to a single validation invocation and must not
// be shared across concurrent analyses.
type ValidationResult struct {
	errors []FieldError
}

// NewValidationResult creates an empty accumulator for one validation pass.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{}
}

// Add records a validation error against a field.
func (v *ValidationResult) Add(field, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

// IsValid reports whether the pass found no errors.
func (v *ValidationResult) IsValid() bool { return len(v.errors) == 0 }

// Errors returns the accumulated errors in the order they were found.
func (v *ValidationResult) Errors() []FieldError {
	out := make([]FieldError, len(v.errors))
	copy(out, v.errors)
	return out
}

// ErrorMessages groups the human-readable messages by field name. This is the
// shape external callers (forms, API handlers) render to users.
func (v *ValidationResult) ErrorMessages() map[string][]string {
	out := make(map[string][]string, len(v.errors))
	for _, e := range v.errors {
		out[e.Field] = append(out[e.Field], e.Message)
	}
	return out
}

// Error renders the result as a single string, one problem per line.
func (v *ValidationResult) Error() string {
	var b strings.Builder
	for i, e := range v.errors {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", e.Field, e.Message)
	}
	return b.String()
}

// MarshalJSON implements the json.Marshaler interface for ValidationResult.
func (v *ValidationResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("valid", v.IsValid())
	w.Append("errors", v.ErrorMessages())
	return w.MarshalJSON()
}

// Required checks that the field is present and non-empty.
func (v *ValidationResult) Required(rec Record, field string) bool {
	val, ok := rec[field]
	if !ok || val == nil {
		v.Add(field, "is required")
		return false
	}
	if s, isStr := val.(string); isStr && strings.TrimSpace(s) == "" {
		v.Add(field, "is required")
		return false
	}
	return true
}

// PositiveNumber checks that the field holds a number strictly greater than
// zero.
func (v *ValidationResult) PositiveNumber(rec Record, field string) bool {
	f, ok := rec.Float(field)
	if !ok {
		v.Add(field, "must be a positive number")
		return false
	}
	if f <= 0 {
		v.Add(field, "must be greater than zero")
		return false
	}
	return true
}

// Percentage checks that the field, when present, holds a rate within
// [min, max] percentage units. Absent fields pass: optional rates default to
// zero elsewhere, and Required covers mandatory ones.
func (v *ValidationResult) Percentage(rec Record, field string, min, max Percent) bool {
	if !rec.Has(field) {
		return true
	}
	p, ok := rec.Percent(field)
	if !ok {
		v.Add(field, "must be a percentage")
		return false
	}
	if p < min || p > max {
		v.Add(field, fmt.Sprintf("must be between %s and %s", min, max))
		return false
	}
	return true
}

// Range checks that the field, when present, holds a number within [min, max].
func (v *ValidationResult) Range(rec Record, field string, min, max float64) bool {
	if !rec.Has(field) {
		return true
	}
	f, ok := rec.Float(field)
	if !ok {
		v.Add(field, "must be a number")
		return false
	}
	if f < min || f > max {
		v.Add(field, fmt.Sprintf("must be between %g and %g", min, max))
		return false
	}
	return true
}

// StringField checks that the field, when present, is a string of at most
// maxLen characters.
func (v *ValidationResult) StringField(rec Record, field string, maxLen int) bool {
	if !rec.Has(field) {
		return true
	}
	s, ok := rec.String(field)
	if !ok {
		v.Add(field, "must be a string")
		return false
	}
	if maxLen > 0 && len(s) > maxLen {
		v.Add(field, fmt.Sprintf("must be at most %d characters", maxLen))
		return false
	}
	return true
}

// DateField checks that the field, when present, parses with the given
// layout. An empty layout means the ISO calendar date "2006-01-02".
func (v *ValidationResult) DateField(rec Record, field, layout string) bool {
	if !rec.Has(field) {
		return true
	}
	if layout == "" {
		layout = "2006-01-02"
	}
	s, ok := rec.String(field)
	if !ok {
		v.Add(field, "must be a date string")
		return false
	}
	if _, err := time.Parse(layout, s); err != nil {
		v.Add(field, fmt.Sprintf("must be a date in format %s", layout))
		return false
	}
	return true
}

// WithFunc runs an arbitrary check and records message against field when it
// fails.
func (v *ValidationResult) WithFunc(field, message string, fn func() bool) bool {
	if fn() {
		return true
	}
	v.Add(field, message)
	return false
}
