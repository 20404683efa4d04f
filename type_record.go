package propfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Record is the loosely-typed input to an analysis: a flat mapping from field
// name to value, matching what web forms and API handlers produce. Unknown
// fields are ignored; missing optional fields default to zero or absent.
//
// Each typed getter coerces the usual JSON shapes (float64, json.Number,
// numeric strings) and treats malformed values as absent, so a single bad
// field never takes the whole record down. Validation reports such fields
// separately.
type Record map[string]any

// DecodeRecord reads a single flat JSON object into a Record.
func DecodeRecord(r io.Reader) (Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("could not decode analysis record: %w", err)
	}
	return rec, nil
}

// ExtractRecord builds a flat Record out of a nested JSON payload by applying
// one jsonpath expression per target field. This is the adapter for callers
// whose form data arrives wrapped in envelopes.
func ExtractRecord(r io.Reader, paths map[string]string) (Record, error) {
	var jobj any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not decode source payload: %w", err)
	}

	rec := make(Record, len(paths))
	for field, path := range paths {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue // absent fields are simply not set
		}
		// because jsonpath is never clear about whether it returns a list
		// of 1 answer, or a single answer:
		if list, ok := jval.([]any); ok {
			if len(list) == 0 {
				continue
			}
			jval = list[0]
		}
		rec[field] = jval
	}
	return rec, nil
}

// Has reports whether the field is present, regardless of its type.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Float returns the field as a float64 when it is any numeric shape.
func (r Record) Float(field string) (float64, bool) {
	switch v := r[field].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// FloatOr returns the field as a float64, or def when absent or malformed.
func (r Record) FloatOr(field string, def float64) float64 {
	if f, ok := r.Float(field); ok {
		return f
	}
	return def
}

// Int returns the field as an int when it holds an integral value.
func (r Record) Int(field string) (int, bool) {
	f, ok := r.Float(field)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// IntOr returns the field as an int, or def when absent or malformed.
func (r Record) IntOr(field string, def int) int {
	if n, ok := r.Int(field); ok {
		return n
	}
	return def
}

// String returns the field as a string.
func (r Record) String(field string) (string, bool) {
	s, ok := r[field].(string)
	return s, ok
}

// Bool returns the field as a bool, accepting the string forms "true"/"false".
func (r Record) Bool(field string) (bool, bool) {
	switch v := r[field].(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(v)
		return b, err == nil
	default:
		return false, false
	}
}

// BoolOr returns the field as a bool, or def when absent or malformed.
func (r Record) BoolOr(field string, def bool) bool {
	if b, ok := r.Bool(field); ok {
		return b
	}
	return def
}

// Money returns the field as a Money. String values are parsed exactly;
// numeric values go through their decimal conversion.
func (r Record) Money(field string) (Money, bool) {
	switch v := r[field].(type) {
	case string:
		m, err := ParseMoney(strings.TrimSpace(v))
		return m, err == nil
	case json.Number:
		m, err := ParseMoney(v.String())
		return m, err == nil
	default:
		f, ok := r.Float(field)
		if !ok {
			return Money{}, false
		}
		return M(f), true
	}
}

// MoneyOr returns the field as a Money, or def when absent or malformed.
func (r Record) MoneyOr(field string, def Money) Money {
	if m, ok := r.Money(field); ok {
		return m
	}
	return def
}

// Percent returns the field as a Percent in percentage units.
func (r Record) Percent(field string) (Percent, bool) {
	f, ok := r.Float(field)
	if !ok {
		return 0, false
	}
	return Percent(f), true
}

// PercentOr returns the field as a Percent, or def when absent or malformed.
func (r Record) PercentOr(field string, def Percent) Percent {
	if p, ok := r.Percent(field); ok {
		return p
	}
	return def
}
