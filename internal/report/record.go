// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package report

import (
	"encoding/json"
	"strconv"
)

// Placeholders printed for absent or unusable fields.
const (
	NotAvailable = "Not Available"
	NA           = "N/A"
)

// Record is a loosely typed lookup entry. Every accessor is total: a record
// that is not a JSON object simply has no fields.
type Record struct {
	fields map[string]any
}

// NewRecord wraps a decoded JSON value.
func NewRecord(v any) Record {
	m, _ := v.(map[string]any)
	return Record{fields: m}
}

// IsObject reports whether the wrapped value was a JSON object.
func (r Record) IsObject() bool {
	return r.fields != nil
}

// Has reports whether key is present, even with a null value.
func (r Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// Str renders a scalar field as text, or returns fallback when the field is
// absent, null or not a scalar.
func (r Record) Str(key, fallback string) string {
	v, ok := r.fields[key]
	if !ok {
		return fallback
	}
	s, ok := scalarText(v)
	if !ok {
		return fallback
	}
	return s
}

// Raw renders any field as text; nested values are printed as compact JSON.
func (r Record) Raw(key, fallback string) string {
	v, ok := r.fields[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := scalarText(v); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fallback
	}
	return string(b)
}

// Truthy applies the upstream notion of a "set" value: null, false, zero,
// empty strings and empty containers are unset.
func (r Record) Truthy(key string) bool {
	return truthy(r.fields[key])
}

// List returns the field as a list, or nil when it is absent or not a list.
func (r Record) List(key string) []any {
	l, _ := r.fields[key].([]any)
	return l
}

func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		if t {
			return "True", true
		}
		return "False", true
	default:
		return "", false
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
