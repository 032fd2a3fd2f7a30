package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Errors collects every rule failure found while checking one submission.
// Fields maps a field name to its first failure; Form holds failures that involve
// more than one field.
type Errors struct {
	Fields map[string]string `json:"errors"`
	Form   []string          `json:"non_field_errors"`
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields)+len(e.Form))
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	parts = append(parts, e.Form...)
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records msg for field unless the field already failed.
func (e *Errors) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = msg
	}
}

// AddForm records a form-level failure.
func (e *Errors) AddForm(msg string) {
	e.Form = append(e.Form, msg)
}

// Empty reports whether no failure was recorded.
func (e *Errors) Empty() bool {
	return len(e.Fields) == 0 && len(e.Form) == 0
}
