// Package codegen builds sequential human-readable record codes such as SUP-0042.
package codegen

import "fmt"

// DefaultPadding is the zero-padded width of the numeric part.
const DefaultPadding = 4

// NextCode returns the code following the highest existing primary key.
// A nil maxID means the collection is empty.
func NextCode(maxID *int64, prefix string, padding int) string {
	var next int64 = 1
	if maxID != nil {
		next = *maxID + 1
	}
	return Format(prefix, next, padding)
}

// Format renders n zero-padded to padding digits. Numbers wider than padding are never truncated.
func Format(prefix string, n int64, padding int) string {
	if padding < 1 {
		padding = DefaultPadding
	}
	return fmt.Sprintf("%s-%0*d", prefix, padding, n)
}
