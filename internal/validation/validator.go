// Package validation checks untrusted form values field by field and collects
// every failure instead of stopping at the first one.
package validation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the accepted format of date fields.
const DateLayout = "2006-01-02"

const requiredMsg = "This field is required."

// Validator accumulates failures for one submission. A zero Validator is not usable; use New.
type Validator struct {
	errs Errors
	now  func() time.Time
}

// New returns a Validator whose notion of "today" comes from now.
func New(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{now: now}
}

// Err returns the collected failures as *Errors, or nil when the submission is valid.
func (v *Validator) Err() error {
	if v.errs.Empty() {
		return nil
	}
	errs := v.errs
	return &errs
}

// Failed reports whether field already has a failure.
func (v *Validator) Failed(field string) bool {
	_, ok := v.errs.Fields[field]
	return ok
}

// Fail records a field failure.
func (v *Validator) Fail(field, msg string) {
	v.errs.Add(field, msg)
}

// Check records msg for field when ok is false.
func (v *Validator) Check(ok bool, field, msg string) {
	if !ok {
		v.errs.Add(field, msg)
	}
}

// Form records a failure that involves several fields.
func (v *Validator) Form(msg string) {
	v.errs.AddForm(msg)
}

// Today returns the current date at midnight UTC.
func (v *Validator) Today() time.Time {
	y, m, d := v.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (v *Validator) clean(field, value string, kind Kind) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	cleaned, err := kind.Clean(value)
	if err != nil {
		v.errs.Add(field, err.Error())
		return "", false
	}
	return cleaned, true
}

// Required cleans a value that must not be blank after trimming.
func (v *Validator) Required(field, value string, kind Kind) string {
	if strings.TrimSpace(value) == "" {
		v.errs.Add(field, requiredMsg)
		return ""
	}
	cleaned, _ := v.clean(field, value, kind)
	return cleaned
}

// Optional cleans a value that may be blank; blank yields "".
func (v *Validator) Optional(field, value string, kind Kind) string {
	cleaned, _ := v.clean(field, value, kind)
	return cleaned
}

// Nullable is Optional returning nil for a blank or invalid value.
func (v *Validator) Nullable(field, value string, kind Kind) *string {
	cleaned, ok := v.clean(field, value, kind)
	if !ok {
		return nil
	}
	return &cleaned
}

// ChoiceOr cleans a choice field, falling back to def when blank.
func (v *Validator) ChoiceOr(field, value string, kind Choice, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	cleaned, _ := v.clean(field, value, kind)
	return cleaned
}

func parseDecimal(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, invalid("Enter a number.")
	}
	return d, nil
}

// Decimal parses a required decimal.
func (v *Validator) Decimal(field, value string) decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		v.errs.Add(field, requiredMsg)
		return decimal.Zero
	}
	d, err := parseDecimal(value)
	if err != nil {
		v.errs.Add(field, err.Error())
	}
	return d
}

// NullDecimal parses an optional decimal; blank yields an invalid NullDecimal.
func (v *Validator) NullDecimal(field, value string) decimal.NullDecimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.NullDecimal{}
	}
	d, err := parseDecimal(value)
	if err != nil {
		v.errs.Add(field, err.Error())
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// Positive requires d > 0.
func (v *Validator) Positive(field string, d decimal.Decimal, msg string) {
	if !v.Failed(field) && !d.IsPositive() {
		v.errs.Add(field, msg)
	}
}

// NonNegative requires a present value to be >= 0.
func (v *Validator) NonNegative(field string, d decimal.NullDecimal) {
	if d.Valid && d.Decimal.IsNegative() {
		v.errs.Add(field, "Ensure this value is greater than or equal to 0.")
	}
}

// Date parses a required YYYY-MM-DD date.
func (v *Validator) Date(field, value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		v.errs.Add(field, requiredMsg)
		return time.Time{}
	}
	return v.parseDate(field, value)
}

// DateOr parses an optional date, falling back to def when blank.
func (v *Validator) DateOr(field, value string, def time.Time) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	return v.parseDate(field, value)
}

func (v *Validator) parseDate(field, value string) time.Time {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		v.errs.Add(field, "Enter a valid date.")
		return time.Time{}
	}
	return t
}

// NotFuture rejects a date later than today.
func (v *Validator) NotFuture(field string, t time.Time, msg string) {
	if !v.Failed(field) && t.After(v.Today()) {
		v.errs.Add(field, msg)
	}
}

// IntRange requires min <= n <= max.
func (v *Validator) IntRange(field string, n, min, max int, msg string) {
	if n < min || n > max {
		v.errs.Add(field, msg)
	}
}

// RequiredRef requires a reference id to be present.
func (v *Validator) RequiredRef(field string, id *int64) {
	if id == nil {
		v.errs.Add(field, requiredMsg)
	}
}

// OneOf records a form failure when every value is blank.
func (v *Validator) OneOf(msg string, values ...string) {
	for _, s := range values {
		if strings.TrimSpace(s) != "" {
			return
		}
	}
	v.errs.AddForm(msg)
}
