package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"erpforms/internal/model"

	"github.com/go-playground/validator/v10"
)

// Kind cleans one kind of field value. Clean receives a trimmed, non-blank value
// and returns the normalized value to store.
type Kind interface {
	Clean(value string) (string, error)
}

var syntax = validator.New()

// invalid is a user-facing rejection message.
type invalid string

func (e invalid) Error() string { return string(e) }

// Text accepts any value up to MaxLen characters. MaxLen 0 means unbounded.
type Text struct {
	MaxLen int
}

func (k Text) Clean(value string) (string, error) {
	if k.MaxLen > 0 && utf8.RuneCountInString(value) > k.MaxLen {
		return "", invalid(fmt.Sprintf("Ensure this value has at most %d characters (it has %d).", k.MaxLen, utf8.RuneCountInString(value)))
	}
	return value, nil
}

var allowedEmailSuffixes = []string{".com", ".org", ".net", ".edu", ".gov"}

// Email lower-cases the address and only accepts the allowed top-level domains.
type Email struct{}

func (Email) Clean(value string) (string, error) {
	email := strings.ToLower(value)
	if err := syntax.Var(email, "email"); err != nil {
		return "", invalid("Enter a valid email address.")
	}
	for _, suffix := range allowedEmailSuffixes {
		if strings.HasSuffix(email, suffix) {
			return email, nil
		}
	}
	return "", invalid("Please enter a valid email address.")
}

var phonePattern = regexp.MustCompile(`^\+?[\d \-()]+$`)

// Phone accepts digits, spaces, dashes, parentheses and a leading plus.
type Phone struct {
	MaxLen int
}

func (k Phone) Clean(value string) (string, error) {
	if !phonePattern.MatchString(value) {
		return "", invalid("Enter a valid phone number")
	}
	return Text{MaxLen: k.MaxLen}.Clean(value)
}

// URL accepts absolute http(s) URLs.
type URL struct{}

func (URL) Clean(value string) (string, error) {
	if err := syntax.Var(value, "http_url"); err != nil {
		return "", invalid("Enter a valid URL.")
	}
	return value, nil
}

// Choice accepts one of the set's values.
type Choice struct {
	Set model.ChoiceSet
}

func (k Choice) Clean(value string) (string, error) {
	if !k.Set.Has(value) {
		return "", invalid(fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", value))
	}
	return value, nil
}
