package validation

import (
	"errors"
	"testing"
	"time"

	"erpforms/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC) }

func errorsOf(t *testing.T, v *Validator) *Errors {
	t.Helper()
	var errs *Errors
	require.True(t, errors.As(v.Err(), &errs))
	return errs
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"Foo@Example.COM", "foo@example.com", false},
		{"  admin@school.EDU ", "admin@school.edu", false},
		{"ops@agency.gov", "ops@agency.gov", false},
		{"foo@example.xyz", "", true},
		{"foo@example.co.uk", "", true},
		{"not-an-email.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := New(fixedNow)
			got := v.Optional("contact_email", tt.in, Email{})
			if tt.wantErr {
				assert.Error(t, v.Err())
				return
			}
			require.NoError(t, v.Err())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhone(t *testing.T) {
	valid := []string{"+923001234", "(021) 555", "0300-123456", "555 1234"}
	for _, p := range valid {
		v := New(fixedNow)
		assert.Equal(t, p, v.Optional("contact_phone", p, Phone{MaxLen: 12}))
		assert.NoError(t, v.Err(), p)
	}

	invalid := []string{"call me", "12a45", "++123", "+92 300 1234567", "555\t1234", "0300\n1234"}
	for _, p := range invalid {
		v := New(fixedNow)
		v.Optional("contact_phone", p, Phone{MaxLen: 12})
		assert.Error(t, v.Err(), p)
	}
}

func TestRequired_TrimsAndRejectsBlank(t *testing.T) {
	v := New(fixedNow)
	assert.Equal(t, "Acme", v.Required("name", "  Acme  ", Text{MaxLen: 200}))
	assert.Empty(t, v.Required("contact_person", "   ", Text{}))

	errs := errorsOf(t, v)
	assert.Equal(t, "This field is required.", errs.Fields["contact_person"])
	assert.NotContains(t, errs.Fields, "name")
}

func TestText_MaxLen(t *testing.T) {
	v := New(fixedNow)
	v.Required("name", "abcdef", Text{MaxLen: 5})
	assert.Contains(t, errorsOf(t, v).Fields["name"], "at most 5 characters")
}

func TestChoiceOr(t *testing.T) {
	v := New(fixedNow)
	assert.Equal(t, "net_30", v.ChoiceOr("payment_terms", "", Choice{model.PaymentTerms}, model.PaymentTermsNet30))
	assert.Equal(t, "EUR", v.ChoiceOr("currency", "EUR", Choice{model.Currencies}, model.CurrencyUSD))
	require.NoError(t, v.Err())

	v.ChoiceOr("currency", "BTC", Choice{model.Currencies}, model.CurrencyUSD)
	assert.Contains(t, errorsOf(t, v).Fields["currency"], "BTC is not one of the available choices")
}

func TestDecimals(t *testing.T) {
	v := New(fixedNow)

	for _, tc := range []struct {
		in string
		ok bool
	}{{"0", false}, {"-5", false}, {"0.01", true}, {"1500.50", true}} {
		v := New(fixedNow)
		d := v.Decimal("total_amount", tc.in)
		v.Positive("total_amount", d, "Total amount must be greater than zero.")
		assert.Equal(t, tc.ok, v.Err() == nil, tc.in)
	}

	n := v.NullDecimal("freight", "")
	assert.False(t, n.Valid)

	n = v.NullDecimal("discount", "-1")
	v.NonNegative("discount", n)
	v.NullDecimal("rate", "abc")
	errs := errorsOf(t, v)
	assert.Contains(t, errs.Fields, "discount")
	assert.Equal(t, "Enter a number.", errs.Fields["rate"])
}

func TestPositive_SkipsAfterParseFailure(t *testing.T) {
	v := New(fixedNow)
	d := v.Decimal("total_amount", "twelve")
	v.Positive("total_amount", d, "Total amount must be greater than zero.")
	assert.Equal(t, "Enter a number.", errorsOf(t, v).Fields["total_amount"])
}

func TestDates(t *testing.T) {
	v := New(fixedNow)

	today := v.DateOr("purchase_date", "", v.Today())
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), today)

	d := v.Date("purchase_date", "2024-05-10")
	v.NotFuture("purchase_date", d, "Purchase date cannot be in the future.")
	require.NoError(t, v.Err())

	d = v.Date("purchase_date", "2024-05-11")
	v.NotFuture("purchase_date", d, "Purchase date cannot be in the future.")
	v.Date("po_date", "10/05/2024")
	v.Date("end_date", "")

	errs := errorsOf(t, v)
	assert.Equal(t, "Purchase date cannot be in the future.", errs.Fields["purchase_date"])
	assert.Equal(t, "Enter a valid date.", errs.Fields["po_date"])
	assert.Equal(t, "This field is required.", errs.Fields["end_date"])
}

func TestOneOf(t *testing.T) {
	msg := "At least one contact method (email or phone) is required."

	v := New(fixedNow)
	v.OneOf(msg, "", "  ")
	assert.Equal(t, []string{msg}, errorsOf(t, v).Form)

	v = New(fixedNow)
	v.OneOf(msg, "", "0300-1234")
	assert.NoError(t, v.Err())
}

func TestErrors_FirstFailureWins(t *testing.T) {
	var errs Errors
	errs.Add("name", "first")
	errs.Add("name", "second")
	errs.AddForm("form level")

	assert.Equal(t, "first", errs.Fields["name"])
	assert.Equal(t, "validation failed: name: first; form level", errs.Error())
}

func TestValidation_Idempotent(t *testing.T) {
	run := func() error {
		v := New(fixedNow)
		v.Required("name", " ", Text{})
		v.Optional("contact_email", "x@y.xyz", Email{})
		v.Optional("website", "not a url", URL{})
		v.OneOf("contact required", "", "")
		v.IntRange("area_code", 0, 1, 9999, "Area code must be between 1 and 9999.")
		return v.Err()
	}

	first, second := run(), run()
	assert.Equal(t, first, second)
	assert.Len(t, first.(*Errors).Fields, 4)
}

func TestNullable(t *testing.T) {
	v := New(fixedNow)
	assert.Nil(t, v.Nullable("notes", "   ", Text{}))
	got := v.Nullable("website", "https://acme.com", URL{})
	require.NotNil(t, got)
	assert.Equal(t, "https://acme.com", *got)
}
