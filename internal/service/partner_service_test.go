package service

import (
	"context"
	"math"
	"testing"

	"erpforms/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSupplier() CreateSupplierRequest {
	return CreateSupplierRequest{
		PartnerFields: PartnerFields{
			Name:          "Acme Textiles",
			ContactPerson: "Sara Khan",
			ContactEmail:  "Sales@Acme.COM",
		},
		BusinessType: "manufacturer",
	}
}

func TestPartnerService_CreateSupplier(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes email and applies defaults", func(t *testing.T) {
		f := newFixture(t)
		svc := NewPartnerService(f.deps, f.records.Suppliers, f.records.Customers)

		res, err := svc.CreateSupplier(ctx, validSupplier())
		require.NoError(t, err)
		s := res.Record
		assert.Equal(t, int64(1), s.ID)
		assert.Equal(t, "SUP-0001", s.Code)
		assert.Equal(t, "sales@acme.com", s.ContactEmail)
		assert.Equal(t, "United States", s.Country)
		assert.Equal(t, model.CurrencyUSD, s.Currency)
		assert.Equal(t, model.PaymentTermsNet30, s.PaymentTerms)
		assert.Equal(t, model.PartnerStatusActive, s.Status)
		assert.Nil(t, s.Website)
		assert.Equal(t, "Supplier Acme Textiles successfully created.", res.Message)

		var stored model.Supplier
		require.NoError(t, f.db.First(&stored, 1).Error)
		assert.Equal(t, "sales@acme.com", stored.ContactEmail)
	})

	t.Run("code follows the highest existing id", func(t *testing.T) {
		f := newFixture(t)
		f.seedSupplier(t, 41, "Legacy Mills", model.PartnerStatusActive)
		svc := NewPartnerService(f.deps, f.records.Suppliers, f.records.Customers)

		res, err := svc.CreateSupplier(ctx, validSupplier())
		require.NoError(t, err)
		assert.Equal(t, int64(42), res.Record.ID)
		assert.Equal(t, "SUP-0042", res.Record.Code)
	})

	t.Run("requires email or phone", func(t *testing.T) {
		f := newFixture(t)
		svc := NewPartnerService(f.deps, f.records.Suppliers, f.records.Customers)

		req := validSupplier()
		req.ContactEmail = "  "
		_, err := svc.CreateSupplier(ctx, req)
		verrs := requireValidation(t, err)
		assert.Equal(t, []string{contactRequiredMsg}, verrs.Form)

		req.ContactPhone = "+92 300 1234"
		_, err = svc.CreateSupplier(ctx, req)
		require.NoError(t, err)
	})

	t.Run("rejects disallowed email domain and bad phone", func(t *testing.T) {
		f := newFixture(t)
		svc := NewPartnerService(f.deps, f.records.Suppliers, f.records.Customers)

		req := validSupplier()
		req.ContactEmail = "sales@acme.io"
		req.ContactPhone = "call us"
		_, err := svc.CreateSupplier(ctx, req)
		verrs := requireValidation(t, err)
		assert.Equal(t, "Please enter a valid email address.", verrs.Fields["contact_email"])
		assert.Contains(t, verrs.Fields, "contact_phone")
		assert.Empty(t, verrs.Form)
		assert.Zero(t, f.count(t, &model.Supplier{}))
	})

	t.Run("blank name uses the entity label", func(t *testing.T) {
		f := newFixture(t)
		svc := NewPartnerService(f.deps, f.records.Suppliers, f.records.Customers)

		req := validSupplier()
		req.Name = ""
		_, err := svc.CreateSupplier(ctx, req)
		assert.Equal(t, "Supplier name is required.", requireValidation(t, err).Fields["name"])
	})

	t.Run("explicit id already taken is a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.seedSupplier(t, 7, "Legacy Mills", model.PartnerStatusActive)
		svc := NewPartnerService(f.deps, f.records.Suppliers, f.records.Customers)

		req := validSupplier()
		req.ID = ptr(int64(7))
		_, err := svc.CreateSupplier(ctx, req)
		conflict := requireConflict(t, err)
		assert.Equal(t, "id", conflict.Field)
		assert.Equal(t, "Legacy Mills", conflict.Owner)
		assert.Equal(t, "Supplier with this ID already exists (owned by Legacy Mills).", conflict.Message)
	})

	t.Run("explicit id is kept and later codes skip past it", func(t *testing.T) {
		f := newFixture(t)
		svc := NewPartnerService(f.deps, f.records.Suppliers, f.records.Customers)

		req := validSupplier()
		req.ID = ptr(int64(100))
		res, err := svc.CreateSupplier(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(100), res.Record.ID)

		res, err = svc.CreateSupplier(ctx, validSupplier())
		require.NoError(t, err)
		assert.Equal(t, int64(101), res.Record.ID)
		assert.Equal(t, "SUP-0101", res.Record.Code)
	})

	t.Run("explicit id is bounded", func(t *testing.T) {
		f := newFixture(t)
		svc := NewPartnerService(f.deps, f.records.Suppliers, f.records.Customers)

		req := validSupplier()
		req.ID = ptr(int64(math.MaxInt64))
		_, err := svc.CreateSupplier(ctx, req)
		verrs := requireValidation(t, err)
		assert.Equal(t, "Ensure this value is less than or equal to 999999999999999.", verrs.Fields["id"])
		assert.Equal(t, int64(0), f.count(t, &model.Supplier{}))

		req.ID = ptr(int64(999_999_999_999_999))
		_, err = svc.CreateSupplier(ctx, req)
		require.NoError(t, err)

		res, err := svc.CreateSupplier(ctx, validSupplier())
		require.NoError(t, err)
		assert.Equal(t, int64(1_000_000_000_000_000), res.Record.ID)
		assert.Equal(t, "SUP-1000000000000000", res.Record.Code)
	})
}

func TestPartnerService_CreateCustomer(t *testing.T) {
	f := newFixture(t)
	svc := NewPartnerService(f.deps, f.records.Suppliers, f.records.Customers)

	res, err := svc.CreateCustomer(context.Background(), CreateCustomerRequest{
		PartnerFields: PartnerFields{
			Name:          "Lahore Garments",
			ContactPerson: "Ali",
			ContactPhone:  "0300-1234567",
			Website:       "https://lahore-garments.com",
		},
		CustomerType: "business",
	})
	require.NoError(t, err)
	c := res.Record
	assert.Equal(t, "CUST-0001", c.Code)
	assert.Equal(t, "Pakistan", c.Country)
	assert.Equal(t, model.CurrencyPKR, c.Currency)
	require.NotNil(t, c.Website)
	assert.Equal(t, "Customer Lahore Garments successfully created.", res.Message)

	_, err = svc.CreateCustomer(context.Background(), CreateCustomerRequest{
		PartnerFields: PartnerFields{Name: "X", ContactPerson: "Y", ContactPhone: "1", Currency: "XYZ"},
		CustomerType:  "alien",
	})
	verrs := requireValidation(t, err)
	assert.Contains(t, verrs.Fields, "currency")
	assert.Contains(t, verrs.Fields, "customer_type")
}
