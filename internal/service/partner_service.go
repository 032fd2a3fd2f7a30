package service

import (
	"context"
	"fmt"
	"strings"

	"erpforms/internal/model"
	"erpforms/internal/repository"
	"erpforms/internal/validation"
)

const (
	contactRequiredMsg = "At least one contact method (email or phone) is required."
	phoneMaxLen        = 12
	// maxPartnerID keeps the following generated code within the 20-character code column.
	maxPartnerID = 999_999_999_999_999
)

// PartnerFields are shared by the supplier and customer forms.
type PartnerFields struct {
	ID            *int64 `json:"id"` // assigned by the system when omitted
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	ContactEmail  string `json:"contact_email"`
	ContactPhone  string `json:"contact_phone"`
	Country       string `json:"country"`
	PaymentTerms  string `json:"payment_terms"`
	Currency      string `json:"currency"`
	Website       string `json:"website"`
	Notes         string `json:"notes"`
	Status        string `json:"status"`
	IsPreferred   bool   `json:"is_preferred"`
}

type CreateSupplierRequest struct {
	PartnerFields
	BusinessType string `json:"business_type"`
	NTNNumber    string `json:"ntn_number"`
}

type CreateCustomerRequest struct {
	PartnerFields
	CustomerType string `json:"customer_type"`
}

type PartnerService interface {
	CreateSupplier(ctx context.Context, req CreateSupplierRequest) (Result[model.Supplier], error)
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (Result[model.Customer], error)
}

type partnerService struct {
	deps      Deps
	suppliers repository.RecordRepository[model.Supplier]
	customers repository.RecordRepository[model.Customer]
}

func NewPartnerService(deps Deps, suppliers repository.RecordRepository[model.Supplier], customers repository.RecordRepository[model.Customer]) PartnerService {
	return &partnerService{deps: deps.withDefaults(), suppliers: suppliers, customers: customers}
}

// cleanedPartner holds the normalized shared fields.
type cleanedPartner struct {
	name, contactPerson, email, phone, country, paymentTerms, currency, status string
	website, notes                                                             *string
}

func cleanPartner(v *validation.Validator, f PartnerFields, label, defaultCountry, defaultCurrency string) cleanedPartner {
	if f.ID != nil {
		switch {
		case *f.ID < 1:
			v.Fail("id", "Ensure this value is greater than or equal to 1.")
		case *f.ID > maxPartnerID:
			v.Fail("id", fmt.Sprintf("Ensure this value is less than or equal to %d.", int64(maxPartnerID)))
		}
	}
	if strings.TrimSpace(f.Name) == "" {
		v.Fail("name", label+" name is required.")
	}
	c := cleanedPartner{
		name:          v.Optional("name", f.Name, validation.Text{MaxLen: 200}),
		contactPerson: v.Required("contact_person", f.ContactPerson, validation.Text{MaxLen: 100}),
		email:         v.Optional("contact_email", f.ContactEmail, validation.Email{}),
		phone:         v.Optional("contact_phone", f.ContactPhone, validation.Phone{MaxLen: phoneMaxLen}),
		country:       v.Optional("country", f.Country, validation.Text{MaxLen: 100}),
		paymentTerms:  v.ChoiceOr("payment_terms", f.PaymentTerms, validation.Choice{Set: model.PaymentTerms}, model.PaymentTermsNet30),
		currency:      v.ChoiceOr("currency", f.Currency, validation.Choice{Set: model.Currencies}, defaultCurrency),
		status:        v.ChoiceOr("status", f.Status, validation.Choice{Set: model.PartnerStatuses}, model.PartnerStatusActive),
		website:       v.Nullable("website", f.Website, validation.URL{}),
		notes:         v.Nullable("notes", f.Notes, validation.Text{}),
	}
	if c.country == "" {
		c.country = defaultCountry
	}
	v.OneOf(contactRequiredMsg, f.ContactEmail, f.ContactPhone)
	return c
}

func (s *partnerService) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (Result[model.Supplier], error) {
	v := validation.New(s.deps.Now)
	c := cleanPartner(v, req.PartnerFields, "Supplier", "United States", model.CurrencyUSD)
	supplier := &model.Supplier{
		Name:          c.name,
		ContactPerson: c.contactPerson,
		ContactEmail:  c.email,
		ContactPhone:  c.phone,
		BusinessType:  v.Required("business_type", req.BusinessType, validation.Choice{Set: model.BusinessTypes}),
		NTNNumber:     v.Nullable("ntn_number", req.NTNNumber, validation.Text{MaxLen: 50}),
		Country:       c.country,
		PaymentTerms:  c.paymentTerms,
		Currency:      c.currency,
		Website:       c.website,
		Notes:         c.notes,
		Status:        c.status,
		IsPreferred:   req.IsPreferred,
	}

	created, err := create(ctx, s.deps, creation[model.Supplier]{
		entity: model.EntitySupplier,
		label:  "Supplier",
		repo:   s.suppliers,
		record: supplier,
		v:      v,
		assign: func(n int64, code string) {
			supplier.ID = n
			if req.ID != nil {
				supplier.ID = *req.ID
			}
			supplier.Code = code
		},
		uniques: func() []unique {
			return []unique{
				{field: "id", column: "id", value: req.ID, label: "ID"},
				{field: "code", column: "code", value: supplier.Code, label: "code"},
			}
		},
		ownerOf: func(s *model.Supplier) string { return s.Name },
		summary: func() Created {
			return Created{Entity: model.EntitySupplier, ID: supplier.ID, Code: supplier.Code, Name: supplier.Name}
		},
	})
	if err != nil {
		return Result[model.Supplier]{}, err
	}
	return Result[model.Supplier]{Record: supplier, Message: fmt.Sprintf("Supplier %s successfully created.", created.Name)}, nil
}

func (s *partnerService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (Result[model.Customer], error) {
	v := validation.New(s.deps.Now)
	c := cleanPartner(v, req.PartnerFields, "Customer", "Pakistan", model.CurrencyPKR)
	customer := &model.Customer{
		Name:          c.name,
		CustomerType:  v.Required("customer_type", req.CustomerType, validation.Choice{Set: model.CustomerTypes}),
		ContactPerson: c.contactPerson,
		ContactEmail:  c.email,
		ContactPhone:  c.phone,
		Country:       c.country,
		PaymentTerms:  c.paymentTerms,
		Currency:      c.currency,
		Website:       c.website,
		Notes:         c.notes,
		Status:        c.status,
		IsPreferred:   req.IsPreferred,
	}

	created, err := create(ctx, s.deps, creation[model.Customer]{
		entity: model.EntityCustomer,
		label:  "Customer",
		repo:   s.customers,
		record: customer,
		v:      v,
		assign: func(n int64, code string) {
			customer.ID = n
			if req.ID != nil {
				customer.ID = *req.ID
			}
			customer.Code = code
		},
		uniques: func() []unique {
			return []unique{
				{field: "id", column: "id", value: req.ID, label: "ID"},
				{field: "code", column: "code", value: customer.Code, label: "code"},
			}
		},
		ownerOf: func(c *model.Customer) string { return c.Name },
		summary: func() Created {
			return Created{Entity: model.EntityCustomer, ID: customer.ID, Code: customer.Code, Name: customer.Name}
		},
	})
	if err != nil {
		return Result[model.Customer]{}, err
	}
	return Result[model.Customer]{Record: customer, Message: fmt.Sprintf("Customer %s successfully created.", created.Name)}, nil
}
