package model

// Option is one allowed value of a choice field and its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ChoiceSet is the ordered list of values a choice field accepts.
// Every entity that stores a currency, payment term or status refers to the same set.
type ChoiceSet struct {
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

// Has reports whether v is one of the set's values.
func (s ChoiceSet) Has(v string) bool {
	for _, o := range s.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// Values returns the allowed values in display order.
func (s ChoiceSet) Values() []string {
	out := make([]string, 0, len(s.Options))
	for _, o := range s.Options {
		out = append(out, o.Value)
	}
	return out
}

const (
	AreaStatusActive      = "active"
	AreaStatusInactive    = "inactive"
	AreaStatusMaintenance = "maintenance"

	PartnerStatusActive          = "active"
	PartnerStatusInactive        = "inactive"
	PartnerStatusSuspended       = "suspended"
	PartnerStatusPendingApproval = "pending_approval"

	PaymentTermsNet30 = "net_30"

	CurrencyUSD = "USD"
	CurrencyPKR = "PKR"

	PurchaseStatusDraft = "draft"

	GPIStatusPending = "Pending"
)

var AreaStatuses = ChoiceSet{Name: "area_status", Options: []Option{
	{AreaStatusActive, "Active"},
	{AreaStatusInactive, "Inactive"},
	{AreaStatusMaintenance, "Under Maintenance"},
}}

var PartnerStatuses = ChoiceSet{Name: "partner_status", Options: []Option{
	{PartnerStatusActive, "Active"},
	{PartnerStatusInactive, "Inactive"},
	{PartnerStatusSuspended, "Suspended"},
	{PartnerStatusPendingApproval, "Pending Approval"},
}}

var PaymentTerms = ChoiceSet{Name: "payment_terms", Options: []Option{
	{"net_15", "Net 15"},
	{PaymentTermsNet30, "Net 30"},
	{"net_45", "Net 45"},
	{"net_60", "Net 60"},
	{"cod", "Cash on Delivery"},
	{"prepaid", "Prepaid"},
}}

var Currencies = ChoiceSet{Name: "currency", Options: []Option{
	{CurrencyUSD, "US Dollar"},
	{"EUR", "Euro"},
	{"GBP", "British Pound"},
	{"CAD", "Canadian Dollar"},
	{"AUD", "Australian Dollar"},
	{"JPY", "Japanese Yen"},
	{CurrencyPKR, "Pakistani Rupees"},
}}

var BusinessTypes = ChoiceSet{Name: "business_type", Options: []Option{
	{"manufacturer", "Manufacturer"},
	{"distributor", "Distributor"},
	{"wholesaler", "Wholesaler"},
	{"retailer", "Retailer"},
	{"service_provider", "Service Provider"},
	{"contractor", "Contractor"},
	{"consultant", "Consultant"},
	{"other", "Other"},
}}

var CustomerTypes = ChoiceSet{Name: "customer_type", Options: []Option{
	{"individual", "Individual"},
	{"business", "Business"},
	{"government", "Government"},
	{"non_profit", "Non-Profit"},
}}

var PurchaseStatuses = ChoiceSet{Name: "purchase_status", Options: []Option{
	{PurchaseStatusDraft, "Draft"},
	{"pending_approval", "Pending Approval"},
	{"approved", "Approved"},
	{"ordered", "Ordered"},
	{"received", "Received"},
	{"cancelled", "Cancelled"},
}}

var SalesTaxTypes = ChoiceSet{Name: "sales_tax_type", Options: []Option{
	{"GST", "GST"},
	{"VAT", "VAT"},
	{"EXEMPT", "Exempt"},
}}

var GPIStatuses = ChoiceSet{Name: "gpi_status", Options: []Option{
	{GPIStatusPending, "Pending"},
	{"Approved", "Approved"},
	{"Rejected", "Rejected"},
}}

var VoucherTypes = ChoiceSet{Name: "transaction_type", Options: []Option{
	{"Cash", "Cash"},
	{"Credit", "Credit"},
	{"Return", "Return"},
}}

var LotNatures = ChoiceSet{Name: "lot_nature", Options: []Option{
	{"Dyeing", "Dyeing"},
	{"Bleaching", "Bleaching"},
	{"Finishing", "Finishing"},
}}

var IssueNatures = ChoiceSet{Name: "issue_nature", Options: []Option{
	{"Issue", "Issue"},
	{"Return", "Return"},
}}

// AllChoiceSets lists every enumeration exposed to form clients.
func AllChoiceSets() []ChoiceSet {
	return []ChoiceSet{
		AreaStatuses, PartnerStatuses, PaymentTerms, Currencies, BusinessTypes, CustomerTypes,
		PurchaseStatuses, SalesTaxTypes, GPIStatuses, VoucherTypes, LotNatures, IssueNatures,
	}
}
