package model

// Lookup projections feed the selection widgets of the entry forms.

type SupplierLookup struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	ContactEmail  string `json:"contact_email"`
	ContactPhone  string `json:"contact_phone"`
}

type CustomerLookup struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
}

type AreaLookup struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	AreaCode    int    `json:"area_code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ItemLookup struct {
	ID            int64   `json:"id"`
	ItemCode      string  `json:"item_code"`
	Name          string  `json:"name"`
	Specification *string `json:"specification"`
	UnitOfMeasure string  `json:"unit_of_measure"`
	CategoryName  *string `json:"category_name"`
}

type PurchaseOrderLookup struct {
	ID             int64   `json:"id"`
	PONumber       string  `json:"po_number"`
	SupplierName   *string `json:"supplier_name"`
	RequisitionDoc *string `json:"requisition_doc"`
}

type RequisitionLookup struct {
	ID             int64   `json:"id"`
	DocNumber      string  `json:"doc_number"`
	RequestedBy    string  `json:"requested_by"`
	DepartmentName *string `json:"department_name"`
}

// NamedLookup serves departments and inventory categories.
type NamedLookup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
