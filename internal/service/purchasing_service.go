package service

import (
	"context"
	"fmt"

	"erpforms/internal/model"
	"erpforms/internal/repository"
	"erpforms/internal/validation"

	"github.com/shopspring/decimal"
)

type CreateRequisitionRequest struct {
	DocNumber    string `json:"doc_number"` // generated when blank
	DepartmentID *int64 `json:"department_id"`
	RequestedBy  string `json:"requested_by"`
	Remarks      string `json:"remarks"`
}

type CreatePurchaseOrderRequest struct {
	PONumber          string `json:"po_number"` // generated when blank
	PODate            string `json:"po_date" example:"2025-01-31"`
	POType            string `json:"po_type"`
	AreaID            *int64 `json:"area_id"`
	SupplierID        *int64 `json:"supplier_id"`
	RequisitionID     *int64 `json:"requisition_id"`
	Remarks           string `json:"remarks"`
	TermsConditions   string `json:"terms_conditions"`
	RefNo             string `json:"ref_no"`
	DeliveryAt        string `json:"delivery_at"`
	OrderBy           string `json:"order_by"`
	Condition         string `json:"condition"`
	Freight           string `json:"freight"`
	Quantity          string `json:"quantity"`
	Rate              string `json:"rate"`
	Amount            string `json:"amount"`
	SalesTax          string `json:"sales_tax"`
	Discount          string `json:"discount"`
	RequisitionNumber string `json:"requisition_number"`
}

type CreatePurchaseRequest struct {
	SupplierID   *int64 `json:"supplier_id"`
	PurchaseDate string `json:"purchase_date" example:"2025-01-31"` // today when blank
	TotalAmount  string `json:"total_amount" example:"1500.00"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
}

type CreateReceiptRequest struct {
	TransactionNo     string `json:"transaction_no"` // generated when blank
	TransactionDate   string `json:"transaction_date" example:"2025-01-31"`
	Nature            string `json:"nature"`
	AreaID            *int64 `json:"area_id"`
	SupplierID        *int64 `json:"supplier_id"`
	DeliveryChallanNo string `json:"delivery_challan_no"`
	ClientPOID        *int64 `json:"client_po_id"`
	POID              *int64 `json:"po_id"`
	GPOID             *int64 `json:"gpo_id"`
	ItemID            *int64 `json:"item_id"`
	Quantity          string `json:"quantity"`
	Rate              string `json:"rate"`
	Amount            string `json:"amount"`
	SalesTax          string `json:"sales_tax"`
	Remarks           string `json:"remarks"`
	GRIR              string `json:"grir"`
	GPIStatus         string `json:"gpi_status"`
}

type CreatePurchaseVoucherRequest struct {
	TransactionNo   string `json:"transaction_no"` // generated when blank
	TransactionType string `json:"transaction_type"`
	TransactionDate string `json:"transaction_date" example:"2025-01-31"`
	SupplierID      *int64 `json:"supplier_id"`
	BillNo          string `json:"bill_no"`
	STInvNo         string `json:"st_inv_no"`
	BiltyNo         string `json:"bilty_no"`
	Days            *int   `json:"days"`
}

// PurchasingService creates the documents of the procurement flow:
// requisition, purchase order, purchase, goods receipt and purchase voucher.
type PurchasingService interface {
	CreateRequisition(ctx context.Context, req CreateRequisitionRequest) (Result[model.Requisition], error)
	CreatePurchaseOrder(ctx context.Context, req CreatePurchaseOrderRequest) (Result[model.PurchaseOrder], error)
	CreatePurchase(ctx context.Context, req CreatePurchaseRequest) (Result[model.Purchase], error)
	CreateReceipt(ctx context.Context, req CreateReceiptRequest) (Result[model.ReceiptTransaction], error)
	CreatePurchaseVoucher(ctx context.Context, req CreatePurchaseVoucherRequest) (Result[model.PurchaseVoucher], error)
}

type purchasingService struct {
	deps    Deps
	records repository.Records
}

func NewPurchasingService(deps Deps, records repository.Records) PurchasingService {
	return &purchasingService{deps: deps.withDefaults(), records: records}
}

// docNumber is the unique document number column of coded transactional records.
func docNumber(field, label, value string) unique {
	return unique{field: field, column: field, value: value, label: label}
}

// nonNegative parses optional amounts that may not go below zero.
func nonNegative(v *validation.Validator, field, value string) decimal.NullDecimal {
	d := v.NullDecimal(field, value)
	v.NonNegative(field, d)
	return d
}

func (s *purchasingService) CreateRequisition(ctx context.Context, req CreateRequisitionRequest) (Result[model.Requisition], error) {
	v := validation.New(s.deps.Now)
	v.RequiredRef("department_id", req.DepartmentID)
	r := &model.Requisition{
		DocNumber:   v.Optional("doc_number", req.DocNumber, validation.Text{MaxLen: 50}),
		RequestedBy: v.Required("requested_by", req.RequestedBy, validation.Text{MaxLen: 100}),
		Remarks:     v.Nullable("remarks", req.Remarks, validation.Text{}),
	}
	if req.DepartmentID != nil {
		r.DepartmentID = *req.DepartmentID
	}

	_, err := create(ctx, s.deps, creation[model.Requisition]{
		entity: model.EntityRequisition,
		label:  "Requisition",
		repo:   s.records.Requisitions,
		record: r,
		v:      v,
		check: func(txCtx context.Context) error {
			_, err := lookupRef(txCtx, v, s.records.Departments, "department_id", req.DepartmentID)
			return err
		},
		assign: func(n int64, code string) {
			r.ID = n
			if r.DocNumber == "" {
				r.DocNumber = code
			}
		},
		uniques: func() []unique { return []unique{docNumber("doc_number", "document number", r.DocNumber)} },
		ownerOf: func(o *model.Requisition) string { return o.RequestedBy },
		summary: func() Created {
			return Created{Entity: model.EntityRequisition, ID: r.ID, Code: r.DocNumber, Name: r.RequestedBy}
		},
	})
	if err != nil {
		return Result[model.Requisition]{}, err
	}
	return Result[model.Requisition]{Record: r, Message: fmt.Sprintf("Requisition %s successfully created.", r.DocNumber)}, nil
}

func (s *purchasingService) CreatePurchaseOrder(ctx context.Context, req CreatePurchaseOrderRequest) (Result[model.PurchaseOrder], error) {
	v := validation.New(s.deps.Now)
	po := &model.PurchaseOrder{
		PONumber:          v.Optional("po_number", req.PONumber, validation.Text{MaxLen: 50}),
		PODate:            v.Date("po_date", req.PODate),
		POType:            v.Required("po_type", req.POType, validation.Text{MaxLen: 50}),
		AreaID:            ref(req.AreaID),
		SupplierID:        ref(req.SupplierID),
		RequisitionID:     ref(req.RequisitionID),
		Remarks:           v.Nullable("remarks", req.Remarks, validation.Text{}),
		TermsConditions:   v.Nullable("terms_conditions", req.TermsConditions, validation.Text{}),
		RefNo:             v.Nullable("ref_no", req.RefNo, validation.Text{MaxLen: 50}),
		DeliveryAt:        v.Required("delivery_at", req.DeliveryAt, validation.Text{MaxLen: 250}),
		OrderBy:           v.Required("order_by", req.OrderBy, validation.Text{MaxLen: 100}),
		Condition:         v.Nullable("condition", req.Condition, validation.Text{}),
		Freight:           nonNegative(v, "freight", req.Freight),
		Quantity:          nonNegative(v, "quantity", req.Quantity),
		Rate:              nonNegative(v, "rate", req.Rate),
		Amount:            nonNegative(v, "amount", req.Amount),
		SalesTax:          nonNegative(v, "sales_tax", req.SalesTax),
		Discount:          nonNegative(v, "discount", req.Discount),
		RequisitionNumber: v.Nullable("requisition_number", req.RequisitionNumber, validation.Text{MaxLen: 50}),
	}

	_, err := create(ctx, s.deps, creation[model.PurchaseOrder]{
		entity: model.EntityPurchaseOrder,
		label:  "Purchase Order",
		repo:   s.records.PurchaseOrders,
		record: po,
		v:      v,
		check: func(txCtx context.Context) error {
			if _, err := lookupRef(txCtx, v, s.records.Areas, "area_id", po.AreaID); err != nil {
				return err
			}
			if _, err := lookupRef(txCtx, v, s.records.Suppliers, "supplier_id", po.SupplierID); err != nil {
				return err
			}
			_, err := lookupRef(txCtx, v, s.records.Requisitions, "requisition_id", po.RequisitionID)
			return err
		},
		assign: func(n int64, code string) {
			po.ID = n
			if po.PONumber == "" {
				po.PONumber = code
			}
		},
		uniques: func() []unique { return []unique{docNumber("po_number", "PO number", po.PONumber)} },
		ownerOf: func(o *model.PurchaseOrder) string { return o.OrderBy },
		summary: func() Created {
			return Created{Entity: model.EntityPurchaseOrder, ID: po.ID, Code: po.PONumber, Name: po.OrderBy}
		},
	})
	if err != nil {
		return Result[model.PurchaseOrder]{}, err
	}
	return Result[model.PurchaseOrder]{Record: po, Message: fmt.Sprintf("Purchase Order %s successfully created.", po.PONumber)}, nil
}

func (s *purchasingService) CreatePurchase(ctx context.Context, req CreatePurchaseRequest) (Result[model.Purchase], error) {
	v := validation.New(s.deps.Now)
	v.RequiredRef("supplier_id", req.SupplierID)

	p := &model.Purchase{
		PurchaseDate: v.DateOr("purchase_date", req.PurchaseDate, v.Today()),
		TotalAmount:  v.Decimal("total_amount", req.TotalAmount),
		Currency:     v.ChoiceOr("currency", req.Currency, validation.Choice{Set: model.Currencies}, model.CurrencyPKR),
		Status:       v.ChoiceOr("status", req.Status, validation.Choice{Set: model.PurchaseStatuses}, model.PurchaseStatusDraft),
		Notes:        v.Nullable("notes", req.Notes, validation.Text{}),
	}
	v.NotFuture("purchase_date", p.PurchaseDate, "Purchase date cannot be in the future.")
	v.Positive("total_amount", p.TotalAmount, "Total amount must be greater than zero.")
	if req.SupplierID != nil {
		p.SupplierID = *req.SupplierID
	}

	var supplierName string
	_, err := create(ctx, s.deps, creation[model.Purchase]{
		entity: model.EntityPurchase,
		label:  "Purchase",
		repo:   s.records.Purchases,
		record: p,
		v:      v,
		check: func(txCtx context.Context) error {
			sup, err := lookupRef(txCtx, v, s.records.Suppliers, "supplier_id", req.SupplierID)
			if err != nil || sup == nil {
				return err
			}
			supplierName = sup.Name
			if sup.Status != model.PartnerStatusActive {
				v.Form("Cannot create purchase for inactive supplier.")
			}
			return nil
		},
		assign:  func(n int64, _ string) { p.ID = n },
		ownerOf: func(o *model.Purchase) string { return fmt.Sprintf("purchase %d", o.ID) },
		summary: func() Created {
			return Created{Entity: model.EntityPurchase, ID: p.ID, Name: supplierName}
		},
	})
	if err != nil {
		return Result[model.Purchase]{}, err
	}
	return Result[model.Purchase]{Record: p, Message: fmt.Sprintf("Purchase %d successfully created.", p.ID)}, nil
}

func (s *purchasingService) CreateReceipt(ctx context.Context, req CreateReceiptRequest) (Result[model.ReceiptTransaction], error) {
	v := validation.New(s.deps.Now)
	v.RequiredRef("area_id", req.AreaID)
	v.RequiredRef("supplier_id", req.SupplierID)

	grn := &model.ReceiptTransaction{
		TransactionNo:     v.Optional("transaction_no", req.TransactionNo, validation.Text{MaxLen: 50}),
		TransactionDate:   v.Date("transaction_date", req.TransactionDate),
		Nature:            v.Required("nature", req.Nature, validation.Text{MaxLen: 100}),
		DeliveryChallanNo: v.Nullable("delivery_challan_no", req.DeliveryChallanNo, validation.Text{MaxLen: 100}),
		ClientPOID:        ref(req.ClientPOID),
		POID:              ref(req.POID),
		GPOID:             ref(req.GPOID),
		ItemID:            ref(req.ItemID),
		Quantity:          nonNegative(v, "quantity", req.Quantity),
		Rate:              nonNegative(v, "rate", req.Rate),
		Amount:            nonNegative(v, "amount", req.Amount),
		SalesTax:          nonNegative(v, "sales_tax", req.SalesTax),
		Remarks:           v.Nullable("remarks", req.Remarks, validation.Text{}),
		GRIR:              v.Required("grir", req.GRIR, validation.Text{MaxLen: 100}),
		GPIStatus:         v.ChoiceOr("gpi_status", req.GPIStatus, validation.Choice{Set: model.GPIStatuses}, model.GPIStatusPending),
	}
	if req.AreaID != nil {
		grn.AreaID = *req.AreaID
	}
	if req.SupplierID != nil {
		grn.SupplierID = *req.SupplierID
	}

	_, err := create(ctx, s.deps, creation[model.ReceiptTransaction]{
		entity: model.EntityReceipt,
		label:  "Receipt Transaction",
		repo:   s.records.Receipts,
		record: grn,
		v:      v,
		check: func(txCtx context.Context) error {
			if _, err := lookupRef(txCtx, v, s.records.Areas, "area_id", req.AreaID); err != nil {
				return err
			}
			if _, err := lookupRef(txCtx, v, s.records.Suppliers, "supplier_id", req.SupplierID); err != nil {
				return err
			}
			for field, id := range map[string]*int64{"client_po_id": grn.ClientPOID, "po_id": grn.POID, "gpo_id": grn.GPOID} {
				if _, err := lookupRef(txCtx, v, s.records.PurchaseOrders, field, id); err != nil {
					return err
				}
			}
			_, err := lookupRef(txCtx, v, s.records.Items, "item_id", grn.ItemID)
			return err
		},
		assign: func(n int64, code string) {
			grn.ID = n
			if grn.TransactionNo == "" {
				grn.TransactionNo = code
			}
		},
		uniques: func() []unique {
			return []unique{docNumber("transaction_no", "transaction number", grn.TransactionNo)}
		},
		ownerOf: func(o *model.ReceiptTransaction) string { return "GRN " + o.TransactionNo },
		summary: func() Created {
			return Created{Entity: model.EntityReceipt, ID: grn.ID, Code: grn.TransactionNo, Name: "GRN " + grn.TransactionNo}
		},
	})
	if err != nil {
		return Result[model.ReceiptTransaction]{}, err
	}
	return Result[model.ReceiptTransaction]{Record: grn, Message: fmt.Sprintf("Receipt Transaction %s successfully created.", grn.TransactionNo)}, nil
}

func (s *purchasingService) CreatePurchaseVoucher(ctx context.Context, req CreatePurchaseVoucherRequest) (Result[model.PurchaseVoucher], error) {
	v := validation.New(s.deps.Now)
	pv := &model.PurchaseVoucher{
		TransactionNo:   v.Optional("transaction_no", req.TransactionNo, validation.Text{MaxLen: 20}),
		TransactionType: v.Required("transaction_type", req.TransactionType, validation.Choice{Set: model.VoucherTypes}),
		TransactionDate: v.Date("transaction_date", req.TransactionDate),
		SupplierID:      ref(req.SupplierID),
		BillNo:          v.Required("bill_no", req.BillNo, validation.Text{MaxLen: 50}),
		STInvNo:         v.Required("st_inv_no", req.STInvNo, validation.Text{MaxLen: 50}),
		BiltyNo:         v.Required("bilty_no", req.BiltyNo, validation.Text{MaxLen: 50}),
	}
	if req.Days == nil {
		v.Fail("days", "This field is required.")
	} else {
		v.Check(*req.Days >= 0, "days", "Ensure this value is greater than or equal to 0.")
		pv.Days = *req.Days
	}

	_, err := create(ctx, s.deps, creation[model.PurchaseVoucher]{
		entity: model.EntityPurchaseVoucher,
		label:  "Purchase Voucher",
		repo:   s.records.PurchaseVouchers,
		record: pv,
		v:      v,
		check: func(txCtx context.Context) error {
			_, err := lookupRef(txCtx, v, s.records.Suppliers, "supplier_id", pv.SupplierID)
			return err
		},
		assign: func(n int64, code string) {
			pv.ID = n
			if pv.TransactionNo == "" {
				pv.TransactionNo = code
			}
		},
		uniques: func() []unique {
			return []unique{docNumber("transaction_no", "transaction number", pv.TransactionNo)}
		},
		ownerOf: func(o *model.PurchaseVoucher) string { return voucherName(o) },
		summary: func() Created {
			return Created{Entity: model.EntityPurchaseVoucher, ID: pv.ID, Code: pv.TransactionNo, Name: voucherName(pv)}
		},
	})
	if err != nil {
		return Result[model.PurchaseVoucher]{}, err
	}
	return Result[model.PurchaseVoucher]{Record: pv, Message: fmt.Sprintf("Purchase Voucher %s successfully created.", pv.TransactionNo)}, nil
}

func voucherName(pv *model.PurchaseVoucher) string {
	return fmt.Sprintf("Voucher %s - %s", pv.TransactionNo, pv.TransactionType)
}
