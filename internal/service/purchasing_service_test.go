package service

import (
	"context"
	"testing"

	"erpforms/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchasingService_CreatePurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("total amount must be strictly positive", func(t *testing.T) {
		f := newFixture(t)
		f.seedSupplier(t, 1, "Acme", model.PartnerStatusActive)
		svc := NewPurchasingService(f.deps, f.records)

		for _, amount := range []string{"0", "-5", "0.00"} {
			_, err := svc.CreatePurchase(ctx, CreatePurchaseRequest{SupplierID: ptr(int64(1)), TotalAmount: amount})
			verrs := requireValidation(t, err)
			assert.Equal(t, "Total amount must be greater than zero.", verrs.Fields["total_amount"], amount)
		}
		assert.Zero(t, f.count(t, &model.Purchase{}))

		res, err := svc.CreatePurchase(ctx, CreatePurchaseRequest{SupplierID: ptr(int64(1)), TotalAmount: "0.01"})
		require.NoError(t, err)
		assert.True(t, res.Record.TotalAmount.Equal(decimal.RequireFromString("0.01")))
		assert.Equal(t, "2025-06-15", res.Record.PurchaseDate.Format("2006-01-02"))
		assert.Equal(t, model.CurrencyPKR, res.Record.Currency)
		assert.Equal(t, model.PurchaseStatusDraft, res.Record.Status)
		assert.Equal(t, "Purchase 1 successfully created.", res.Message)
	})

	t.Run("only active suppliers", func(t *testing.T) {
		f := newFixture(t)
		f.seedSupplier(t, 1, "Acme", model.PartnerStatusActive)
		f.seedSupplier(t, 2, "Shady Co", model.PartnerStatusSuspended)
		svc := NewPurchasingService(f.deps, f.records)

		_, err := svc.CreatePurchase(ctx, CreatePurchaseRequest{SupplierID: ptr(int64(2)), TotalAmount: "100"})
		verrs := requireValidation(t, err)
		assert.Equal(t, []string{"Cannot create purchase for inactive supplier."}, verrs.Form)
		assert.Zero(t, f.count(t, &model.Purchase{}))

		res, err := svc.CreatePurchase(ctx, CreatePurchaseRequest{SupplierID: ptr(int64(1)), TotalAmount: "100"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Record.SupplierID)
		require.Len(t, f.events.events, 1)
		assert.Equal(t, "Acme", f.events.events[0].Name)
	})

	t.Run("future date and unknown supplier", func(t *testing.T) {
		f := newFixture(t)
		svc := NewPurchasingService(f.deps, f.records)

		_, err := svc.CreatePurchase(ctx, CreatePurchaseRequest{
			SupplierID:   ptr(int64(99)),
			PurchaseDate: "2025-06-16",
			TotalAmount:  "abc",
		})
		verrs := requireValidation(t, err)
		assert.Equal(t, "Purchase date cannot be in the future.", verrs.Fields["purchase_date"])
		assert.Equal(t, invalidRefMsg, verrs.Fields["supplier_id"])
		assert.Equal(t, "Enter a number.", verrs.Fields["total_amount"])

		_, err = svc.CreatePurchase(ctx, CreatePurchaseRequest{TotalAmount: "5"})
		assert.Equal(t, "This field is required.", requireValidation(t, err).Fields["supplier_id"])
	})
}

func TestPurchasingService_CreateRequisition(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedDepartment(t, 1, "Dyeing")
	svc := NewPurchasingService(f.deps, f.records)

	res, err := svc.CreateRequisition(ctx, CreateRequisitionRequest{DepartmentID: ptr(int64(1)), RequestedBy: "Hamid"})
	require.NoError(t, err)
	assert.Equal(t, "REQ-0001", res.Record.DocNumber)
	assert.Equal(t, "Requisition REQ-0001 successfully created.", res.Message)

	res, err = svc.CreateRequisition(ctx, CreateRequisitionRequest{DocNumber: "MAN-7", DepartmentID: ptr(int64(1)), RequestedBy: "Hamid"})
	require.NoError(t, err)
	assert.Equal(t, "MAN-7", res.Record.DocNumber)
	assert.Equal(t, int64(2), res.Record.ID)

	_, err = svc.CreateRequisition(ctx, CreateRequisitionRequest{DocNumber: "MAN-7", DepartmentID: ptr(int64(1)), RequestedBy: "Nadia"})
	conflict := requireConflict(t, err)
	assert.Equal(t, "doc_number", conflict.Field)
	assert.Equal(t, "Requisition with this document number already exists (owned by Hamid).", conflict.Message)

	_, err = svc.CreateRequisition(ctx, CreateRequisitionRequest{DepartmentID: ptr(int64(9))})
	verrs := requireValidation(t, err)
	assert.Equal(t, invalidRefMsg, verrs.Fields["department_id"])
	assert.Equal(t, "This field is required.", verrs.Fields["requested_by"])
}

func TestPurchasingService_CreatePurchaseOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedSupplier(t, 1, "Acme", model.PartnerStatusActive)
	svc := NewPurchasingService(f.deps, f.records)

	req := CreatePurchaseOrderRequest{
		PODate:     "2025-06-01",
		POType:     "Local",
		SupplierID: ptr(int64(1)),
		DeliveryAt: "Main Store",
		OrderBy:    "Imran",
		Quantity:   "10",
		Rate:       "12.50",
		Amount:     "125.00",
	}
	res, err := svc.CreatePurchaseOrder(ctx, req)
	require.NoError(t, err)
	po := res.Record
	assert.Equal(t, "PO-0001", po.PONumber)
	assert.True(t, po.Amount.Valid)
	assert.False(t, po.Freight.Valid)
	assert.Nil(t, po.AreaID)
	assert.Equal(t, "Purchase Order PO-0001 successfully created.", res.Message)

	req.Discount = "-1"
	req.PODate = "01/06/2025"
	req.AreaID = ptr(int64(3))
	_, err = svc.CreatePurchaseOrder(ctx, req)
	verrs := requireValidation(t, err)
	assert.Equal(t, "Ensure this value is greater than or equal to 0.", verrs.Fields["discount"])
	assert.Equal(t, "Enter a valid date.", verrs.Fields["po_date"])
	assert.Equal(t, invalidRefMsg, verrs.Fields["area_id"])
}

func TestPurchasingService_CreateReceipt(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedSupplier(t, 1, "Acme", model.PartnerStatusActive)
	f.seedArea(t, 1, 10, "Store")
	svc := NewPurchasingService(f.deps, f.records)

	res, err := svc.CreateReceipt(ctx, CreateReceiptRequest{
		TransactionDate: "2025-06-10",
		Nature:          "Local Purchase",
		AreaID:          ptr(int64(1)),
		SupplierID:      ptr(int64(1)),
		SalesTax:        "17",
		GRIR:            "GR-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "GRN-0001", res.Record.TransactionNo)
	assert.Equal(t, model.GPIStatusPending, res.Record.GPIStatus)
	assert.Equal(t, "Receipt Transaction GRN-0001 successfully created.", res.Message)

	_, err = svc.CreateReceipt(ctx, CreateReceiptRequest{
		TransactionDate: "2025-06-10",
		Nature:          "Local Purchase",
		AreaID:          ptr(int64(1)),
		SupplierID:      ptr(int64(1)),
		POID:            ptr(int64(5)),
		GRIR:            "GR-2",
		GPIStatus:       "Done",
	})
	verrs := requireValidation(t, err)
	assert.Contains(t, verrs.Fields, "gpi_status")
	assert.Equal(t, invalidRefMsg, verrs.Fields["po_id"])
}

func TestPurchasingService_CreatePurchaseVoucher(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewPurchasingService(f.deps, f.records)

	req := CreatePurchaseVoucherRequest{
		TransactionType: "Credit",
		TransactionDate: "2025-06-10",
		BillNo:          "B-1",
		STInvNo:         "ST-1",
		BiltyNo:         "BL-1",
		Days:            ptr(30),
	}
	res, err := svc.CreatePurchaseVoucher(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "PV-0001", res.Record.TransactionNo)
	assert.Equal(t, "Purchase Voucher PV-0001 successfully created.", res.Message)

	req.Days = ptr(-1)
	req.TransactionType = "Barter"
	_, err = svc.CreatePurchaseVoucher(ctx, req)
	verrs := requireValidation(t, err)
	assert.Equal(t, "Ensure this value is greater than or equal to 0.", verrs.Fields["days"])
	assert.Contains(t, verrs.Fields, "transaction_type")

	req.Days = nil
	_, err = svc.CreatePurchaseVoucher(ctx, req)
	assert.Equal(t, "This field is required.", requireValidation(t, err).Fields["days"])
}
