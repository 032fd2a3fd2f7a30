package service

import (
	"context"
	"errors"
	"fmt"

	"erpforms/internal/model"
	"erpforms/internal/repository"
)

// ErrUnknownEntity is returned for an entity without an entry form.
var ErrUnknownEntity = errors.New("unknown entity")

// NextCodeService previews the id and display code a new record would receive,
// so that blank forms can be prefilled. Nothing is reserved.
type NextCodeService interface {
	NextCode(ctx context.Context, entity model.Entity) (NextCodeResponse, error)
}

type nextCodeService struct {
	previews map[model.Entity]func(context.Context) (NextCodeResponse, error)
}

func preview[T repository.Record](repo repository.RecordRepository[T], entity model.Entity, padding int) func(context.Context) (NextCodeResponse, error) {
	return func(ctx context.Context) (NextCodeResponse, error) {
		return nextCode(ctx, repo, entity, padding)
	}
}

func NewNextCodeService(records repository.Records, padding int) NextCodeService {
	return &nextCodeService{previews: map[model.Entity]func(context.Context) (NextCodeResponse, error){
		model.EntityArea:              preview(records.Areas, model.EntityArea, padding),
		model.EntitySupplier:          preview(records.Suppliers, model.EntitySupplier, padding),
		model.EntityCustomer:          preview(records.Customers, model.EntityCustomer, padding),
		model.EntityDepartment:        preview(records.Departments, model.EntityDepartment, padding),
		model.EntityInventoryCategory: preview(records.InventoryCategories, model.EntityInventoryCategory, padding),
		model.EntityItem:              preview(records.Items, model.EntityItem, padding),
		model.EntityRequisition:       preview(records.Requisitions, model.EntityRequisition, padding),
		model.EntityPurchaseOrder:     preview(records.PurchaseOrders, model.EntityPurchaseOrder, padding),
		model.EntityPurchase:          preview(records.Purchases, model.EntityPurchase, padding),
		model.EntityReceipt:           preview(records.Receipts, model.EntityReceipt, padding),
		model.EntityPurchaseVoucher:   preview(records.PurchaseVouchers, model.EntityPurchaseVoucher, padding),
		model.EntityLotTransaction:    preview(records.LotTransactions, model.EntityLotTransaction, padding),
		model.EntityIssueTransaction:  preview(records.IssueTransactions, model.EntityIssueTransaction, padding),
	}}
}

func (s *nextCodeService) NextCode(ctx context.Context, entity model.Entity) (NextCodeResponse, error) {
	fn, ok := s.previews[entity]
	if !ok {
		return NextCodeResponse{}, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}
	res, err := fn(ctx)
	if err != nil {
		return NextCodeResponse{}, fmt.Errorf("failed to compute next %s code: %w", entity, err)
	}
	return res, nil
}
