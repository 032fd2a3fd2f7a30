package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"erpforms/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is a persisted model with a fixed table name.
type Record interface {
	TableName() string
}

// RecordRepository stores one record type. Only creation and reads exist;
// records are never updated or deleted through the API.
type RecordRepository[T Record] interface {
	Create(ctx context.Context, record *T) error
	FindByID(ctx context.Context, id int64) (*T, error)
	FindOne(ctx context.Context, column string, value any) (*T, error)
	MaxID(ctx context.Context) (*int64, error)
	MaxOf(ctx context.Context, column string) (*int64, error)
	Table() string
}

type recordRepository[T Record] struct {
	db    *gorm.DB
	table string
}

func NewRecordRepository[T Record](db *gorm.DB) RecordRepository[T] {
	var zero T
	return &recordRepository[T]{db: db, table: zero.TableName()}
}

func (r *recordRepository[T]) Table() string {
	return r.table
}

func (r *recordRepository[T]) Create(ctx context.Context, record *T) error {
	return GetDB(ctx, r.db).Omit(clause.Associations).Create(record).Error
}

func (r *recordRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	return r.FindOne(ctx, "id", id)
}

// FindOne returns the first record whose column equals value. column must be a trusted identifier.
func (r *recordRepository[T]) FindOne(ctx context.Context, column string, value any) (*T, error) {
	var record T
	err := GetDB(ctx, r.db).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s by %s: %w", r.table, column, err)
	}
	return &record, nil
}

func (r *recordRepository[T]) MaxID(ctx context.Context) (*int64, error) {
	return r.MaxOf(ctx, "id")
}

// MaxOf returns the highest value of an integer column, or nil for an empty table.
func (r *recordRepository[T]) MaxOf(ctx context.Context, column string) (*int64, error) {
	var max sql.NullInt64
	row := GetDB(ctx, r.db).Table(r.table).Select(fmt.Sprintf("MAX(%s)", column)).Row()
	if err := row.Scan(&max); err != nil {
		return nil, fmt.Errorf("max %s.%s: %w", r.table, column, err)
	}
	if !max.Valid {
		return nil, nil
	}
	return &max.Int64, nil
}

// Records groups the repository of every entry form's record type.
type Records struct {
	Areas               RecordRepository[model.Area]
	Suppliers           RecordRepository[model.Supplier]
	Customers           RecordRepository[model.Customer]
	Departments         RecordRepository[model.Department]
	InventoryCategories RecordRepository[model.InventoryCategory]
	Items               RecordRepository[model.ItemDefinition]
	Requisitions        RecordRepository[model.Requisition]
	PurchaseOrders      RecordRepository[model.PurchaseOrder]
	Purchases           RecordRepository[model.Purchase]
	Receipts            RecordRepository[model.ReceiptTransaction]
	PurchaseVouchers    RecordRepository[model.PurchaseVoucher]
	LotTransactions     RecordRepository[model.LotTransaction]
	IssueTransactions   RecordRepository[model.IssueTransaction]
}

func NewRecords(db *gorm.DB) Records {
	return Records{
		Areas:               NewRecordRepository[model.Area](db),
		Suppliers:           NewRecordRepository[model.Supplier](db),
		Customers:           NewRecordRepository[model.Customer](db),
		Departments:         NewRecordRepository[model.Department](db),
		InventoryCategories: NewRecordRepository[model.InventoryCategory](db),
		Items:               NewRecordRepository[model.ItemDefinition](db),
		Requisitions:        NewRecordRepository[model.Requisition](db),
		PurchaseOrders:      NewRecordRepository[model.PurchaseOrder](db),
		Purchases:           NewRecordRepository[model.Purchase](db),
		Receipts:            NewRecordRepository[model.ReceiptTransaction](db),
		PurchaseVouchers:    NewRecordRepository[model.PurchaseVoucher](db),
		LotTransactions:     NewRecordRepository[model.LotTransaction](db),
		IssueTransactions:   NewRecordRepository[model.IssueTransaction](db),
	}
}
