package repository

import (
	"context"
	"strings"

	"erpforms/internal/model"

	"gorm.io/gorm"
)

// LookupRepository serves read-only projections for selection widgets.
// Every method accepts an optional case-insensitive substring filter.
type LookupRepository interface {
	Suppliers(ctx context.Context, q string) ([]model.SupplierLookup, error)
	Customers(ctx context.Context, q string) ([]model.CustomerLookup, error)
	Areas(ctx context.Context, q string) ([]model.AreaLookup, error)
	Items(ctx context.Context, q string) ([]model.ItemLookup, error)
	PurchaseOrders(ctx context.Context, q string) ([]model.PurchaseOrderLookup, error)
	Requisitions(ctx context.Context, q string) ([]model.RequisitionLookup, error)
	Departments(ctx context.Context, q string) ([]model.NamedLookup, error)
	InventoryCategories(ctx context.Context, q string) ([]model.NamedLookup, error)
}

type lookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

// search ORs a LOWER(col) LIKE condition over columns when q is not blank.
func search(db *gorm.DB, q string, columns ...string) *gorm.DB {
	q = strings.TrimSpace(q)
	if q == "" {
		return db
	}
	pattern := "%" + strings.ToLower(q) + "%"
	conds := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		conds = append(conds, "LOWER("+col+") LIKE ?")
		args = append(args, pattern)
	}
	return db.Where("("+strings.Join(conds, " OR ")+")", args...)
}

func (r *lookupRepository) Suppliers(ctx context.Context, q string) ([]model.SupplierLookup, error) {
	out := []model.SupplierLookup{}
	db := GetDB(ctx, r.db).Table("suppliers").
		Select("id, code, name, contact_person, contact_email, contact_phone")
	err := search(db, q, "name", "code", "contact_person").Order("name").Scan(&out).Error
	return out, err
}

func (r *lookupRepository) Customers(ctx context.Context, q string) ([]model.CustomerLookup, error) {
	out := []model.CustomerLookup{}
	db := GetDB(ctx, r.db).Table("customers").
		Select("id, code, name, contact_person, contact_phone")
	err := search(db, q, "name", "code", "contact_person").Order("name").Scan(&out).Error
	return out, err
}

func (r *lookupRepository) Areas(ctx context.Context, q string) ([]model.AreaLookup, error) {
	out := []model.AreaLookup{}
	db := GetDB(ctx, r.db).Table("areas").
		Select("id, code, area_code, name, description")
	err := search(db, q, "name", "code").Order("area_code").Scan(&out).Error
	return out, err
}

func (r *lookupRepository) Items(ctx context.Context, q string) ([]model.ItemLookup, error) {
	out := []model.ItemLookup{}
	db := GetDB(ctx, r.db).Table("item_definition AS i").
		Select("i.id, i.item_code, i.name, i.specification, i.unit_of_measure, c.name AS category_name").
		Joins("LEFT JOIN inv_category c ON c.id = i.category_id")
	err := search(db, q, "i.name", "i.item_code").Order("i.name").Scan(&out).Error
	return out, err
}

func (r *lookupRepository) PurchaseOrders(ctx context.Context, q string) ([]model.PurchaseOrderLookup, error) {
	out := []model.PurchaseOrderLookup{}
	db := GetDB(ctx, r.db).Table("purchase_order AS po").
		Select("po.id, po.po_number, s.name AS supplier_name, r.doc_number AS requisition_doc").
		Joins("LEFT JOIN suppliers s ON s.id = po.supplier_id").
		Joins("LEFT JOIN requisition r ON r.id = po.requisition_id")
	err := search(db, q, "po.po_number", "s.name").Order("po.id DESC").Scan(&out).Error
	return out, err
}

func (r *lookupRepository) Requisitions(ctx context.Context, q string) ([]model.RequisitionLookup, error) {
	out := []model.RequisitionLookup{}
	db := GetDB(ctx, r.db).Table("requisition AS r").
		Select("r.id, r.doc_number, r.requested_by, d.name AS department_name").
		Joins("LEFT JOIN departments d ON d.id = r.department_id")
	err := search(db, q, "r.doc_number", "r.requested_by", "d.name").Order("r.id DESC").Scan(&out).Error
	return out, err
}

func (r *lookupRepository) Departments(ctx context.Context, q string) ([]model.NamedLookup, error) {
	return r.named(ctx, "departments", q)
}

func (r *lookupRepository) InventoryCategories(ctx context.Context, q string) ([]model.NamedLookup, error) {
	return r.named(ctx, "inv_category", q)
}

func (r *lookupRepository) named(ctx context.Context, table, q string) ([]model.NamedLookup, error) {
	out := []model.NamedLookup{}
	db := GetDB(ctx, r.db).Table(table).Select("id, name")
	err := search(db, q, "name").Order("id").Scan(&out).Error
	return out, err
}
