package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseOrder struct {
	ID                int64               `gorm:"primaryKey;autoIncrement:false" json:"id"`
	PONumber          string              `gorm:"type:varchar(50);not null;uniqueIndex" json:"po_number"`
	PODate            time.Time           `gorm:"type:date;not null" json:"po_date"`
	POType            string              `gorm:"type:varchar(50);not null" json:"po_type"`
	AreaID            *int64              `gorm:"index" json:"area_id"`
	Area              *Area               `gorm:"foreignKey:AreaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	SupplierID        *int64              `gorm:"index" json:"supplier_id"`
	Supplier          *Supplier           `gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	RequisitionID     *int64              `gorm:"index" json:"requisition_id"`
	Requisition       *Requisition        `gorm:"foreignKey:RequisitionID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Remarks           *string             `gorm:"type:text" json:"remarks"`
	TermsConditions   *string             `gorm:"type:text" json:"terms_conditions"`
	RefNo             *string             `gorm:"type:varchar(50)" json:"ref_no"`
	DeliveryAt        string              `gorm:"type:varchar(250);not null" json:"delivery_at"`
	OrderBy           string              `gorm:"type:varchar(100);not null" json:"order_by"`
	Condition         *string             `gorm:"type:text" json:"condition"`
	Freight           decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"freight"`
	Quantity          decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"quantity"`
	Rate              decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"rate"`
	Amount            decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"amount"`
	SalesTax          decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"sales_tax"`
	Discount          decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"discount"`
	RequisitionNumber *string             `gorm:"type:varchar(50)" json:"requisition_number"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func (PurchaseOrder) TableName() string { return "purchase_order" }
