package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptTransaction is a goods receipt note (GRN).
type ReceiptTransaction struct {
	ID                int64               `gorm:"primaryKey;autoIncrement:false" json:"id"`
	TransactionNo     string              `gorm:"type:varchar(50);not null;uniqueIndex" json:"transaction_no"`
	TransactionDate   time.Time           `gorm:"type:date;not null" json:"transaction_date"`
	Nature            string              `gorm:"type:varchar(100);not null" json:"nature"`
	AreaID            int64               `gorm:"not null;index" json:"area_id"`
	Area              *Area               `gorm:"foreignKey:AreaID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	SupplierID        int64               `gorm:"not null;index" json:"supplier_id"`
	Supplier          *Supplier           `gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	DeliveryChallanNo *string             `gorm:"type:varchar(100)" json:"delivery_challan_no"`
	ClientPOID        *int64              `gorm:"column:client_po_id;index" json:"client_po_id"`
	ClientPO          *PurchaseOrder      `gorm:"foreignKey:ClientPOID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	POID              *int64              `gorm:"column:po_id;index" json:"po_id"`
	PO                *PurchaseOrder      `gorm:"foreignKey:POID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	GPOID             *int64              `gorm:"column:gpo_id;index" json:"gpo_id"`
	GPO               *PurchaseOrder      `gorm:"foreignKey:GPOID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	ItemID            *int64              `gorm:"index" json:"item_id"`
	Item              *ItemDefinition     `gorm:"foreignKey:ItemID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Quantity          decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"quantity"`
	Rate              decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"rate"`
	Amount            decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"amount"`
	SalesTax          decimal.NullDecimal `gorm:"column:st;type:decimal(10,2)" json:"sales_tax"`
	Remarks           *string             `gorm:"type:text" json:"remarks"`
	GRIR              string              `gorm:"column:grir;type:varchar(100);not null" json:"grir"`
	GPIStatus         string              `gorm:"column:gpi_status;type:varchar(50);not null" json:"gpi_status"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func (ReceiptTransaction) TableName() string { return "grn" }
