package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records a purchase made from an active supplier.
type Purchase struct {
	ID           int64           `gorm:"primaryKey;autoIncrement:false" json:"id"`
	SupplierID   int64           `gorm:"not null;index" json:"supplier_id"`
	Supplier     *Supplier       `gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	PurchaseDate time.Time       `gorm:"type:date;not null" json:"purchase_date"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Currency     string          `gorm:"type:varchar(3);not null" json:"currency"`
	Status       string          `gorm:"type:varchar(20);not null" json:"status"`
	Notes        *string         `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (Purchase) TableName() string { return "purchases" }
