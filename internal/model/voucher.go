package model

import "time"

type PurchaseVoucher struct {
	ID              int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	TransactionNo   string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"transaction_no"`
	TransactionType string    `gorm:"type:varchar(20);not null" json:"transaction_type"`
	TransactionDate time.Time `gorm:"type:date;not null" json:"transaction_date"`
	SupplierID      *int64    `gorm:"index" json:"supplier_id"`
	Supplier        *Supplier `gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	BillNo          string    `gorm:"type:varchar(50);not null" json:"bill_no"`
	STInvNo         string    `gorm:"column:st_inv_no;type:varchar(50);not null" json:"st_inv_no"`
	BiltyNo         string    `gorm:"type:varchar(50);not null" json:"bilty_no"`
	Days            int       `gorm:"not null;check:days >= 0" json:"days"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (PurchaseVoucher) TableName() string { return "purchase_voucher" }
