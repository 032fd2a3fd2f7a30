package model

import "time"

// LotTransaction is a processing batch run for a customer.
type LotTransaction struct {
	ID            int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	DocNo         string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"doc_no"`
	Date          time.Time `gorm:"type:date;not null" json:"date"`
	CustomerID    *int64    `gorm:"index" json:"customer_id"`
	Customer      *Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	GrayReceiptNo string    `gorm:"type:varchar(30);not null" json:"gray_receipt_no"`
	DCNo          string    `gorm:"column:dc_no;type:varchar(30);not null" json:"dc_no"`
	LotNo         string    `gorm:"type:varchar(30);not null" json:"lot_no"`
	Nature        string    `gorm:"type:varchar(30);not null" json:"nature"`
	StartDate     time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate       time.Time `gorm:"type:date;not null" json:"end_date"`
	Remarks       string    `gorm:"type:text" json:"remarks"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (LotTransaction) TableName() string { return "lot_transaction" }

// IssueTransaction records material issued to, or returned from, an area or department.
type IssueTransaction struct {
	ID            int64       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	TransactionNo string      `gorm:"type:varchar(20);not null;uniqueIndex" json:"transaction_no"`
	Date          time.Time   `gorm:"type:date;not null" json:"date"`
	Nature        string      `gorm:"type:varchar(30);not null" json:"nature"`
	AreaID        *int64      `gorm:"index" json:"area_id"`
	Area          *Area       `gorm:"foreignKey:AreaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	DepartmentID  *int64      `gorm:"index" json:"department_id"`
	Department    *Department `gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CustomerID    *int64      `gorm:"index" json:"customer_id"`
	Customer      *Customer   `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	LotNo         string      `gorm:"type:varchar(30);not null" json:"lot_no"`
	DCNo          string      `gorm:"column:dc_no;type:varchar(30);not null" json:"dc_no"`
	Material      *string     `gorm:"type:varchar(200)" json:"material"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (IssueTransaction) TableName() string { return "issue_transaction" }
