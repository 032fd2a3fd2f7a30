package model

import "time"

// Supplier is a vendor goods are purchased from.
type Supplier struct {
	ID            int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Code          string    `gorm:"type:varchar(20);uniqueIndex" json:"code"`
	Name          string    `gorm:"type:varchar(200);not null" json:"name"`
	ContactPerson string    `gorm:"type:varchar(100)" json:"contact_person"`
	ContactEmail  string    `gorm:"type:varchar(254)" json:"contact_email"`
	ContactPhone  string    `gorm:"type:varchar(12)" json:"contact_phone"`
	BusinessType  string    `gorm:"type:varchar(20)" json:"business_type"`
	NTNNumber     *string   `gorm:"type:varchar(50)" json:"ntn_number"`
	Country       string    `gorm:"type:varchar(100)" json:"country"`
	PaymentTerms  string    `gorm:"type:varchar(20);not null" json:"payment_terms"`
	Currency      string    `gorm:"type:varchar(3);not null" json:"currency"`
	Website       *string   `gorm:"type:varchar(200)" json:"website"`
	Notes         *string   `gorm:"type:text" json:"notes"`
	Status        string    `gorm:"type:varchar(20);not null;index" json:"status"`
	IsPreferred   bool      `gorm:"not null" json:"is_preferred"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Supplier) TableName() string { return "suppliers" }

// Customer is a party goods are processed or issued for.
type Customer struct {
	ID            int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Code          string    `gorm:"type:varchar(20);uniqueIndex" json:"code"`
	Name          string    `gorm:"type:varchar(200);not null" json:"name"`
	CustomerType  string    `gorm:"type:varchar(20)" json:"customer_type"`
	ContactPerson string    `gorm:"type:varchar(100)" json:"contact_person"`
	ContactEmail  string    `gorm:"type:varchar(254)" json:"contact_email"`
	ContactPhone  string    `gorm:"type:varchar(12)" json:"contact_phone"`
	Country       string    `gorm:"type:varchar(100)" json:"country"`
	PaymentTerms  string    `gorm:"type:varchar(20);not null" json:"payment_terms"`
	Currency      string    `gorm:"type:varchar(3);not null" json:"currency"`
	Website       *string   `gorm:"type:varchar(200)" json:"website"`
	Notes         *string   `gorm:"type:text" json:"notes"`
	Status        string    `gorm:"type:varchar(20);not null" json:"status"`
	IsPreferred   bool      `gorm:"not null" json:"is_preferred"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }
