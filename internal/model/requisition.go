package model

import "time"

type Requisition struct {
	ID           int64       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	DocNumber    string      `gorm:"type:varchar(50);not null;uniqueIndex" json:"doc_number"`
	DepartmentID int64       `gorm:"not null;index" json:"department_id"`
	Department   *Department `gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	RequestedBy  string      `gorm:"type:varchar(100);not null" json:"requested_by"`
	Remarks      *string     `gorm:"type:text" json:"remarks"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (Requisition) TableName() string { return "requisition" }
