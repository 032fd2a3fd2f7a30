package model

import "time"

const ActionCreate = "CREATE"

// AuditLog tracks Who, What, and When for every record created through the API
type AuditLog struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	Actor      string    `gorm:"type:varchar(100);index" json:"actor"` // token subject, empty when auth is disabled
	Action     string    `gorm:"type:varchar(50);not null;index" json:"action"`
	Entity     Entity    `gorm:"type:varchar(50);not null;index" json:"entity"`
	EntityID   int64     `gorm:"index" json:"entity_id"`
	EntityName string    `gorm:"type:varchar(255)" json:"entity_name,omitempty"`
	Details    string    `gorm:"type:text" json:"details"` // JSON payload of the created record
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// AllModels lists every persisted model in dependency order.
func AllModels() []any {
	return []any{
		&CodeSequence{},
		&Area{},
		&Supplier{},
		&Customer{},
		&Department{},
		&InventoryCategory{},
		&ItemDefinition{},
		&Requisition{},
		&PurchaseOrder{},
		&Purchase{},
		&ReceiptTransaction{},
		&PurchaseVoucher{},
		&LotTransaction{},
		&IssueTransaction{},
		&AuditLog{},
	}
}
