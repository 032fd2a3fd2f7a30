package model

// Entity identifies a record type for code sequences, audit entries and events.
type Entity string

const (
	EntityArea              Entity = "area"
	EntitySupplier          Entity = "supplier"
	EntityCustomer          Entity = "customer"
	EntityDepartment        Entity = "department"
	EntityInventoryCategory Entity = "inventory_category"
	EntityItem              Entity = "item"
	EntityRequisition       Entity = "requisition"
	EntityPurchaseOrder     Entity = "purchase_order"
	EntityPurchase          Entity = "purchase"
	EntityReceipt           Entity = "receipt"
	EntityPurchaseVoucher   Entity = "purchase_voucher"
	EntityLotTransaction    Entity = "lot_transaction"
	EntityIssueTransaction  Entity = "issue_transaction"
)

var entityPrefixes = map[Entity]string{
	EntityArea:             "AREA",
	EntitySupplier:         "SUP",
	EntityCustomer:         "CUST",
	EntityItem:             "ITEM",
	EntityRequisition:      "REQ",
	EntityPurchaseOrder:    "PO",
	EntityReceipt:          "GRN",
	EntityPurchaseVoucher:  "PV",
	EntityLotTransaction:   "LOT",
	EntityIssueTransaction: "ISS",
}

// Prefix returns the display-code prefix, or "" for entities without a generated code.
func (e Entity) Prefix() string {
	return entityPrefixes[e]
}

// CodeSequence holds the last number handed out for an entity.
type CodeSequence struct {
	Entity    Entity `gorm:"type:varchar(50);primaryKey"`
	LastValue int64  `gorm:"not null;default:0"`
}

func (CodeSequence) TableName() string { return "code_sequences" }
