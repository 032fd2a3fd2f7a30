package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemDefinition is a stock item; BaseItemID links a variant to the item it derives from.
type ItemDefinition struct {
	ID            int64              `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ItemCode      string             `gorm:"type:varchar(50);not null;uniqueIndex" json:"item_code"`
	Name          string             `gorm:"type:varchar(250);not null" json:"name"`
	Specification *string            `gorm:"type:text" json:"specification"`
	BaseItemID    *int64             `gorm:"index" json:"base_item_id"`
	BaseItem      *ItemDefinition    `gorm:"foreignKey:BaseItemID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CategoryID    int64              `gorm:"not null;index" json:"category_id"`
	Category      *InventoryCategory `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	SalesTaxType  string             `gorm:"type:varchar(50);not null" json:"sales_tax_type"`
	UnitOfMeasure string             `gorm:"type:varchar(20);not null" json:"unit_of_measure"`
	StandardCost  decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"standard_cost"`
	Important     bool               `gorm:"not null" json:"important"`
	Active        bool               `gorm:"not null" json:"active"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func (ItemDefinition) TableName() string { return "item_definition" }
