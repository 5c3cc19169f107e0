package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Inventory struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	SellerID uint `gorm:"index;not null" json:"seller_id"`

	Name              string          `gorm:"not null;size:100" json:"name"`
	Type              string          `gorm:"size:50" json:"type"` // plant, seed, tool, medicine, ...
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity          int             `gorm:"not null" json:"quantity"`
	LowStockThreshold int             `gorm:"not null;default:0" json:"low_stock_threshold"`
	Description       string          `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Seller User `gorm:"foreignKey:SellerID" json:"-"`
}

// IsLowStock reports whether the item is at or below its restock threshold.
func (i *Inventory) IsLowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}
