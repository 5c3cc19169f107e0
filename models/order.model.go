package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses
const (
	OrderPendingPayment = "PENDING_PAYMENT"
	OrderProcessing     = "PROCESSING"
	OrderShipped        = "SHIPPED"
	OrderDelivered      = "DELIVERED"
	OrderCancelled      = "CANCELLED"
)

// sellerTransitions lists the status changes a seller or admin may request.
// PENDING_PAYMENT -> PROCESSING is reserved for a successful payment and is
// deliberately absent here.
var sellerTransitions = map[string][]string{
	OrderPendingPayment: {OrderCancelled},
	OrderProcessing:     {OrderShipped, OrderCancelled},
	OrderShipped:        {OrderDelivered},
}

// ValidOrderStatus reports whether s names a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPendingPayment, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a seller or admin may move an order from one
// status to another.
func CanTransition(from, to string) bool {
	for _, next := range sellerTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	CustomerID uint `gorm:"index;not null" json:"customer_id"`
	SellerID   uint `gorm:"index;not null" json:"seller_id"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status      string          `gorm:"size:30;not null;index" json:"status"`
	OrderDate   time.Time       `gorm:"not null;index" json:"order_date"`

	Items           []OrderItem      `gorm:"foreignKey:OrderID" json:"items"`
	ShippingAddress *ShippingAddress `gorm:"foreignKey:OrderID" json:"shipping_address"`

	Customer User `gorm:"foreignKey:CustomerID" json:"-"`
	Seller   User `gorm:"foreignKey:SellerID" json:"-"`
}

type OrderItem struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	OrderID         uint `gorm:"index;not null" json:"order_id"`
	InventoryItemID uint `gorm:"not null" json:"inventory_item_id"`

	Quantity int `gorm:"not null" json:"quantity"`
	// Unit price frozen at purchase time; later inventory price changes do
	// not propagate.
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	InventoryItem Inventory `gorm:"foreignKey:InventoryItemID" json:"-"`
}

type ShippingAddress struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OrderID uint   `gorm:"index;not null" json:"order_id"`
	Street  string `gorm:"size:255" json:"street"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:100" json:"state"`
	ZipCode string `gorm:"size:20" json:"zip_code"`
	Country string `gorm:"size:100" json:"country"`
}
