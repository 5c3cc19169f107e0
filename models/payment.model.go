package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment statuses
const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
)

type Payment struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"uniqueIndex;not null" json:"order_id"`

	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"size:50" json:"payment_method"` // e.g. "bKash", "Nagad", "Card"
	TransactionID string          `gorm:"size:100" json:"transaction_id"`
	Status        string          `gorm:"size:20;not null" json:"status"`
	PaymentDate   time.Time       `gorm:"not null" json:"payment_date"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}
