package models

import "time"

// RevokedToken records a logged-out bearer token by its SHA-256 digest.
// Keeping revocation in the shared store means every instance sees a logout,
// not just the one that handled it. Rows become dead weight once the token
// itself expires and are purged opportunistically.
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey"`
	TokenHash string    `gorm:"uniqueIndex;size:64;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}
