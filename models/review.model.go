package models

import "time"

type Review struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	SellerID   uint `gorm:"not null;uniqueIndex:idx_seller_reviewer" json:"seller_id"`
	ReviewerID uint `gorm:"not null;uniqueIndex:idx_seller_reviewer" json:"reviewer_id"`

	Rating  int    `gorm:"not null" json:"rating"` // 1..5
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`

	Seller   User `gorm:"foreignKey:SellerID" json:"-"`
	Reviewer User `gorm:"foreignKey:ReviewerID" json:"-"`
}

// ReviewView attaches the reviewer's display name for listing pages.
type ReviewView struct {
	ID           uint      `json:"id"`
	SellerID     uint      `json:"seller_id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewReviewView(r *Review) ReviewView {
	return ReviewView{
		ID:           r.ID,
		SellerID:     r.SellerID,
		ReviewerName: r.Reviewer.Name,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}
