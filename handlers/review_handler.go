package handlers

import (
	"errors"
	"strconv"

	"github.com/starboy1402/GreenMed/middleware"
	"github.com/starboy1402/GreenMed/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	DB *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{DB: db}
}

type CreateReviewRequest struct {
	SellerID uint   `json:"seller_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// CreateReview - POST /api/reviews
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}

	reviewer := middleware.CurrentUser(c)

	var review models.Review
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var seller models.User
		if err := tx.First(&seller, req.SellerID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Seller not found")
		}

		if seller.ID == reviewer.ID {
			return fiber.NewError(fiber.StatusBadRequest, "Cannot review yourself")
		}

		var existing models.Review
		err := tx.Where("seller_id = ? AND reviewer_id = ?", seller.ID, reviewer.ID).
			First(&existing).Error
		if err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "You have already reviewed this seller")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if req.Rating < 1 || req.Rating > 5 {
			return fiber.NewError(fiber.StatusBadRequest, "Rating must be between 1 and 5")
		}

		review = models.Review{
			SellerID:   seller.ID,
			ReviewerID: reviewer.ID,
			Rating:     req.Rating,
			Comment:    req.Comment,
		}
		return tx.Create(&review).Error
	})
	if err != nil {
		return err
	}

	review.Reviewer = reviewer
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": models.NewReviewView(&review)})
}

// GetReviewsBySeller - GET /api/reviews/seller/:sellerId
func (h *ReviewHandler) GetReviewsBySeller(c *fiber.Ctx) error {
	sellerID, err := strconv.Atoi(c.Params("sellerId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid seller id")
	}

	var seller models.User
	if err := h.DB.First(&seller, sellerID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Seller not found")
	}

	var reviews []models.Review
	if err := h.DB.Preload("Reviewer").Where("seller_id = ?", sellerID).
		Order("created_at desc").Find(&reviews).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch reviews")
	}

	views := make([]models.ReviewView, 0, len(reviews))
	for i := range reviews {
		views = append(views, models.NewReviewView(&reviews[i]))
	}

	return c.JSON(fiber.Map{"data": views})
}

// GetSellerRating - GET /api/reviews/seller/:sellerId/rating
func (h *ReviewHandler) GetSellerRating(c *fiber.Ctx) error {
	sellerID, err := strconv.Atoi(c.Params("sellerId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid seller id")
	}

	var seller models.User
	if err := h.DB.First(&seller, sellerID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Seller not found")
	}

	average, total, err := sellerRating(h.DB, uint(sellerID))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch rating")
	}

	return c.JSON(fiber.Map{
		"average_rating": average,
		"total_reviews":  total,
	})
}

// sellerRating computes the seller's average rating rounded half away from
// zero to one decimal place, and the review count. No reviews yields 0.0.
func sellerRating(db *gorm.DB, sellerID uint) (decimal.Decimal, int64, error) {
	var total int64
	if err := db.Model(&models.Review{}).Where("seller_id = ?", sellerID).
		Count(&total).Error; err != nil {
		return decimal.Zero, 0, err
	}
	if total == 0 {
		return decimal.Zero, 0, nil
	}

	var sum int64
	if err := db.Model(&models.Review{}).Where("seller_id = ?", sellerID).
		Select("COALESCE(SUM(rating), 0)").Scan(&sum).Error; err != nil {
		return decimal.Zero, 0, err
	}

	average := decimal.NewFromInt(sum).Div(decimal.NewFromInt(total)).Round(1)
	return average, total, nil
}
