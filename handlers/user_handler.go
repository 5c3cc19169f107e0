package handlers

import (
	"github.com/starboy1402/GreenMed/middleware"
	"github.com/starboy1402/GreenMed/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	ShopName *string `json:"shop_name"`
}

// SellerListing is the public directory entry for an active approved seller.
type SellerListing struct {
	models.UserView
	AverageRating decimal.Decimal `json:"average_rating"`
	TotalReviews  int64           `json:"total_reviews"`
}

// GetProfile - GET /api/users/profile
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(fiber.Map{"data": models.NewUserView(&user)})
}

// UpdateProfile - PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}

	user := middleware.CurrentUser(c)

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.ShopName != nil {
		user.ShopName = *req.ShopName
	}

	if err := h.DB.Save(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not update profile")
	}

	return c.JSON(fiber.Map{"data": models.NewUserView(&user)})
}

// GetActiveSellers - GET /api/users/sellers
//
// Public storefront directory: active approved sellers with their aggregated
// rating.
func (h *UserHandler) GetActiveSellers(c *fiber.Ctx) error {
	var sellers []models.User
	if err := h.DB.Where("role = ? AND application_status = ? AND is_active = ?",
		models.RoleSeller, models.ApplicationApproved, true).Find(&sellers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch sellers")
	}

	listings := make([]SellerListing, 0, len(sellers))
	for i := range sellers {
		average, total, err := sellerRating(h.DB, sellers[i].ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch sellers")
		}
		listings = append(listings, SellerListing{
			UserView:      models.NewUserView(&sellers[i]),
			AverageRating: average,
			TotalReviews:  total,
		})
	}

	return c.JSON(fiber.Map{"data": listings})
}
