package handlers

import (
	"strconv"
	"time"

	"github.com/starboy1402/GreenMed/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AdminHandler struct {
	DB *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{DB: db}
}

// AdminOrderResponse projects an order with both party names for the admin
// order table.
type AdminOrderResponse struct {
	ID           uint            `json:"id"`
	CustomerName string          `json:"customer_name"`
	SellerName   string          `json:"seller_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	OrderDate    time.Time       `json:"order_date"`
	Items        []OrderItemView `json:"items"`
}

// GetPendingSellers - GET /api/admin/sellers/pending
func (h *AdminHandler) GetPendingSellers(c *fiber.Ctx) error {
	var sellers []models.User
	if err := h.DB.Where("role = ? AND application_status = ?",
		models.RoleSeller, models.ApplicationPending).Find(&sellers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch sellers")
	}
	return c.JSON(fiber.Map{"data": models.NewUserViews(sellers)})
}

// GetAllSellers - GET /api/admin/sellers
func (h *AdminHandler) GetAllSellers(c *fiber.Ctx) error {
	var sellers []models.User
	if err := h.DB.Where("role = ?", models.RoleSeller).Find(&sellers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch sellers")
	}
	return c.JSON(fiber.Map{"data": models.NewUserViews(sellers)})
}

// ApproveSeller - PUT /api/admin/sellers/:sellerId/approve
//
// Approving an already-approved seller is a no-op success.
func (h *AdminHandler) ApproveSeller(c *fiber.Ctx) error {
	return h.setApplicationStatus(c, models.ApplicationApproved)
}

// RejectSeller - PUT /api/admin/sellers/:sellerId/reject
func (h *AdminHandler) RejectSeller(c *fiber.Ctx) error {
	return h.setApplicationStatus(c, models.ApplicationRejected)
}

func (h *AdminHandler) setApplicationStatus(c *fiber.Ctx, status string) error {
	sellerID, err := strconv.Atoi(c.Params("sellerId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid seller id")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var seller models.User
		if err := tx.First(&seller, sellerID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Seller not found")
		}
		if seller.Role != models.RoleSeller {
			return fiber.NewError(fiber.StatusBadRequest, "User is not a seller")
		}
		seller.ApplicationStatus = status
		return tx.Save(&seller).Error
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Seller application updated"})
}

// UpdateSellerStatus - PUT /api/admin/sellers/:sellerId/status?isActive=
func (h *AdminHandler) UpdateSellerStatus(c *fiber.Ctx) error {
	sellerID, err := strconv.Atoi(c.Params("sellerId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid seller id")
	}

	isActiveParam := c.Query("isActive")
	if isActiveParam == "" {
		return fiber.NewError(fiber.StatusBadRequest, "isActive is required")
	}
	isActive, err := strconv.ParseBool(isActiveParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "isActive must be true or false")
	}

	var seller models.User
	if err := h.DB.First(&seller, sellerID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Seller not found")
	}
	if seller.Role != models.RoleSeller {
		return fiber.NewError(fiber.StatusBadRequest, "User is not a seller")
	}

	seller.IsActive = isActive
	if err := h.DB.Save(&seller).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not update seller")
	}

	return c.JSON(fiber.Map{"message": "Seller status updated"})
}

// GetAllOrders - GET /api/admin/orders
func (h *AdminHandler) GetAllOrders(c *fiber.Ctx) error {
	var orders []models.Order
	if err := orderPreloads(h.DB).Order("order_date desc").Find(&orders).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch orders")
	}

	responses := make([]AdminOrderResponse, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		responses = append(responses, AdminOrderResponse{
			ID:           o.ID,
			CustomerName: o.Customer.Name,
			SellerName:   o.Seller.Name,
			TotalAmount:  o.TotalAmount,
			Status:       o.Status,
			OrderDate:    o.OrderDate,
			Items:        newOrderItemViews(o.Items),
		})
	}

	return c.JSON(fiber.Map{"data": responses})
}
