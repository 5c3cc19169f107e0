package handlers

import (
	"github.com/starboy1402/GreenMed/middleware"
	"github.com/starboy1402/GreenMed/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

type AdminStats struct {
	TotalCustomers int64 `json:"total_customers"`
	TotalSellers   int64 `json:"total_sellers"`
	TotalOrders    int64 `json:"total_orders"`
	PendingSellers int64 `json:"pending_sellers"`
}

type SellerStats struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	ActiveOrders  int64           `json:"active_orders"`
	LowStockItems int64           `json:"low_stock_items"`
	TotalProducts int64           `json:"total_products"`
	RecentOrders  []OrderResponse `json:"recent_orders"`
}

type PublicStats struct {
	TotalCustomers int64 `json:"total_customers"`
	TotalSellers   int64 `json:"total_sellers"`
	TotalOrders    int64 `json:"total_orders"`
	TotalProducts  int64 `json:"total_products"`
}

// GetAdminStats - GET /api/dashboard/admin-stats
func (h *DashboardHandler) GetAdminStats(c *fiber.Ctx) error {
	var stats AdminStats

	if err := h.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).
		Count(&stats.TotalCustomers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch stats")
	}
	if err := h.DB.Model(&models.User{}).Where("role = ?", models.RoleSeller).
		Count(&stats.TotalSellers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch stats")
	}
	if err := h.countPaidOrders(&stats.TotalOrders); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch stats")
	}
	if err := h.DB.Model(&models.User{}).
		Where("role = ? AND application_status = ?", models.RoleSeller, models.ApplicationPending).
		Count(&stats.PendingSellers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch stats")
	}

	return c.JSON(fiber.Map{"data": stats})
}

// GetSellerStats - GET /api/dashboard/seller-stats
func (h *DashboardHandler) GetSellerStats(c *fiber.Ctx) error {
	seller := middleware.CurrentUser(c)

	stats := SellerStats{TotalRevenue: decimal.Zero}

	var revenue decimal.NullDecimal
	if err := h.DB.Model(&models.Payment{}).
		Joins("JOIN orders ON orders.id = payments.order_id").
		Where("orders.seller_id = ? AND payments.status = ?", seller.ID, models.PaymentCompleted).
		Select("SUM(payments.amount)").Scan(&revenue).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch stats")
	}
	if revenue.Valid {
		stats.TotalRevenue = revenue.Decimal
	}

	if err := h.DB.Model(&models.Order{}).
		Where("seller_id = ? AND status IN ?", seller.ID,
			[]string{models.OrderProcessing, models.OrderShipped}).
		Count(&stats.ActiveOrders).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch stats")
	}

	if err := h.DB.Model(&models.Inventory{}).
		Where("seller_id = ? AND quantity <= low_stock_threshold", seller.ID).
		Count(&stats.LowStockItems).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch stats")
	}

	if err := h.DB.Model(&models.Inventory{}).Where("seller_id = ?", seller.ID).
		Count(&stats.TotalProducts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch stats")
	}

	var recent []models.Order
	if err := orderPreloads(h.DB).Where("seller_id = ?", seller.ID).
		Order("order_date desc").Limit(5).Find(&recent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch stats")
	}
	stats.RecentOrders = newOrderResponses(recent)

	return c.JSON(fiber.Map{"data": stats})
}

// GetPublicStats - GET /api/dashboard/public-stats
func (h *DashboardHandler) GetPublicStats(c *fiber.Ctx) error {
	var stats PublicStats

	if err := h.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).
		Count(&stats.TotalCustomers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch stats")
	}
	if err := h.DB.Model(&models.User{}).Where("role = ?", models.RoleSeller).
		Count(&stats.TotalSellers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch stats")
	}
	if err := h.countPaidOrders(&stats.TotalOrders); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch stats")
	}
	if err := h.DB.Model(&models.Inventory{}).Count(&stats.TotalProducts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch stats")
	}

	return c.JSON(fiber.Map{"data": stats})
}

// countPaidOrders counts orders that made it past payment: everything except
// PENDING_PAYMENT and CANCELLED.
func (h *DashboardHandler) countPaidOrders(out *int64) error {
	return h.DB.Model(&models.Order{}).
		Where("status NOT IN ?", []string{models.OrderPendingPayment, models.OrderCancelled}).
		Count(out).Error
}
