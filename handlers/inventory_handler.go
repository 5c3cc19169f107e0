package handlers

import (
	"strconv"
	"strings"

	"github.com/starboy1402/GreenMed/middleware"
	"github.com/starboy1402/GreenMed/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InventoryHandler struct {
	DB *gorm.DB
}

func NewInventoryHandler(db *gorm.DB) *InventoryHandler {
	return &InventoryHandler{DB: db}
}

// InventoryItemRequest is shared by add and update.
type InventoryItemRequest struct {
	Name              string          `json:"name"`
	Type              string          `json:"type"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int             `json:"quantity"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	Description       string          `json:"description"`
}

func (r *InventoryItemRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}
	if r.Price.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Price cannot be negative")
	}
	if r.Quantity < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Quantity cannot be negative")
	}
	if r.LowStockThreshold < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Low stock threshold cannot be negative")
	}
	return nil
}

// GetMyInventory - GET /api/inventory
func (h *InventoryHandler) GetMyInventory(c *fiber.Ctx) error {
	seller := middleware.CurrentUser(c)

	var items []models.Inventory
	if err := h.DB.Where("seller_id = ?", seller.ID).Order("created_at desc").
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch inventory")
	}

	return c.JSON(fiber.Map{"data": items})
}

// GetInventoryBySeller - GET /api/inventory/seller/:sellerId
//
// Public; customers browsing a shop use this.
func (h *InventoryHandler) GetInventoryBySeller(c *fiber.Ctx) error {
	sellerID, err := strconv.Atoi(c.Params("sellerId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid seller id")
	}

	var items []models.Inventory
	if err := h.DB.Where("seller_id = ?", sellerID).Order("created_at desc").
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch inventory")
	}

	return c.JSON(fiber.Map{"data": items})
}

// AddInventoryItem - POST /api/inventory
func (h *InventoryHandler) AddInventoryItem(c *fiber.Ctx) error {
	var req InventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if err := req.validate(); err != nil {
		return err
	}

	seller := middleware.CurrentUser(c)

	item := models.Inventory{
		SellerID:          seller.ID,
		Name:              req.Name,
		Type:              req.Type,
		Price:             req.Price,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
		Description:       req.Description,
	}

	if err := h.DB.Create(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not create inventory item")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": item})
}

// UpdateInventoryItem - PUT /api/inventory/:itemId
func (h *InventoryHandler) UpdateInventoryItem(c *fiber.Ctx) error {
	itemID, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid item id")
	}

	var req InventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if err := req.validate(); err != nil {
		return err
	}

	seller := middleware.CurrentUser(c)

	var item models.Inventory
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, itemID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Inventory item not found")
		}
		if item.SellerID != seller.ID {
			return fiber.NewError(fiber.StatusForbidden, "You do not have permission to update this item.")
		}

		item.Name = req.Name
		item.Type = req.Type
		item.Price = req.Price
		item.Quantity = req.Quantity
		item.LowStockThreshold = req.LowStockThreshold
		item.Description = req.Description

		return tx.Save(&item).Error
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": item})
}
