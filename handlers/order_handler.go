package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/starboy1402/GreenMed/middleware"
	"github.com/starboy1402/GreenMed/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderHandler struct {
	DB *gorm.DB
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{DB: db}
}

// CreateOrderRequest carries one seller's items; orders never span sellers.
type CreateOrderRequest struct {
	SellerID        uint                    `json:"seller_id"`
	Items           []OrderItemRequest      `json:"items"`
	ShippingAddress *ShippingAddressRequest `json:"shipping_address"`
}

type OrderItemRequest struct {
	InventoryItemID uint `json:"inventory_item_id"`
	Quantity        int  `json:"quantity"`
}

type ShippingAddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type PaymentRequest struct {
	PaymentMethod string `json:"payment_method"`
	TransactionID string `json:"transaction_id"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the order projection for customers and sellers.
type OrderResponse struct {
	ID              uint                 `json:"id"`
	CustomerName    string               `json:"customer_name"`
	CustomerEmail   string               `json:"customer_email"`
	CustomerPhone   string               `json:"customer_phone"`
	ShippingAddress *ShippingAddressView `json:"shipping_address"`
	SellerShopName  string               `json:"seller_shop_name"`
	TotalAmount     decimal.Decimal      `json:"total_amount"`
	Status          string               `json:"status"`
	OrderDate       time.Time            `json:"order_date"`
	Items           []OrderItemView      `json:"items"`
}

type ShippingAddressView struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type OrderItemView struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

func newOrderResponse(o *models.Order) OrderResponse {
	resp := OrderResponse{
		ID:             o.ID,
		CustomerName:   o.Customer.Name,
		CustomerEmail:  o.Customer.Email,
		CustomerPhone:  o.Customer.Phone,
		SellerShopName: o.Seller.ShopName,
		TotalAmount:    o.TotalAmount,
		Status:         o.Status,
		OrderDate:      o.OrderDate,
		Items:          newOrderItemViews(o.Items),
	}
	if o.ShippingAddress != nil {
		resp.ShippingAddress = &ShippingAddressView{
			Street:  o.ShippingAddress.Street,
			City:    o.ShippingAddress.City,
			State:   o.ShippingAddress.State,
			ZipCode: o.ShippingAddress.ZipCode,
			Country: o.ShippingAddress.Country,
		}
	}
	return resp
}

func newOrderItemViews(items []models.OrderItem) []OrderItemView {
	views := make([]OrderItemView, 0, len(items))
	for _, item := range items {
		views = append(views, OrderItemView{
			ProductName: item.InventoryItem.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return views
}

func newOrderResponses(orders []models.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, newOrderResponse(&orders[i]))
	}
	return responses
}

func orderPreloads(db *gorm.DB) *gorm.DB {
	return db.Preload("Items.InventoryItem").Preload("ShippingAddress").
		Preload("Customer").Preload("Seller")
}

// CreateOrder - POST /api/orders
//
// Reserves stock and records the order atomically. Every line's unit price is
// frozen at the inventory price read inside the same transaction, so any
// failure rolls back the stock decrements with the order itself.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}

	if req.SellerID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Seller is required")
	}
	if len(req.Items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Order must contain at least one item")
	}
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "Quantity must be at least 1")
		}
	}

	customer := middleware.CurrentUser(c)

	var order models.Order
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var seller models.User
		if err := tx.First(&seller, req.SellerID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Seller not found")
		}
		if seller.Role != models.RoleSeller || !seller.IsActive ||
			seller.ApplicationStatus != models.ApplicationApproved {
			return fiber.NewError(fiber.StatusBadRequest, "Seller is not available")
		}

		order = models.Order{
			CustomerID: customer.ID,
			SellerID:   seller.ID,
			Status:     models.OrderPendingPayment,
			OrderDate:  time.Now(),
		}

		total := decimal.Zero
		for _, line := range req.Items {
			var item models.Inventory
			if err := tx.First(&item, line.InventoryItemID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound,
					fmt.Sprintf("Inventory item not found: %d", line.InventoryItemID))
			}
			if item.SellerID != req.SellerID {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Item %s does not belong to this seller", item.Name))
			}

			// Conditional decrement: the quantity guard in the WHERE clause
			// keeps the row non-negative under concurrent orders, with the
			// loser reporting insufficient stock instead of going negative.
			res := tx.Model(&models.Inventory{}).
				Where("id = ? AND quantity >= ?", item.ID, line.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Not enough stock for item: %s", item.Name))
			}

			order.Items = append(order.Items, models.OrderItem{
				InventoryItemID: item.ID,
				Quantity:        line.Quantity,
				Price:           item.Price,
			})
			total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
		order.TotalAmount = total

		if req.ShippingAddress != nil {
			order.ShippingAddress = &models.ShippingAddress{
				Street:  req.ShippingAddress.Street,
				City:    req.ShippingAddress.City,
				State:   req.ShippingAddress.State,
				ZipCode: req.ShippingAddress.ZipCode,
				Country: req.ShippingAddress.Country,
			}
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		return err
	}

	var created models.Order
	if err := orderPreloads(h.DB).First(&created, order.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": newOrderResponse(&created)})
}

// PayForOrder - POST /api/orders/:orderId/pay
//
// Simulated gateway: the payment row and the PENDING_PAYMENT -> PROCESSING
// flip commit together, so a completed payment can never exist on an unpaid
// order.
func (h *OrderHandler) PayForOrder(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid order id")
	}

	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if req.TransactionID == "" {
		req.TransactionID = uuid.NewString()
	}

	customer := middleware.CurrentUser(c)

	var payment models.Payment
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}
		if order.CustomerID != customer.ID {
			return fiber.NewError(fiber.StatusForbidden, "You are not authorized to pay for this order.")
		}

		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, models.OrderPendingPayment).
			Update("status", models.OrderProcessing)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "This order is not pending payment.")
		}

		payment = models.Payment{
			OrderID:       order.ID,
			Amount:        order.TotalAmount,
			PaymentMethod: req.PaymentMethod,
			TransactionID: req.TransactionID,
			Status:        models.PaymentCompleted,
			PaymentDate:   time.Now(),
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": payment})
}

// GetCustomerOrders - GET /api/orders/customer
func (h *OrderHandler) GetCustomerOrders(c *fiber.Ctx) error {
	customer := middleware.CurrentUser(c)

	var orders []models.Order
	if err := orderPreloads(h.DB).Where("customer_id = ?", customer.ID).
		Order("order_date desc").Find(&orders).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch orders")
	}

	return c.JSON(fiber.Map{"data": newOrderResponses(orders)})
}

// GetSellerOrders - GET /api/orders/seller
func (h *OrderHandler) GetSellerOrders(c *fiber.Ctx) error {
	seller := middleware.CurrentUser(c)

	var orders []models.Order
	if err := orderPreloads(h.DB).Where("seller_id = ?", seller.ID).
		Order("order_date desc").Find(&orders).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch orders")
	}

	return c.JSON(fiber.Map{"data": newOrderResponses(orders)})
}

// UpdateOrderStatus - PUT /api/orders/:orderId/status
//
// Seller/admin transitions only; paying a pending order goes through
// PayForOrder. The update is a compare-and-swap on the previously read
// status, so concurrent updates resolve to one winner.
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if !models.ValidOrderStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid order status")
	}

	user := middleware.CurrentUser(c)

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}
		if order.SellerID != user.ID && user.Role != models.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "You are not authorized to update this order.")
		}
		if !models.CanTransition(order.Status, req.Status) {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Cannot change order status from %s to %s", order.Status, req.Status))
		}

		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, order.Status).
			Update("status", req.Status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status transition")
		}
		return nil
	})
	if err != nil {
		return err
	}

	var updated models.Order
	if err := orderPreloads(h.DB).First(&updated, orderID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.JSON(fiber.Map{"data": newOrderResponse(&updated)})
}
