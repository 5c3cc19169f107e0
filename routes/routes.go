package routes

import (
	"github.com/starboy1402/GreenMed/config"
	"github.com/starboy1402/GreenMed/handlers"
	"github.com/starboy1402/GreenMed/middleware"
	"github.com/starboy1402/GreenMed/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NewApp builds the Fiber application with all middleware and routes. It is
// shared by main and the tests.
func NewApp(db *gorm.DB, cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "GreenMed Backend",
		ServerHeader: "GreenMed Backend Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.Setup(app, cfg)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	Register(app, db, cfg)

	middleware.SetupNotFoundHandler(app)

	return app
}

// Register wires every API route with its role gate.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db)
	inventoryHandler := handlers.NewInventoryHandler(db)
	orderHandler := handlers.NewOrderHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)
	userHandler := handlers.NewUserHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)
	catalogHandler := handlers.NewCatalogHandler(db)

	authAny := middleware.Protected(db, cfg.JWTSecret)
	customerOnly := middleware.Protected(db, cfg.JWTSecret, models.RoleCustomer)
	sellerOnly := middleware.Protected(db, cfg.JWTSecret, models.RoleSeller)
	adminOnly := middleware.Protected(db, cfg.JWTSecret, models.RoleAdmin)
	sellerOrAdmin := middleware.Protected(db, cfg.JWTSecret, models.RoleSeller, models.RoleAdmin)

	api := app.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", authAny, authHandler.Me)

	// Admin
	admin := api.Group("/admin", adminOnly)
	admin.Get("/sellers/pending", adminHandler.GetPendingSellers)
	admin.Get("/sellers", adminHandler.GetAllSellers)
	admin.Put("/sellers/:sellerId/approve", adminHandler.ApproveSeller)
	admin.Put("/sellers/:sellerId/reject", adminHandler.RejectSeller)
	admin.Put("/sellers/:sellerId/status", adminHandler.UpdateSellerStatus)
	admin.Get("/orders", adminHandler.GetAllOrders)

	// Inventory
	inventory := api.Group("/inventory")
	inventory.Get("/seller/:sellerId", inventoryHandler.GetInventoryBySeller)
	inventory.Get("/", sellerOnly, inventoryHandler.GetMyInventory)
	inventory.Post("/", sellerOnly, inventoryHandler.AddInventoryItem)
	inventory.Put("/:itemId", sellerOnly, inventoryHandler.UpdateInventoryItem)

	// Orders
	orders := api.Group("/orders")
	orders.Post("/", customerOnly, orderHandler.CreateOrder)
	orders.Get("/customer", customerOnly, orderHandler.GetCustomerOrders)
	orders.Get("/seller", sellerOrAdmin, orderHandler.GetSellerOrders)
	orders.Post("/:orderId/pay", customerOnly, orderHandler.PayForOrder)
	orders.Put("/:orderId/status", sellerOrAdmin, orderHandler.UpdateOrderStatus)

	// Reviews
	reviews := api.Group("/reviews")
	reviews.Post("/", customerOnly, reviewHandler.CreateReview)
	reviews.Get("/seller/:sellerId/rating", reviewHandler.GetSellerRating)
	reviews.Get("/seller/:sellerId", reviewHandler.GetReviewsBySeller)

	// Users
	users := api.Group("/users")
	users.Get("/sellers", userHandler.GetActiveSellers)
	users.Get("/profile", authAny, userHandler.GetProfile)
	users.Put("/profile", authAny, userHandler.UpdateProfile)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboard.Get("/admin-stats", adminOnly, dashboardHandler.GetAdminStats)
	dashboard.Get("/seller-stats", sellerOnly, dashboardHandler.GetSellerStats)
	dashboard.Get("/public-stats", dashboardHandler.GetPublicStats)

	// Catalog
	plants := api.Group("/plants")
	plants.Get("/", catalogHandler.GetPlants)
	plants.Get("/search", catalogHandler.GetPlants)
	plants.Get("/:id", catalogHandler.GetPlant)
	plants.Post("/", adminOnly, catalogHandler.CreatePlant)
	plants.Put("/:id", adminOnly, catalogHandler.UpdatePlant)
	plants.Delete("/:id", adminOnly, catalogHandler.DeletePlant)

	diseases := api.Group("/diseases")
	diseases.Get("/", catalogHandler.GetDiseases)
	diseases.Get("/:id", catalogHandler.GetDisease)
	diseases.Post("/", adminOnly, catalogHandler.CreateDisease)
	diseases.Put("/:id", adminOnly, catalogHandler.UpdateDisease)
	diseases.Delete("/:id", adminOnly, catalogHandler.DeleteDisease)

	medicines := api.Group("/medicines")
	medicines.Get("/", catalogHandler.GetMedicines)
	medicines.Get("/:id", catalogHandler.GetMedicine)
	medicines.Post("/", adminOnly, catalogHandler.CreateMedicine)
	medicines.Put("/:id", adminOnly, catalogHandler.UpdateMedicine)
	medicines.Delete("/:id", adminOnly, catalogHandler.DeleteMedicine)
}
