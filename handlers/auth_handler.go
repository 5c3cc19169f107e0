package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/starboy1402/GreenMed/config"
	"github.com/starboy1402/GreenMed/middleware"
	"github.com/starboy1402/GreenMed/models"
	"github.com/starboy1402/GreenMed/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

// SignupRequest defines the payload for registration
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	ShopName string `json:"shop_name"`
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup - POST /api/auth/signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}

	if strings.TrimSpace(req.Name) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email is required")
	}
	if len(req.Password) < 6 {
		return fiber.NewError(fiber.StatusBadRequest, "Password must be at least 6 characters long")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Phone number is required")
	}
	if strings.TrimSpace(req.Address) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Address is required")
	}

	role := strings.ToUpper(req.UserType)
	if role != models.RoleCustomer && role != models.RoleSeller {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid role. Must be CUSTOMER or SELLER")
	}

	applicationStatus := models.ApplicationApproved
	if role == models.RoleSeller {
		if strings.TrimSpace(req.ShopName) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Shop name is required for sellers")
		}
		applicationStatus = models.ApplicationPending
	}

	var existing models.User
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
	}

	user := models.User{
		Name:              req.Name,
		Email:             req.Email,
		Password:          hashedPassword,
		Role:              role,
		IsActive:          true,
		Phone:             req.Phone,
		Address:           req.Address,
		ShopName:          req.ShopName,
		ApplicationStatus: applicationStatus,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusConflict, "Email already exists")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": models.NewUserView(&user)})
}

// Login - POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	if !user.IsActive {
		return fiber.NewError(fiber.StatusForbidden, "Account is deactivated. Please contact support.")
	}

	if user.Role == models.RoleSeller && user.ApplicationStatus != models.ApplicationApproved {
		message := "Your account is not approved for selling."
		switch user.ApplicationStatus {
		case models.ApplicationPending:
			message = "Your seller application is still pending approval."
		case models.ApplicationRejected:
			message = "Your seller application was rejected. Please contact support."
		}
		return fiber.NewError(fiber.StatusForbidden, message)
	}

	ttl := time.Duration(h.Cfg.JWTExpirationHours) * time.Hour
	token, err := utils.GenerateToken(user.Email, user.ID, user.Role, h.Cfg.JWTSecret, ttl)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate authentication token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  models.NewUserView(&user),
	})
}

// Logout - POST /api/auth/logout
//
// Revokes the presented token. Calling it again with the same token still
// acknowledges; the token stays revoked.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	tokenString := middleware.BearerToken(c)
	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "No token provided")
	}

	claims, err := utils.ParseToken(tokenString, h.Cfg.JWTSecret)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	revoked := models.RevokedToken{
		TokenHash: utils.TokenDigest(tokenString),
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := h.DB.Where("token_hash = ?", revoked.TokenHash).FirstOrCreate(&revoked).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	// Drop revocation rows whose tokens have expired on their own.
	h.DB.Where("expires_at < ?", time.Now()).Delete(&models.RevokedToken{})

	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// Me - GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(fiber.Map{"data": models.NewUserView(&user)})
}
