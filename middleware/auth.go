package middleware

import (
	"errors"
	"strings"

	"github.com/starboy1402/GreenMed/models"
	"github.com/starboy1402/GreenMed/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LocalsUser is the context key under which the authenticated user is stored.
const LocalsUser = "current_user"

// BearerToken extracts the raw token from an Authorization header.
func BearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

// Protected authenticates the request and enforces the route's role set.
// An empty role list means any authenticated user may pass. Sellers are
// additionally required to be approved whenever the route is seller-gated.
func Protected(db *gorm.DB, secret string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := BearerToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "No token provided")
		}

		claims, err := utils.ParseToken(tokenString, secret)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		var revoked models.RevokedToken
		err = db.Where("token_hash = ?", utils.TokenDigest(tokenString)).First(&revoked).Error
		if err == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		if !user.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "Account is deactivated. Please contact support.")
		}

		if len(roles) > 0 {
			if !hasRole(user.Role, roles) {
				return fiber.NewError(fiber.StatusForbidden, "You do not have permission to access this resource")
			}
			if user.Role == models.RoleSeller && hasRole(models.RoleSeller, roles) {
				if err := checkSellerApproved(&user); err != nil {
					return err
				}
			}
		}

		c.Locals(LocalsUser, user)
		return c.Next()
	}
}

// CurrentUser returns the principal attached by Protected.
func CurrentUser(c *fiber.Ctx) models.User {
	return c.Locals(LocalsUser).(models.User)
}

func hasRole(role string, roles []string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func checkSellerApproved(user *models.User) error {
	switch user.ApplicationStatus {
	case models.ApplicationApproved:
		return nil
	case models.ApplicationPending:
		return fiber.NewError(fiber.StatusForbidden, "Your seller application is still pending approval.")
	case models.ApplicationRejected:
		return fiber.NewError(fiber.StatusForbidden, "Your seller application was rejected. Please contact support.")
	default:
		return fiber.NewError(fiber.StatusForbidden, "Your account is not approved for selling.")
	}
}
