package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	app, _ := setupTestApp(t)

	view := signup(t, app, "Alice", "alice@example.com", "customer", "")
	require.Equal(t, "Alice", view.Name)
	require.Equal(t, "customer", view.Role)
	require.True(t, view.IsActive)
	require.NotNil(t, view.ApplicationStatus)
	require.Equal(t, "approved", *view.ApplicationStatus)

	token := login(t, app, "alice@example.com", testPassword)

	resp := doRequest(t, app, fiber.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var me userEnvelope
	decodeInto(t, resp, &me)
	require.Equal(t, "alice@example.com", me.Data.Email)
	require.Equal(t, "customer", me.Data.Role)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, _ := setupTestApp(t)

	signup(t, app, "Alice", "alice@example.com", "customer", "")

	resp := doRequest(t, app, fiber.MethodPost, "/api/auth/signup", "", fiber.Map{
		"name":      "Alice Again",
		"email":     "alice@example.com",
		"password":  testPassword,
		"user_type": "customer",
		"phone":     "01700000001",
		"address":   "somewhere",
	})
	requireError(t, resp, fiber.StatusConflict, "Email already exists")
}

func TestSignupValidation(t *testing.T) {
	app, _ := setupTestApp(t)

	tests := []struct {
		name    string
		body    fiber.Map
		message string
	}{
		{
			name: "missing phone",
			body: fiber.Map{
				"name": "X", "email": "x@example.com", "password": testPassword,
				"user_type": "customer", "address": "a",
			},
			message: "Phone number is required",
		},
		{
			name: "missing address",
			body: fiber.Map{
				"name": "X", "email": "x@example.com", "password": testPassword,
				"user_type": "customer", "phone": "017",
			},
			message: "Address is required",
		},
		{
			name: "bad role",
			body: fiber.Map{
				"name": "X", "email": "x@example.com", "password": testPassword,
				"user_type": "admin", "phone": "017", "address": "a",
			},
			message: "Invalid role. Must be CUSTOMER or SELLER",
		},
		{
			name: "seller without shop name",
			body: fiber.Map{
				"name": "X", "email": "x@example.com", "password": testPassword,
				"user_type": "seller", "phone": "017", "address": "a",
			},
			message: "Shop name is required for sellers",
		},
		{
			name: "short password",
			body: fiber.Map{
				"name": "X", "email": "x@example.com", "password": "123",
				"user_type": "customer", "phone": "017", "address": "a",
			},
			message: "Password must be at least 6 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, fiber.MethodPost, "/api/auth/signup", "", tt.body)
			requireError(t, resp, fiber.StatusBadRequest, tt.message)
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	app, _ := setupTestApp(t)

	signup(t, app, "Alice", "alice@example.com", "customer", "")

	resp := doRequest(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "alice@example.com", "password": "wrong-password",
	})
	requireError(t, resp, fiber.StatusUnauthorized, "Invalid email or password")

	resp = doRequest(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "nobody@example.com", "password": testPassword,
	})
	requireError(t, resp, fiber.StatusUnauthorized, "Invalid email or password")
}

func TestSellerLoginGatedByApplication(t *testing.T) {
	app, _ := setupTestApp(t)

	view := signup(t, app, "Bob", "bob@example.com", "seller", "Bob's Plants")
	require.NotNil(t, view.ApplicationStatus)
	require.Equal(t, "pending", *view.ApplicationStatus)

	resp := doRequest(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "bob@example.com", "password": testPassword,
	})
	requireError(t, resp, fiber.StatusForbidden, "Your seller application is still pending approval.")

	admin := adminToken(t, app)
	resp = doRequest(t, app, fiber.MethodPut, "/api/admin/sellers/"+view.ID+"/approve", admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	login(t, app, "bob@example.com", testPassword)
}

func TestRejectedSellerLogin(t *testing.T) {
	app, _ := setupTestApp(t)

	view := signup(t, app, "Bob", "bob@example.com", "seller", "Bob's Plants")

	admin := adminToken(t, app)
	resp := doRequest(t, app, fiber.MethodPut, "/api/admin/sellers/"+view.ID+"/reject", admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "bob@example.com", "password": testPassword,
	})
	requireError(t, resp, fiber.StatusForbidden, "Your seller application was rejected. Please contact support.")
}

func TestLogoutRevokesTokenAndIsIdempotent(t *testing.T) {
	app, _ := setupTestApp(t)

	token := signupCustomer(t, app, "alice@example.com")

	resp := doRequest(t, app, fiber.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// The token no longer authenticates.
	resp = doRequest(t, app, fiber.MethodGet, "/api/auth/me", token, nil)
	requireError(t, resp, fiber.StatusUnauthorized, "Invalid or expired token")

	// A second logout still acknowledges.
	resp = doRequest(t, app, fiber.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, fiber.MethodGet, "/api/auth/me", token, nil)
	requireError(t, resp, fiber.StatusUnauthorized, "Invalid or expired token")
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, fiber.MethodGet, "/api/auth/me", "", nil)
	requireError(t, resp, fiber.StatusUnauthorized, "No token provided")

	resp = doRequest(t, app, fiber.MethodGet, "/api/auth/me", "not-a-real-token", nil)
	requireError(t, resp, fiber.StatusUnauthorized, "Invalid or expired token")
}

func TestProfileUpdate(t *testing.T) {
	app, _ := setupTestApp(t)

	token := signupCustomer(t, app, "alice@example.com")

	resp := doRequest(t, app, fiber.MethodPut, "/api/users/profile", token, fiber.Map{
		"name":  "Alice Updated",
		"phone": "01899999999",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body userEnvelope
	decodeInto(t, resp, &body)
	require.Equal(t, "Alice Updated", body.Data.Name)
	require.Equal(t, "01899999999", body.Data.Phone)
	// Untouched fields survive.
	require.Equal(t, "12 Garden Road, Dhaka", body.Data.Address)
}
