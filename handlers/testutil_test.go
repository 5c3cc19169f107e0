package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/starboy1402/GreenMed/config"
	"github.com/starboy1402/GreenMed/handlers"
	"github.com/starboy1402/GreenMed/models"
	"github.com/starboy1402/GreenMed/routes"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	testAdminEmail    = "admin@greenmed.test"
	testAdminPassword = "admin123"
	testPassword      = "password123"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 24,
		AdminEmail:         testAdminEmail,
		AdminPassword:      testAdminPassword,
		CORSAllowOrigins:   "*",
		CORSAllowMethods:   "GET,POST,PUT,DELETE,OPTIONS",
		CORSAllowHeaders:   "Origin,Content-Type,Accept,Authorization",
	}
}

// setupTestApp builds the full application over an in-memory database.
// The pool is capped at one connection so every request sees the same
// sqlite memory database.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	cfg := testConfig()
	require.NoError(t, config.SeedAdmin(db, cfg))

	return routes.NewApp(db, cfg), db
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

type errorEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type userEnvelope struct {
	Data models.UserView `json:"data"`
}

type loginEnvelope struct {
	Token string          `json:"token"`
	User  models.UserView `json:"user"`
}

type itemEnvelope struct {
	Data models.Inventory `json:"data"`
}

type itemsEnvelope struct {
	Data []models.Inventory `json:"data"`
}

type orderEnvelope struct {
	Data handlers.OrderResponse `json:"data"`
}

type ordersEnvelope struct {
	Data []handlers.OrderResponse `json:"data"`
}

type paymentEnvelope struct {
	Data models.Payment `json:"data"`
}

func requireError(t *testing.T, resp *http.Response, status int, message string) {
	t.Helper()
	require.Equal(t, status, resp.StatusCode)
	var body errorEnvelope
	decodeInto(t, resp, &body)
	require.True(t, body.Error)
	require.Equal(t, message, body.Message)
}

// signup registers a user and returns its view. Sellers start PENDING.
func signup(t *testing.T, app *fiber.App, name, email, userType, shopName string) models.UserView {
	t.Helper()
	resp := doRequest(t, app, fiber.MethodPost, "/api/auth/signup", "", fiber.Map{
		"name":      name,
		"email":     email,
		"password":  testPassword,
		"user_type": userType,
		"phone":     "01700000000",
		"address":   "12 Garden Road, Dhaka",
		"shop_name": shopName,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var body userEnvelope
	decodeInto(t, resp, &body)
	return body.Data
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp := doRequest(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body loginEnvelope
	decodeInto(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	return login(t, app, testAdminEmail, testAdminPassword)
}

func signupCustomer(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	signup(t, app, "Test Customer", email, "customer", "")
	return login(t, app, email, testPassword)
}

// newApprovedSeller signs up a seller, approves the application as admin and
// returns the seller's id and token.
func newApprovedSeller(t *testing.T, app *fiber.App, email, shopName string) (string, string) {
	t.Helper()
	view := signup(t, app, "Test Seller", email, "seller", shopName)

	admin := adminToken(t, app)
	resp := doRequest(t, app, fiber.MethodPut, "/api/admin/sellers/"+view.ID+"/approve", admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	return view.ID, login(t, app, email, testPassword)
}

// addItem creates an inventory item for the seller and returns it.
func addItem(t *testing.T, app *fiber.App, sellerToken, name, price string, quantity, threshold int) models.Inventory {
	t.Helper()
	resp := doRequest(t, app, fiber.MethodPost, "/api/inventory", sellerToken, fiber.Map{
		"name":                name,
		"type":                "plant",
		"price":               json.RawMessage(price),
		"quantity":            quantity,
		"low_stock_threshold": threshold,
		"description":         "test item",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var body itemEnvelope
	decodeInto(t, resp, &body)
	return body.Data
}
