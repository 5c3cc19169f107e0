package models

import (
	"strconv"
	"strings"
	"time"
)

// User roles
const (
	RoleCustomer = "CUSTOMER"
	RoleSeller   = "SELLER"
	RoleAdmin    = "ADMIN"
)

// Seller application statuses
const (
	ApplicationPending  = "PENDING"
	ApplicationApproved = "APPROVED"
	ApplicationRejected = "REJECTED"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Login
	Email    string `gorm:"unique;not null;size:100" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Profile
	Name    string `gorm:"not null;size:100" json:"name"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"type:text" json:"address"`

	// Role & status
	Role              string `gorm:"not null;size:20;index" json:"role"`
	IsActive          bool   `gorm:"not null;default:true" json:"is_active"`
	ShopName          string `gorm:"size:100" json:"shop_name"`
	ApplicationStatus string `gorm:"size:20;index" json:"application_status"` // meaningful for sellers only

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserView is the projection returned to clients. The password never leaves
// the server and role/status names are lowercased on the wire.
type UserView struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Role              string  `json:"role"`
	IsActive          bool    `json:"is_active"`
	ShopName          string  `json:"shop_name,omitempty"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
	ApplicationStatus *string `json:"application_status"`
}

func NewUserView(u *User) UserView {
	view := UserView{
		ID:       strconv.FormatUint(uint64(u.ID), 10),
		Name:     u.Name,
		Email:    u.Email,
		Role:     strings.ToLower(u.Role),
		IsActive: u.IsActive,
		ShopName: u.ShopName,
		Phone:    u.Phone,
		Address:  u.Address,
	}
	if u.ApplicationStatus != "" {
		status := strings.ToLower(u.ApplicationStatus)
		view.ApplicationStatus = &status
	}
	return view
}

func NewUserViews(users []User) []UserView {
	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, NewUserView(&users[i]))
	}
	return views
}
