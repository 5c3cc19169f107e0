package config

import (
	"errors"
	"log"

	"github.com/starboy1402/GreenMed/models"
	"github.com/starboy1402/GreenMed/utils"

	"gorm.io/gorm"
)

// SeedAdmin ensures the bootstrap admin account exists. Admins cannot sign
// up through the public API.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	var existing models.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Password: password,
		Role:     models.RoleAdmin,
		IsActive: true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return err
	}

	log.Printf("Admin user seeded: %s (ID: %d)", admin.Email, admin.ID)
	return nil
}
