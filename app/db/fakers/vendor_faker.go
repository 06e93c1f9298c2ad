package fakers

import (
	"log"

	"github.com/cataleon/cataleon/app/helpers"
	"github.com/cataleon/cataleon/app/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VendorFaker returns the demo vendor account, creating it on first use so
// seeding stays idempotent.
func VendorFaker(db *gorm.DB) *models.User {
	password := helpers.HashPassword("password123")
	if password == "" {
		log.Fatal("Failed to hash demo password")
	}

	user := &models.User{
		ID:        uuid.New().String(),
		FirstName: "Anita",
		LastName:  "Mehta",
		Email:     "demo@cataleon.test",
		Phone:     "+919876543210",
		Password:  password,
		Role:      models.RoleVendor,
	}
	if err := db.FirstOrCreate(user, "email = ?", user.Email).Error; err != nil {
		log.Fatal("Failed to create/find demo vendor:", err)
	}
	return user
}

func VendorProfileFaker(db *gorm.DB, user *models.User) *models.VendorProfile {
	profile := &models.VendorProfile{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		BusinessName: "Mehta Jewels",
		Address:      "14 Zaveri Bazaar",
		City:         "Mumbai",
		GSTNumber:    "27AAAPM1234A1Z5",
		WhatsApp:     "+919876543210",
		GoldRate:     decimal.NewFromInt(6200),
		SilverRate:   decimal.NewFromInt(78),
		PlatinumRate: decimal.NewFromInt(2900),
	}
	if err := db.FirstOrCreate(profile, "user_id = ?", user.ID).Error; err != nil {
		log.Fatal("Failed to create/find demo profile:", err)
	}
	return profile
}
