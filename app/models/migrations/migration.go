package migrations

import (
	"github.com/cataleon/cataleon/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.VendorProfile{}, &models.Product{}, &models.Inquiry{}, &models.Reward{}, &models.Invoice{}, &models.InvoiceItem{}, &models.BlogPost{}, &models.PressItem{}, &models.BrandLogo{})
}
