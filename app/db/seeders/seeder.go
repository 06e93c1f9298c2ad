package seeders

import (
	"log"

	"github.com/cataleon/cataleon/app/db/fakers"
	"gorm.io/gorm"
)

// DBSeed provisions a demo vendor, its profile and a small sample catalog.
// Safe to run repeatedly: the vendor and profile are FirstOrCreate'd and the
// catalog is only inserted when the vendor has no products yet.
func DBSeed(db *gorm.DB) error {
	vendor := fakers.VendorFaker(db)
	profile := fakers.VendorProfileFaker(db, vendor)

	var count int64
	if err := db.Table("products").Where("vendor_id = ?", vendor.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("DBSeed: vendor %s already has %d products, skipping catalog seed", vendor.Email, count)
		return nil
	}

	products := fakers.ProductFaker(profile, vendor.ID)
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Printf("DBSeed: seeded %d products for %s", len(products), vendor.Email)
	return nil
}
