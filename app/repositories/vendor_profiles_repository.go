package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/cataleon/cataleon/app/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendorProfileRepositoryImpl interface {
	Create(ctx context.Context, profile *models.VendorProfile) error
	FindByUserID(ctx context.Context, userID string) (*models.VendorProfile, error)
	Update(ctx context.Context, profile *models.VendorProfile) error
	UpdateMetalRate(ctx context.Context, userID string, metal string, rate decimal.Decimal) error
}

type vendorProfileRepository struct {
	db *gorm.DB
}

func NewVendorProfileRepository(db *gorm.DB) VendorProfileRepositoryImpl {
	return &vendorProfileRepository{db}
}

func (r *vendorProfileRepository) Create(ctx context.Context, profile *models.VendorProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *vendorProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.VendorProfile, error) {
	var profile models.VendorProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *vendorProfileRepository) Update(ctx context.Context, profile *models.VendorProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// UpdateMetalRate persists one rate column plus the rates timestamp. The rate
// orchestrator depends on this write succeeding before any product is touched.
func (r *vendorProfileRepository) UpdateMetalRate(ctx context.Context, userID string, metal string, rate decimal.Decimal) error {
	var column string
	switch metal {
	case models.MetalGold:
		column = "gold_rate"
	case models.MetalSilver:
		column = "silver_rate"
	case models.MetalPlatinum:
		column = "platinum_rate"
	default:
		return fmt.Errorf("unknown metal %q", metal)
	}

	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.VendorProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			column:             rate,
			"rates_updated_at": &now,
			"updated_at":       now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update %s rate for vendor %s: %w", metal, userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no vendor profile found for user %s", userID)
	}
	return nil
}
