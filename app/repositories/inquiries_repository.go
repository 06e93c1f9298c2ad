package repositories

import (
	"context"
	"time"

	"github.com/cataleon/cataleon/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InquiryRepositoryImpl interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	GetByID(ctx context.Context, vendorID, id string) (*models.Inquiry, error)
	GetByVendor(ctx context.Context, vendorID string) ([]models.Inquiry, error)
	GetPendingByVendor(ctx context.Context, vendorID string) ([]models.Inquiry, error)
	CountPending(ctx context.Context, vendorID string) (int64, error)
	UpdateStatus(ctx context.Context, vendorID, id string, status models.InquiryStatus) error
}

type inquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepositoryImpl {
	return &inquiryRepository{db}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.ID == "" {
		inquiry.ID = uuid.New().String()
	}
	if inquiry.Status == "" {
		inquiry.Status = models.InquiryPending
	}
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *inquiryRepository) GetByID(ctx context.Context, vendorID, id string) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ? AND vendor_id = ?", id, vendorID).
		First(&inquiry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *inquiryRepository) GetByVendor(ctx context.Context, vendorID string) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&inquiries).Error
	return inquiries, err
}

func (r *inquiryRepository) GetPendingByVendor(ctx context.Context, vendorID string) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("vendor_id = ? AND status = ?", vendorID, models.InquiryPending).
		Order("created_at ASC").
		Find(&inquiries).Error
	return inquiries, err
}

func (r *inquiryRepository) CountPending(ctx context.Context, vendorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Inquiry{}).
		Where("vendor_id = ? AND status = ?", vendorID, models.InquiryPending).
		Count(&count).Error
	return count, err
}

func (r *inquiryRepository) UpdateStatus(ctx context.Context, vendorID, id string, status models.InquiryStatus) error {
	return r.db.WithContext(ctx).Model(&models.Inquiry{}).
		Where("id = ? AND vendor_id = ?", id, vendorID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}
