package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/cataleon/cataleon/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepositoryImpl interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	GetByID(ctx context.Context, vendorID, id string) (*models.Invoice, error)
	GetByVendor(ctx context.Context, vendorID string) ([]models.Invoice, error)
	NextNumber(ctx context.Context, vendorID string) (string, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepositoryImpl {
	return &invoiceRepository{db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	for i := range invoice.Items {
		if invoice.Items[i].ID == "" {
			invoice.Items[i].ID = uuid.New().String()
		}
		invoice.Items[i].InvoiceID = invoice.ID
	}
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, vendorID, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND vendor_id = ?", id, vendorID).
		First(&invoice).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) GetByVendor(ctx context.Context, vendorID string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

// NextNumber issues INV-<year>-<seq> per vendor. Sequences count finalized
// invoices only; estimates stay unnumbered until converted.
func (r *invoiceRepository) NextNumber(ctx context.Context, vendorID string) (string, error) {
	var count int64
	year := time.Now().Year()
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).
		Where("vendor_id = ? AND kind = ? AND EXTRACT(YEAR FROM created_at) = ?", vendorID, models.KindInvoice, year).
		Count(&count).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%d-%04d", year, count+1), nil
}
