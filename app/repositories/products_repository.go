package repositories

import (
	"context"
	"time"

	"github.com/cataleon/cataleon/app/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceUpdate carries the recomputed pair persisted after a rate change.
// Cost and retail are always written together so the two columns never
// drift apart.
type PriceUpdate struct {
	CostPrice   decimal.Decimal
	RetailPrice decimal.Decimal
	MetalRate   decimal.Decimal
}

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, vendorID, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByVendor(ctx context.Context, vendorID string) ([]models.Product, error)
	GetByVendorAndType(ctx context.Context, vendorID string, productType models.ProductType) ([]models.Product, error)
	GetWeightBearing(ctx context.Context, vendorID string, metalType string) ([]models.Product, error)
	UpdatePrice(ctx context.Context, vendorID, id string, update PriceUpdate) error
	UpdateFields(ctx context.Context, vendorID, id string, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, vendorID, id string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) GetByID(ctx context.Context, vendorID, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", id, vendorID).
		First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).Where("slug = ?", slug).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetByVendor(ctx context.Context, vendorID string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetByVendorAndType(ctx context.Context, vendorID string, productType models.ProductType) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("vendor_id = ? AND product_type = ?", vendorID, productType).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// GetWeightBearing returns the vendor's active products that qualify for
// rate-driven recalculation: a non-zero net or gross weight, optionally
// narrowed to one metal type.
func (p *productRepository) GetWeightBearing(ctx context.Context, vendorID string, metalType string) ([]models.Product, error) {
	var products []models.Product
	q := p.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Where("net_weight > 0 OR gross_weight > 0")
	if metalType != "" {
		q = q.Where("LOWER(metal_type) = LOWER(?)", metalType)
	}
	err := q.Find(&products).Error
	return products, err
}

func (p *productRepository) UpdatePrice(ctx context.Context, vendorID, id string, update PriceUpdate) error {
	return p.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND vendor_id = ?", id, vendorID).
		Updates(map[string]interface{}{
			"cost_price":   update.CostPrice,
			"retail_price": update.RetailPrice,
			"metal_rate":   update.MetalRate,
			"updated_at":   time.Now(),
		}).Error
}

func (p *productRepository) UpdateFields(ctx context.Context, vendorID, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()
	return p.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND vendor_id = ?", id, vendorID).
		Updates(fields).Error
}

func (p *productRepository) SoftDelete(ctx context.Context, vendorID, id string) error {
	return p.db.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", id, vendorID).
		Delete(&models.Product{}).Error
}
