package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cataleon/cataleon/app/models"
	"github.com/cataleon/cataleon/app/repositories"
	"github.com/shopspring/decimal"
)

// fakeProductRepo is an in-memory ProductRepositoryImpl. Bulk and rate
// cascades call it from concurrent goroutines, hence the mutex.
type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*models.Product

	failUpdateIDs map[string]bool
	deleted       []string
	priceUpdates  map[string]repositories.PriceUpdate
	fieldUpdates  map[string]map[string]interface{}
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	repo := &fakeProductRepo{
		products:      make(map[string]*models.Product),
		failUpdateIDs: make(map[string]bool),
		priceUpdates:  make(map[string]repositories.PriceUpdate),
		fieldUpdates:  make(map[string]map[string]interface{}),
	}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, vendorID, id string) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok || p.VendorID != vendorID {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByVendor(ctx context.Context, vendorID string) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Product
	for _, p := range f.products {
		if p.VendorID == vendorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetByVendorAndType(ctx context.Context, vendorID string, productType models.ProductType) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Product
	for _, p := range f.products {
		if p.VendorID == vendorID && p.ProductType == productType {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetWeightBearing(ctx context.Context, vendorID string, metalType string) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Product
	for _, p := range f.products {
		if p.VendorID != vendorID || !p.HasWeight() {
			continue
		}
		if metalType != "" && p.MetalType != metalType {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) UpdatePrice(ctx context.Context, vendorID, id string, update repositories.PriceUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdateIDs[id] {
		return fmt.Errorf("write failed for %s", id)
	}
	p, ok := f.products[id]
	if !ok || p.VendorID != vendorID {
		return fmt.Errorf("product %s not found", id)
	}
	p.CostPrice = update.CostPrice
	p.RetailPrice = update.RetailPrice
	p.MetalRate = update.MetalRate
	f.priceUpdates[id] = update
	return nil
}

func (f *fakeProductRepo) UpdateFields(ctx context.Context, vendorID, id string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdateIDs[id] {
		return fmt.Errorf("write failed for %s", id)
	}
	p, ok := f.products[id]
	if !ok || p.VendorID != vendorID {
		return fmt.Errorf("product %s not found", id)
	}
	if v, ok := fields["retail_price"].(decimal.Decimal); ok {
		p.RetailPrice = v
	}
	if v, ok := fields["cost_price"].(decimal.Decimal); ok {
		p.CostPrice = v
	}
	if v, ok := fields["making_charge"].(decimal.Decimal); ok {
		p.MakingCharge = v
	}
	if v, ok := fields["purity"].(decimal.Decimal); ok {
		p.Purity = v
	}
	if v, ok := fields["purity_unit"].(string); ok {
		p.PurityUnit = models.PurityUnit(v)
	}
	if v, ok := fields["stock"].(int); ok {
		p.Stock = v
	}
	f.fieldUpdates[id] = fields
	return nil
}

func (f *fakeProductRepo) SoftDelete(ctx context.Context, vendorID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdateIDs[id] {
		return fmt.Errorf("delete failed for %s", id)
	}
	p, ok := f.products[id]
	if !ok || p.VendorID != vendorID {
		return fmt.Errorf("product %s not found", id)
	}
	delete(f.products, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProfileRepo struct {
	mu      sync.Mutex
	profile *models.VendorProfile
	failSet bool

	ratesWritten map[string]decimal.Decimal
}

func newFakeProfileRepo(profile *models.VendorProfile) *fakeProfileRepo {
	return &fakeProfileRepo{
		profile:      profile,
		ratesWritten: make(map[string]decimal.Decimal),
	}
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *models.VendorProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile = profile
	return nil
}

func (f *fakeProfileRepo) FindByUserID(ctx context.Context, userID string) (*models.VendorProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.profile == nil || f.profile.UserID != userID {
		return nil, nil
	}
	clone := *f.profile
	return &clone, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *models.VendorProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile = profile
	return nil
}

func (f *fakeProfileRepo) UpdateMetalRate(ctx context.Context, userID string, metal string, rate decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSet {
		return fmt.Errorf("profile write failed")
	}
	if f.profile == nil || f.profile.UserID != userID {
		return fmt.Errorf("profile not found")
	}
	switch metal {
	case models.MetalGold:
		f.profile.GoldRate = rate
	case models.MetalSilver:
		f.profile.SilverRate = rate
	case models.MetalPlatinum:
		f.profile.PlatinumRate = rate
	}
	now := time.Now()
	f.profile.RatesUpdatedAt = &now
	f.ratesWritten[metal] = rate
	return nil
}
