package services

import (
	"context"
	"fmt"
	"log"

	"github.com/cataleon/cataleon/app/models"
	"github.com/cataleon/cataleon/app/repositories"
	"github.com/shopspring/decimal"
)

// RateUpdateResult reports a completed (possibly partially failed) rate
// cascade: the persisted rate, the per-product batch outcome and the
// re-fetched catalog.
type RateUpdateResult struct {
	Metal        string
	NewRate      decimal.Decimal
	Recalculated int
	Outcome      BatchOutcome
	Products     []models.Product
}

type RateService interface {
	UpdateRate(ctx context.Context, vendorID string, metal string, newRate decimal.Decimal) (*RateUpdateResult, error)
}

type rateService struct {
	profileRepo repositories.VendorProfileRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewRateService(profileRepo repositories.VendorProfileRepositoryImpl, productRepo repositories.ProductRepositoryImpl) RateService {
	return &rateService{profileRepo: profileRepo, productRepo: productRepo}
}

// UpdateRate persists the vendor's new metal rate and cascades it across the
// catalog. The profile write is the abort point: if it fails nothing else
// happens. The per-product updates are independent concurrent calls with no
// shared transaction; updates that committed before a sibling failed stay
// applied, and nothing is retried or rolled back. The returned error is
// non-nil when any product update failed, alongside the full result.
func (s *rateService) UpdateRate(ctx context.Context, vendorID string, metal string, newRate decimal.Decimal) (*RateUpdateResult, error) {
	if vendorID == "" {
		return nil, ErrUnauthenticated
	}
	if !newRate.IsPositive() {
		return nil, fmt.Errorf("%w: rate must be positive, got %s", ErrInvalidInput, newRate)
	}

	if err := s.profileRepo.UpdateMetalRate(ctx, vendorID, metal, newRate); err != nil {
		return nil, fmt.Errorf("failed to persist %s rate: %w", metal, err)
	}

	// Only the updated metal's weight-bearing products are repriced; a
	// silver-rate change must not touch gold stock. Zero-weight products
	// keep their price.
	products, err := s.productRepo.GetWeightBearing(ctx, vendorID, metal)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products for recalculation: %w", err)
	}

	updates := make(map[string]repositories.PriceUpdate, len(products))
	ids := make([]string, 0, len(products))
	for i := range products {
		val := ValueProduct(&products[i], newRate)
		updates[products[i].ID] = repositories.PriceUpdate{
			CostPrice:   val.CostPrice,
			RetailPrice: val.RetailPrice,
			MetalRate:   newRate,
		}
		ids = append(ids, products[i].ID)
	}

	outcome := RunBatch(ctx, ids, func(ctx context.Context, id string) error {
		return s.productRepo.UpdatePrice(ctx, vendorID, id, updates[id])
	})

	if failed := outcome.Failed(); len(failed) > 0 {
		log.Printf("UpdateRate: %d of %d product updates failed for vendor %s", len(failed), len(ids), vendorID)
	}

	refreshed, fetchErr := s.productRepo.GetByVendor(ctx, vendorID)
	if fetchErr != nil {
		log.Printf("UpdateRate: catalog re-fetch failed for vendor %s: %v", vendorID, fetchErr)
	}

	result := &RateUpdateResult{
		Metal:        metal,
		NewRate:      newRate,
		Recalculated: outcome.Succeeded(),
		Outcome:      outcome,
		Products:     refreshed,
	}
	return result, outcome.Err()
}
