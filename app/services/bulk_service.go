package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cataleon/cataleon/app/models"
	"github.com/cataleon/cataleon/app/repositories"
	"github.com/shopspring/decimal"
)

// Selection is the set of product IDs a bulk operation targets. It is owned
// by the requesting session, arrives in the request body and is rebuilt per
// call; nothing server-side remembers it between requests.
type Selection []string

func (s Selection) Empty() bool { return len(s) == 0 }

const (
	AdjustMarkup   = "markup"
	AdjustMarkdown = "markdown"
)

// BulkFields carries a bulk update request. Direct overwrites and the
// proportional adjustment are mutually exclusive modes; when both are
// supplied for the same column the explicit value wins over the computed one.
// All numeric fields arrive as strings, empty meaning "not supplied".
type BulkFields struct {
	MakingCharge      string `json:"making_charge"`
	CertificationCost string `json:"certification_cost"`
	GemstoneCost      string `json:"gemstone_cost"`
	DiamondValue      string `json:"diamond_value"`
	RetailPrice       string `json:"retail_price"`
	CostPrice         string `json:"cost_price"`
	Purity            string `json:"purity"`
	Stock             string `json:"stock"`
	MetalType         string `json:"metal_type"`
	DeliveryType      string `json:"delivery_type"`

	AdjustPercent   string `json:"adjust_percent"`
	AdjustDirection string `json:"adjust_direction"`
}

type BulkService interface {
	DeleteSelected(ctx context.Context, vendorID string, sel Selection) (int, error)
	BulkUpdate(ctx context.Context, vendorID string, sel Selection, fields BulkFields) (BatchOutcome, error)
}

type bulkService struct {
	productRepo repositories.ProductRepositoryImpl
}

func NewBulkService(productRepo repositories.ProductRepositoryImpl) BulkService {
	return &bulkService{productRepo: productRepo}
}

// DeleteSelected soft-deletes every selected product belonging to the vendor
// and reports how many were marked. Per-item calls are independent; a failed
// item does not undo its siblings.
func (s *bulkService) DeleteSelected(ctx context.Context, vendorID string, sel Selection) (int, error) {
	if vendorID == "" {
		return 0, ErrUnauthenticated
	}
	if sel.Empty() {
		return 0, fmt.Errorf("%w: empty selection", ErrInvalidInput)
	}

	outcome := RunBatch(ctx, sel, func(ctx context.Context, id string) error {
		return s.productRepo.SoftDelete(ctx, vendorID, id)
	})
	return outcome.Succeeded(), outcome.Err()
}

func (s *bulkService) BulkUpdate(ctx context.Context, vendorID string, sel Selection, fields BulkFields) (BatchOutcome, error) {
	if vendorID == "" {
		return BatchOutcome{}, ErrUnauthenticated
	}
	if sel.Empty() {
		return BatchOutcome{}, fmt.Errorf("%w: empty selection", ErrInvalidInput)
	}

	overwrites := buildOverwrites(fields)

	percent, direction, adjusting := parseAdjustment(fields)
	if !adjusting && len(overwrites) == 0 {
		return BatchOutcome{}, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	outcome := RunBatch(ctx, sel, func(ctx context.Context, id string) error {
		updates := make(map[string]interface{}, len(overwrites)+2)

		if adjusting {
			// Prices are re-read from storage per product so repeated
			// adjustments never compound on stale client state.
			product, err := s.productRepo.GetByID(ctx, vendorID, id)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("product %s not found", id)
			}
			updates["retail_price"] = adjustPrice(product.RetailPrice, percent, direction)
			updates["cost_price"] = adjustPrice(product.CostPrice, percent, direction)
		}

		// Explicit field values win over computed ones.
		for k, v := range overwrites {
			updates[k] = v
		}

		return s.productRepo.UpdateFields(ctx, vendorID, id, updates)
	})

	return outcome, outcome.Err()
}

// buildOverwrites validates the direct-overwrite fields. Malformed or
// negative numeric input is skipped per field, not rejected as a whole.
func buildOverwrites(fields BulkFields) map[string]interface{} {
	updates := make(map[string]interface{})

	numeric := map[string]string{
		"making_charge":      fields.MakingCharge,
		"certification_cost": fields.CertificationCost,
		"gemstone_cost":      fields.GemstoneCost,
		"diamond_value":      fields.DiamondValue,
		"retail_price":       fields.RetailPrice,
		"cost_price":         fields.CostPrice,
	}
	for column, raw := range numeric {
		if raw == "" {
			continue
		}
		value, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil || value.IsNegative() {
			log.Printf("buildOverwrites: skipping %s value %q", column, raw)
			continue
		}
		updates[column] = value
	}

	if fields.Purity != "" {
		if purity, err := decimal.NewFromString(strings.TrimSpace(fields.Purity)); err == nil && !purity.IsNegative() {
			// Anything above 1 is taken as a percentage; the stored value is
			// always a fraction with its unit made explicit.
			if purity.GreaterThan(decimal.NewFromInt(1)) {
				purity = purity.Div(decHundred).Round(4)
			}
			updates["purity"] = purity
			updates["purity_unit"] = string(models.PurityFraction)
		} else {
			log.Printf("buildOverwrites: skipping purity value %q", fields.Purity)
		}
	}

	if fields.Stock != "" {
		if stock, err := decimal.NewFromString(strings.TrimSpace(fields.Stock)); err == nil && !stock.IsNegative() {
			updates["stock"] = int(stock.IntPart())
		} else {
			log.Printf("buildOverwrites: skipping stock value %q", fields.Stock)
		}
	}

	if fields.MetalType != "" {
		updates["metal_type"] = strings.TrimSpace(fields.MetalType)
	}
	if fields.DeliveryType != "" {
		updates["delivery_type"] = strings.TrimSpace(fields.DeliveryType)
	}

	return updates
}

func parseAdjustment(fields BulkFields) (decimal.Decimal, string, bool) {
	if fields.AdjustPercent == "" {
		return decimal.Zero, "", false
	}
	percent, err := decimal.NewFromString(strings.TrimSpace(fields.AdjustPercent))
	if err != nil || !percent.IsPositive() {
		log.Printf("parseAdjustment: skipping adjust percent %q", fields.AdjustPercent)
		return decimal.Zero, "", false
	}
	direction := strings.ToLower(strings.TrimSpace(fields.AdjustDirection))
	if direction != AdjustMarkup && direction != AdjustMarkdown {
		log.Printf("parseAdjustment: skipping adjust direction %q", fields.AdjustDirection)
		return decimal.Zero, "", false
	}
	return percent, direction, true
}

// adjustPrice applies the proportional multiplier, floored at zero.
func adjustPrice(price, percent decimal.Decimal, direction string) decimal.Decimal {
	delta := price.Mul(percent).Div(decHundred)
	var adjusted decimal.Decimal
	if direction == AdjustMarkdown {
		adjusted = price.Sub(delta)
	} else {
		adjusted = price.Add(delta)
	}
	adjusted = adjusted.Round(2)
	if adjusted.IsNegative() {
		return decimal.Zero
	}
	return adjusted
}
