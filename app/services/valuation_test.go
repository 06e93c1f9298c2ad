package services

import (
	"testing"

	"github.com/cataleon/cataleon/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestNormalizePurity(t *testing.T) {
	tests := []struct {
		name  string
		value string
		unit  models.PurityUnit
		want  string
	}{
		{"karat by magnitude", "22", models.PurityUnspecified, "0.9167"},
		{"fraction by magnitude", "0.75", models.PurityUnspecified, "0.75"},
		{"percent by magnitude", "58", models.PurityUnspecified, "0.58"},
		{"exactly 24 reads as karat", "24", models.PurityUnspecified, "1"},
		{"exactly 1 reads as fraction", "1", models.PurityUnspecified, "1"},
		{"explicit karat wins over magnitude", "18", models.PurityKarat, "0.75"},
		{"explicit percent on small value", "0.9", models.PurityPercent, "0.009"},
		{"explicit fraction passes through", "0.916", models.PurityFraction, "0.916"},
		{"zero", "0", models.PurityUnspecified, "0"},
		{"negative", "-5", models.PurityKarat, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePurity(dec(t, tt.value), tt.unit)
			assert.True(t, got.Equal(dec(t, tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestValueProduct(t *testing.T) {
	t.Run("full component sum", func(t *testing.T) {
		p := &models.Product{
			NetWeight:         dec(t, "4"),
			Purity:            dec(t, "22"),
			MakingCharge:      dec(t, "2000"),
			CertificationCost: dec(t, "100"),
		}
		v := ValueProduct(p, dec(t, "6000"))

		// 4 * 0.9167 * 6000 = 22000.80
		assert.True(t, v.MetalValue.Equal(dec(t, "22000.80")), "metal value %s", v.MetalValue)
		assert.True(t, v.CostPrice.Equal(dec(t, "24100.80")), "cost %s", v.CostPrice)
		assert.True(t, v.RetailPrice.Equal(v.CostPrice), "retail must equal cost")
	})

	t.Run("net weight preferred over gross", func(t *testing.T) {
		p := &models.Product{
			NetWeight:   dec(t, "2"),
			GrossWeight: dec(t, "5"),
			Purity:      dec(t, "1"),
		}
		v := ValueProduct(p, dec(t, "100"))
		assert.True(t, v.MetalValue.Equal(dec(t, "200")), "metal value %s", v.MetalValue)
	})

	t.Run("gross weight fallback", func(t *testing.T) {
		p := &models.Product{
			GrossWeight: dec(t, "5"),
			Purity:      dec(t, "1"),
		}
		v := ValueProduct(p, dec(t, "100"))
		assert.True(t, v.MetalValue.Equal(dec(t, "500")), "metal value %s", v.MetalValue)
	})

	t.Run("weightless product keeps non-metal components", func(t *testing.T) {
		p := &models.Product{
			Purity:       dec(t, "22"),
			DiamondValue: dec(t, "42000"),
			GemstoneCost: dec(t, "1500"),
		}
		v := ValueProduct(p, dec(t, "6000"))
		assert.True(t, v.MetalValue.IsZero())
		assert.True(t, v.CostPrice.Equal(dec(t, "43500")), "cost %s", v.CostPrice)
	})
}
