package services

import (
	"testing"

	"github.com/cataleon/cataleon/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namesOf(products []models.Product) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return names
}

func TestFilterProductsConjunction(t *testing.T) {
	products := []models.Product{
		{Name: "Gold Ring", MetalType: "gold", RetailPrice: decimal.NewFromInt(25000), Stock: 2},
		{Name: "Gold Chain", MetalType: "gold", RetailPrice: decimal.NewFromInt(80000), Stock: 1},
		{Name: "Silver Ring", MetalType: "silver", RetailPrice: decimal.NewFromInt(4000), Stock: 5},
	}

	got := FilterProducts(products, FilterState{
		MetalType: "gold",
		MaxPrice:  "50000",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Gold Ring", got[0].Name)
}

func TestFilterProductsZeroStateKeepsAll(t *testing.T) {
	products := []models.Product{
		{Name: "B"}, {Name: "A"}, {Name: "C"},
	}
	got := FilterProducts(products, FilterState{})
	assert.Equal(t, []string{"A", "B", "C"}, namesOf(got))
}

func TestFilterProductsNaturalOrder(t *testing.T) {
	products := []models.Product{
		{Name: "Ring 10"},
		{Name: "Ring 2"},
		{Name: "Ring 1"},
		{Name: "Bangle"},
	}
	got := FilterProducts(products, FilterState{})
	assert.Equal(t, []string{"Bangle", "Ring 1", "Ring 2", "Ring 10"}, namesOf(got))
}

func TestFilterCategoryNameFallback(t *testing.T) {
	products := []models.Product{
		{Name: "Temple Necklace", ProductType: models.TypeJewellery},
		{Name: "Round Brilliant", ProductType: models.TypeLooseDiamonds},
	}

	// Matches the type column.
	got := FilterProducts(products, FilterState{Category: "jewellery"})
	require.Len(t, got, 1)
	assert.Equal(t, "Temple Necklace", got[0].Name)

	// No type matches "necklace", so the name substring fallback applies.
	got = FilterProducts(products, FilterState{Category: "necklace"})
	require.Len(t, got, 1)
	assert.Equal(t, "Temple Necklace", got[0].Name)
}

func TestFilterSearchSpansFields(t *testing.T) {
	products := []models.Product{
		{Name: "Solitaire Pendant", Sku: "PND-001", DiamondColor: "F", DiamondClarity: "VS1"},
		{Name: "Plain Band", Sku: "BND-001"},
	}

	got := FilterProducts(products, FilterState{Search: "vs1"})
	require.Len(t, got, 1)
	assert.Equal(t, "Solitaire Pendant", got[0].Name)

	got = FilterProducts(products, FilterState{Search: "pnd"})
	require.Len(t, got, 1)
	assert.Equal(t, "Solitaire Pendant", got[0].Name)
}

func TestFilterDiamondFieldsLegacyFallback(t *testing.T) {
	products := []models.Product{
		// Explicit columns.
		{Name: "New Row", DiamondColor: "G", DiamondClarity: "VVS2"},
		// Legacy composite string only.
		{Name: "Old Row", Gemstone: "F VS1"},
	}

	got := FilterProducts(products, FilterState{DiamondColor: "f"})
	require.Len(t, got, 1)
	assert.Equal(t, "Old Row", got[0].Name)

	got = FilterProducts(products, FilterState{DiamondClarity: "vvs2"})
	require.Len(t, got, 1)
	assert.Equal(t, "New Row", got[0].Name)
}

func TestFilterRangeExcludesZeroValues(t *testing.T) {
	products := []models.Product{
		{Name: "With Diamond", DiamondWeight: decimal.RequireFromString("0.5")},
		{Name: "Without Diamond"},
	}

	// A bounded range drops products that lack the field entirely.
	got := FilterProducts(products, FilterState{MinDiamondWeight: "0.1"})
	require.Len(t, got, 1)
	assert.Equal(t, "With Diamond", got[0].Name)
}

func TestFilterStockRange(t *testing.T) {
	products := []models.Product{
		{Name: "A", Stock: 0},
		{Name: "B", Stock: 3},
		{Name: "C", Stock: 10},
	}

	got := FilterProducts(products, FilterState{MinStock: "1", MaxStock: "5"})
	assert.Equal(t, []string{"B"}, namesOf(got))
}

func TestFilterStateIsZero(t *testing.T) {
	assert.True(t, FilterState{}.IsZero())
	assert.False(t, FilterState{Search: "x"}.IsZero())
}

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"ring 2", "ring 10", true},
		{"ring 10", "ring 2", false},
		{"ring 2", "ring 2", false},
		{"bangle 3", "ring 1", true},
		{"Ring 2", "ring 10", true},
		{"alpha", "beta", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, naturalLess(tt.a, tt.b), "%q < %q", tt.a, tt.b)
	}
}
