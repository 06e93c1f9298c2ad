package services

import (
	"context"
	"testing"

	"github.com/cataleon/cataleon/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightedProduct(id, weight string) *models.Product {
	return &models.Product{
		ID:         id,
		VendorID:   testVendor,
		Name:       "Product " + id,
		MetalType:  models.MetalGold,
		NetWeight:  decimal.RequireFromString(weight),
		Purity:     decimal.RequireFromString("0.75"),
		PurityUnit: models.PurityFraction,
	}
}

func TestUpdateRateCascade(t *testing.T) {
	products := newFakeProductRepo(
		weightedProduct("p1", "2"),
		weightedProduct("p2", "3"),
		// Weightless: must keep its price untouched.
		testProduct("p3", "5000", "5000"),
	)
	profiles := newFakeProfileRepo(&models.VendorProfile{
		UserID:   testVendor,
		GoldRate: decimal.NewFromInt(6000),
	})
	svc := NewRateService(profiles, products)

	result, err := svc.UpdateRate(context.Background(), testVendor, models.MetalGold, decimal.NewFromInt(6500))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 2, result.Recalculated)
	assert.True(t, profiles.profile.GoldRate.Equal(decimal.NewFromInt(6500)))
	assert.NotNil(t, profiles.profile.RatesUpdatedAt)

	// 2g * 0.75 * 6500 and 3g * 0.75 * 6500.
	assert.True(t, products.products["p1"].RetailPrice.Equal(decimal.RequireFromString("9750")),
		"p1 retail %s", products.products["p1"].RetailPrice)
	assert.True(t, products.products["p2"].RetailPrice.Equal(decimal.RequireFromString("14625")),
		"p2 retail %s", products.products["p2"].RetailPrice)
	assert.True(t, products.products["p3"].RetailPrice.Equal(decimal.RequireFromString("5000")),
		"p3 retail %s", products.products["p3"].RetailPrice)

	assert.Len(t, result.Products, 3)
}

func TestUpdateRateScopedToMetal(t *testing.T) {
	gold := weightedProduct("g1", "2")
	silver := weightedProduct("s1", "10")
	silver.MetalType = models.MetalSilver
	silver.RetailPrice = decimal.RequireFromString("780")
	silver.CostPrice = decimal.RequireFromString("780")

	products := newFakeProductRepo(gold, silver)
	profiles := newFakeProfileRepo(&models.VendorProfile{
		UserID:     testVendor,
		GoldRate:   decimal.NewFromInt(6000),
		SilverRate: decimal.NewFromInt(78),
	})
	svc := NewRateService(profiles, products)

	result, err := svc.UpdateRate(context.Background(), testVendor, models.MetalGold, decimal.NewFromInt(6500))
	require.NoError(t, err)
	require.NotNil(t, result)

	// Only the gold product was repriced; the silver one keeps its price.
	assert.Equal(t, 1, result.Recalculated)
	assert.True(t, products.products["g1"].RetailPrice.Equal(decimal.RequireFromString("9750")),
		"g1 retail %s", products.products["g1"].RetailPrice)
	assert.True(t, products.products["s1"].RetailPrice.Equal(decimal.RequireFromString("780")),
		"s1 retail %s", products.products["s1"].RetailPrice)
	_, touched := products.priceUpdates["s1"]
	assert.False(t, touched, "silver product must not be repriced by a gold-rate change")
}

func TestUpdateRatePartialFailureKeepsSiblings(t *testing.T) {
	products := newFakeProductRepo(
		weightedProduct("p1", "2"),
		weightedProduct("p2", "3"),
	)
	products.failUpdateIDs["p2"] = true
	profiles := newFakeProfileRepo(&models.VendorProfile{
		UserID:   testVendor,
		GoldRate: decimal.NewFromInt(6000),
	})
	svc := NewRateService(profiles, products)

	result, err := svc.UpdateRate(context.Background(), testVendor, models.MetalGold, decimal.NewFromInt(6500))
	require.Error(t, err)
	require.NotNil(t, result, "partial failure still returns the full result")

	assert.Equal(t, 1, result.Recalculated)
	require.Len(t, result.Outcome.Failed(), 1)
	assert.Equal(t, "p2", result.Outcome.Failed()[0].ID)

	// p1's committed write stays applied; nothing is rolled back.
	assert.True(t, products.products["p1"].RetailPrice.Equal(decimal.RequireFromString("9750")))
	assert.True(t, products.products["p2"].RetailPrice.IsZero())
}

func TestUpdateRateProfileWriteAborts(t *testing.T) {
	products := newFakeProductRepo(weightedProduct("p1", "2"))
	profiles := newFakeProfileRepo(&models.VendorProfile{UserID: testVendor})
	profiles.failSet = true
	svc := NewRateService(profiles, products)

	result, err := svc.UpdateRate(context.Background(), testVendor, models.MetalGold, decimal.NewFromInt(6500))
	require.Error(t, err)
	assert.Nil(t, result)
	// No product was touched.
	assert.Empty(t, products.priceUpdates)
}

func TestUpdateRateGuards(t *testing.T) {
	svc := NewRateService(newFakeProfileRepo(nil), newFakeProductRepo())

	_, err := svc.UpdateRate(context.Background(), "", models.MetalGold, decimal.NewFromInt(6500))
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.UpdateRate(context.Background(), testVendor, models.MetalGold, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateRate(context.Background(), testVendor, models.MetalGold, decimal.NewFromInt(-10))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
