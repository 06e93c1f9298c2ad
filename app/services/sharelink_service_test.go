package services

import (
	"testing"
	"time"

	"github.com/cataleon/cataleon/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareLinkRoundTrip(t *testing.T) {
	svc := NewShareLinkService("test-secret")

	token, err := svc.Issue("vendor-1", models.TypeJewellery, decimal.NewFromInt(10), AdjustMarkup, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "vendor-1", claims.VendorID)
	assert.Equal(t, string(models.TypeJewellery), claims.ProductType)
	assert.Equal(t, "10", claims.AdjustPercent)
	assert.Equal(t, AdjustMarkup, claims.AdjustDirection)
}

func TestShareLinkExpired(t *testing.T) {
	svc := NewShareLinkService("test-secret")

	token, err := svc.Issue("vendor-1", "", decimal.Zero, "", -time.Hour)
	require.NoError(t, err)

	// Negative TTL falls back to the 30-day default, so build an expired one
	// the hard way: issue with a tiny TTL and wait it out.
	_, err = svc.Validate(token)
	require.NoError(t, err)

	short, err := svc.Issue("vendor-1", "", decimal.Zero, "", time.Millisecond)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	_, err = svc.Validate(short)
	assert.Error(t, err)
}

func TestShareLinkWrongSecret(t *testing.T) {
	token, err := NewShareLinkService("secret-a").Issue("vendor-1", "", decimal.Zero, "", time.Hour)
	require.NoError(t, err)

	_, err = NewShareLinkService("secret-b").Validate(token)
	assert.Error(t, err)
}

func TestShareLinkIssueRequiresVendor(t *testing.T) {
	_, err := NewShareLinkService("s").Issue("", "", decimal.Zero, "", time.Hour)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestApplyAdjustment(t *testing.T) {
	svc := NewShareLinkService("s")
	products := []models.Product{
		{Name: "A", RetailPrice: decimal.NewFromInt(1000), CostPrice: decimal.NewFromInt(1000)},
		{Name: "B", RetailPrice: decimal.NewFromInt(500), CostPrice: decimal.NewFromInt(500)},
	}

	adjusted := svc.ApplyAdjustment(products, &ShareLinkClaims{
		AdjustPercent:   "10",
		AdjustDirection: AdjustMarkup,
	})

	require.Len(t, adjusted, 2)
	assert.True(t, adjusted[0].RetailPrice.Equal(decimal.NewFromInt(1100)), "retail %s", adjusted[0].RetailPrice)
	assert.True(t, adjusted[0].CostPrice.IsZero(), "cost must be hidden")
	// The originals are untouched.
	assert.True(t, products[0].RetailPrice.Equal(decimal.NewFromInt(1000)))
	assert.True(t, products[0].CostPrice.Equal(decimal.NewFromInt(1000)))
}

func TestApplyAdjustmentNoAdjustment(t *testing.T) {
	svc := NewShareLinkService("s")
	products := []models.Product{
		{Name: "A", RetailPrice: decimal.NewFromInt(1000), CostPrice: decimal.NewFromInt(800)},
	}

	adjusted := svc.ApplyAdjustment(products, &ShareLinkClaims{})
	require.Len(t, adjusted, 1)
	assert.True(t, adjusted[0].RetailPrice.Equal(decimal.NewFromInt(1000)))
	assert.True(t, adjusted[0].CostPrice.IsZero())
}
