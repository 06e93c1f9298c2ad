package services

import (
	"context"
	"testing"

	"github.com/cataleon/cataleon/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVendor = "vendor-1"

func testProduct(id string, retail, cost string) *models.Product {
	return &models.Product{
		ID:          id,
		VendorID:    testVendor,
		Name:        "Product " + id,
		RetailPrice: decimal.RequireFromString(retail),
		CostPrice:   decimal.RequireFromString(cost),
	}
}

func TestDeleteSelected(t *testing.T) {
	repo := newFakeProductRepo(
		testProduct("p1", "1000", "1000"),
		testProduct("p2", "2000", "2000"),
	)
	svc := NewBulkService(repo)

	deleted, err := svc.DeleteSelected(context.Background(), testVendor, Selection{"p1", "p2"})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Len(t, repo.deleted, 2)
}

func TestDeleteSelectedPartialFailure(t *testing.T) {
	repo := newFakeProductRepo(
		testProduct("p1", "1000", "1000"),
		testProduct("p2", "2000", "2000"),
	)
	repo.failUpdateIDs["p2"] = true
	svc := NewBulkService(repo)

	deleted, err := svc.DeleteSelected(context.Background(), testVendor, Selection{"p1", "p2"})
	require.Error(t, err)
	assert.Equal(t, 1, deleted)
	// The sibling that succeeded stays deleted.
	assert.Equal(t, []string{"p1"}, repo.deleted)
}

func TestDeleteSelectedGuards(t *testing.T) {
	svc := NewBulkService(newFakeProductRepo())

	_, err := svc.DeleteSelected(context.Background(), "", Selection{"p1"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.DeleteSelected(context.Background(), testVendor, Selection{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBulkUpdateMarkup(t *testing.T) {
	repo := newFakeProductRepo(testProduct("p1", "1000", "1000"))
	svc := NewBulkService(repo)

	outcome, err := svc.BulkUpdate(context.Background(), testVendor, Selection{"p1"}, BulkFields{
		AdjustPercent:   "10",
		AdjustDirection: AdjustMarkup,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Succeeded())
	assert.True(t, repo.products["p1"].RetailPrice.Equal(decimal.RequireFromString("1100")),
		"retail %s", repo.products["p1"].RetailPrice)
}

func TestBulkUpdateMarkdownFloorsAtZero(t *testing.T) {
	repo := newFakeProductRepo(testProduct("p1", "100", "100"))
	svc := NewBulkService(repo)

	// adjustPrice floors at zero even for percent values above 100.
	_, err := svc.BulkUpdate(context.Background(), testVendor, Selection{"p1"}, BulkFields{
		AdjustPercent:   "150",
		AdjustDirection: AdjustMarkdown,
	})
	require.NoError(t, err)
	assert.True(t, repo.products["p1"].RetailPrice.IsZero(), "retail %s", repo.products["p1"].RetailPrice)
}

func TestBulkUpdateSkipsMalformedFields(t *testing.T) {
	repo := newFakeProductRepo(testProduct("p1", "1000", "1000"))
	svc := NewBulkService(repo)

	_, err := svc.BulkUpdate(context.Background(), testVendor, Selection{"p1"}, BulkFields{
		MakingCharge: "1500",
		DiamondValue: "not-a-number",
		RetailPrice:  "-50",
	})
	require.NoError(t, err)

	fields := repo.fieldUpdates["p1"]
	require.NotNil(t, fields)
	assert.Contains(t, fields, "making_charge")
	assert.NotContains(t, fields, "diamond_value")
	assert.NotContains(t, fields, "retail_price")
}

func TestBulkUpdatePurityNormalized(t *testing.T) {
	repo := newFakeProductRepo(testProduct("p1", "1000", "1000"))
	svc := NewBulkService(repo)

	_, err := svc.BulkUpdate(context.Background(), testVendor, Selection{"p1"}, BulkFields{
		Purity: "75",
	})
	require.NoError(t, err)

	p := repo.products["p1"]
	assert.True(t, p.Purity.Equal(decimal.RequireFromString("0.75")), "purity %s", p.Purity)
	assert.Equal(t, models.PurityFraction, p.PurityUnit)
}

func TestBulkUpdateExplicitValueWinsOverAdjustment(t *testing.T) {
	repo := newFakeProductRepo(testProduct("p1", "1000", "1000"))
	svc := NewBulkService(repo)

	_, err := svc.BulkUpdate(context.Background(), testVendor, Selection{"p1"}, BulkFields{
		RetailPrice:     "999",
		AdjustPercent:   "10",
		AdjustDirection: AdjustMarkup,
	})
	require.NoError(t, err)
	assert.True(t, repo.products["p1"].RetailPrice.Equal(decimal.RequireFromString("999")),
		"retail %s", repo.products["p1"].RetailPrice)
	// The computed cost adjustment still applies: only the overwritten column
	// is replaced.
	assert.True(t, repo.products["p1"].CostPrice.Equal(decimal.RequireFromString("1100")),
		"cost %s", repo.products["p1"].CostPrice)
}

func TestBulkUpdateNothingToDo(t *testing.T) {
	svc := NewBulkService(newFakeProductRepo(testProduct("p1", "1000", "1000")))

	_, err := svc.BulkUpdate(context.Background(), testVendor, Selection{"p1"}, BulkFields{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
