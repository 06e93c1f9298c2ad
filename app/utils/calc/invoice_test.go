package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTax(t *testing.T) {
	// 3% GST on 24100.80 rounds to 723.02.
	tax := CalculateTax(decimal.RequireFromString("24100.80"), decimal.NewFromInt(3))
	assert.True(t, tax.Equal(decimal.RequireFromString("723.02")), "tax %s", tax)

	assert.True(t, CalculateTax(decimal.NewFromInt(1000), decimal.Zero).IsZero())
}

func TestCalculateGrandTotal(t *testing.T) {
	total := CalculateGrandTotal(decimal.RequireFromString("24100.80"), decimal.RequireFromString("723.02"))
	assert.True(t, total.Equal(decimal.RequireFromString("24823.82")), "total %s", total)
}
