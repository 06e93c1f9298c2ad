package calc

import "github.com/shopspring/decimal"

func CalculateTax(baseTotal, taxPercent decimal.Decimal) decimal.Decimal {
	return baseTotal.Mul(taxPercent).Div(decimal.NewFromInt(100)).Round(2)
}

func CalculateGrandTotal(baseTotal, taxAmount decimal.Decimal) decimal.Decimal {
	return baseTotal.Add(taxAmount).Round(2)
}
