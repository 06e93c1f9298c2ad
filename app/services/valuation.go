package services

import (
	"github.com/cataleon/cataleon/app/models"
	"github.com/shopspring/decimal"
)

var (
	decTwentyFour = decimal.NewFromInt(24)
	decHundred    = decimal.NewFromInt(100)
)

// Valuation is the result of pricing one product against a metal rate. Cost
// and retail are identical at this layer; retail margin is applied later by
// markup or by share-link adjustment, never here.
type Valuation struct {
	PurityFraction decimal.Decimal
	MetalValue     decimal.Decimal
	CostPrice      decimal.Decimal
	RetailPrice    decimal.Decimal
}

// NormalizePurity converts a stored purity value into a fraction. An explicit
// unit always wins. For unspecified units the historical magnitude heuristic
// applies: values at most 1 are already fractions, values at most 24 are
// karat, anything larger is a percentage. A value of exactly 24 therefore
// reads as 24K, and exactly 1 as pure metal.
func NormalizePurity(value decimal.Decimal, unit models.PurityUnit) decimal.Decimal {
	if !value.IsPositive() {
		return decimal.Zero
	}

	switch unit {
	case models.PurityFraction:
		return value
	case models.PurityKarat:
		return value.Div(decTwentyFour).Round(4)
	case models.PurityPercent:
		return value.Div(decHundred).Round(4)
	}

	if value.LessThanOrEqual(decimal.NewFromInt(1)) {
		return value
	}
	if value.LessThanOrEqual(decTwentyFour) {
		return value.Div(decTwentyFour).Round(4)
	}
	return value.Div(decHundred).Round(4)
}

// ValueProduct prices a product at the given per-gram metal rate:
//
//	cost = weight * purity * rate + diamond + making + certification + gemstone
//
// Net weight is preferred over gross; a product with neither contributes no
// metal value. The caller persists the result.
func ValueProduct(p *models.Product, rate decimal.Decimal) Valuation {
	purity := NormalizePurity(p.Purity, p.PurityUnit)
	weight := p.EffectiveWeight()

	metalValue := weight.Mul(purity).Mul(rate).Round(2)

	total := metalValue.
		Add(p.DiamondValue).
		Add(p.MakingCharge).
		Add(p.CertificationCost).
		Add(p.GemstoneCost).
		Round(2)

	return Valuation{
		PurityFraction: purity,
		MetalValue:     metalValue,
		CostPrice:      total,
		RetailPrice:    total,
	}
}
