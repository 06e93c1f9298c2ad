package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cataleon/cataleon/app/models"
	"github.com/shopspring/decimal"
)

// FilterState is the ephemeral, request-scoped filter record. Every field is
// a string and an empty string means "inactive"; the zero value is the reset
// state. It is reconstructed per request and never persisted.
type FilterState struct {
	Search   string
	Name     string
	Category string
	Sku      string

	MetalType    string
	Purity       string
	DeliveryType string
	Gemstone     string

	MinPrice string
	MaxPrice string

	DiamondColor   string
	DiamondClarity string

	MinDiamondWeight string
	MaxDiamondWeight string
	MinNetWeight     string
	MaxNetWeight     string
	MinGrossWeight   string
	MaxGrossWeight   string

	MinMakingCharge string
	MaxMakingCharge string
	MinStock        string
	MaxStock        string

	MinDiamondValue string
	MaxDiamondValue string
}

// IsZero reports whether no filter field is active.
func (f FilterState) IsZero() bool {
	return f == FilterState{}
}

// FilterProducts narrows products through a conjunctive predicate chain and
// returns them in natural name order. Pure; the input slice is not mutated.
func FilterProducts(products []models.Product, f FilterState) []models.Product {
	out := make([]models.Product, 0, len(products))
	for i := range products {
		if matchesAll(&products[i], f) {
			out = append(out, products[i])
		}
	}
	SortProductsNatural(out)
	return out
}

func matchesAll(p *models.Product, f FilterState) bool {
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	if f.Name != "" && !containsFold(p.Name, f.Name) {
		return false
	}
	// A category mismatch falls back to a name substring match: catalogs
	// imported from spreadsheets are inconsistently tagged.
	if f.Category != "" && !equalFold(string(p.ProductType), f.Category) && !containsFold(p.Name, f.Category) {
		return false
	}
	if f.Sku != "" && !equalFold(p.Sku, f.Sku) {
		return false
	}
	if f.MetalType != "" && !equalFold(p.MetalType, f.MetalType) {
		return false
	}
	if f.Purity != "" && !decimalEquals(p.Purity, f.Purity) {
		return false
	}
	if f.DeliveryType != "" && !equalFold(p.DeliveryType, f.DeliveryType) {
		return false
	}
	if f.Gemstone != "" && !containsFold(p.Gemstone, f.Gemstone) {
		return false
	}
	if f.DiamondColor != "" && !equalFold(diamondColor(p), f.DiamondColor) {
		return false
	}
	if f.DiamondClarity != "" && !equalFold(diamondClarity(p), f.DiamondClarity) {
		return false
	}
	if !inRange(p.RetailPrice, f.MinPrice, f.MaxPrice) {
		return false
	}
	if !inRange(p.DiamondWeight, f.MinDiamondWeight, f.MaxDiamondWeight) {
		return false
	}
	if !inRange(p.NetWeight, f.MinNetWeight, f.MaxNetWeight) {
		return false
	}
	if !inRange(p.GrossWeight, f.MinGrossWeight, f.MaxGrossWeight) {
		return false
	}
	if !inRange(p.MakingCharge, f.MinMakingCharge, f.MaxMakingCharge) {
		return false
	}
	if !inRange(p.DiamondValue, f.MinDiamondValue, f.MaxDiamondValue) {
		return false
	}
	if !intInRange(p.Stock, f.MinStock, f.MaxStock) {
		return false
	}
	return true
}

// matchesSearch reports whether the lowercased query is a substring of any
// searchable field, numeric fields stringified.
func matchesSearch(p *models.Product, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	haystacks := []string{
		p.Name,
		string(p.ProductType),
		p.Sku,
		p.Description,
		p.MetalType,
		p.Gemstone,
		diamondColor(p),
		diamondClarity(p),
		p.DiamondWeight.String(),
		p.NetWeight.String(),
		p.RetailPrice.String(),
	}
	for _, h := range haystacks {
		if h != "" && strings.Contains(strings.ToLower(h), q) {
			return true
		}
	}
	return false
}

// diamondColor prefers the explicit column; older rows only carry the
// composite gemstone string ("<color> <clarity>") and are split on
// whitespace, position 0 being the color.
func diamondColor(p *models.Product) string {
	if p.DiamondColor != "" {
		return p.DiamondColor
	}
	parts := strings.Fields(p.Gemstone)
	if len(parts) > 0 {
		return parts[0]
	}
	return ""
}

func diamondClarity(p *models.Product) string {
	if p.DiamondClarity != "" {
		return p.DiamondClarity
	}
	parts := strings.Fields(p.Gemstone)
	if len(parts) > 1 {
		return parts[1]
	}
	return ""
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(strings.TrimSpace(needle)))
}

func decimalEquals(value decimal.Decimal, filter string) bool {
	want, err := decimal.NewFromString(strings.TrimSpace(filter))
	if err != nil {
		return false
	}
	return value.Equal(want)
}

// inRange applies optional min/max bounds. When a bound is specified and the
// product lacks the field (zero value), the product is excluded.
func inRange(value decimal.Decimal, minStr, maxStr string) bool {
	if minStr == "" && maxStr == "" {
		return true
	}
	if value.IsZero() {
		return false
	}
	if minStr != "" {
		min, err := decimal.NewFromString(strings.TrimSpace(minStr))
		if err == nil && value.LessThan(min) {
			return false
		}
	}
	if maxStr != "" {
		max, err := decimal.NewFromString(strings.TrimSpace(maxStr))
		if err == nil && value.GreaterThan(max) {
			return false
		}
	}
	return true
}

func intInRange(value int, minStr, maxStr string) bool {
	if minStr == "" && maxStr == "" {
		return true
	}
	if minStr != "" {
		if min, err := strconv.Atoi(strings.TrimSpace(minStr)); err == nil && value < min {
			return false
		}
	}
	if maxStr != "" {
		if max, err := strconv.Atoi(strings.TrimSpace(maxStr)); err == nil && value > max {
			return false
		}
	}
	return true
}

// SortProductsNatural orders products by name so that "Ring 9" comes before
// "Ring 10": when two names share a non-numeric prefix their trailing digit
// runs are compared numerically, everything else compares lexicographically.
func SortProductsNatural(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return naturalLess(products[i].Name, products[j].Name)
	})
}

func naturalLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)

	prefixA, numA, okA := splitTrailingNumber(la)
	prefixB, numB, okB := splitTrailingNumber(lb)

	if okA && okB && prefixA == prefixB {
		if numA != numB {
			return numA < numB
		}
		return la < lb
	}
	return la < lb
}

// splitTrailingNumber splits "ring 10" into ("ring ", 10, true).
func splitTrailingNumber(s string) (prefix string, n int64, ok bool) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return s, 0, false
	}
	n, err := strconv.ParseInt(s[i:], 10, 64)
	if err != nil {
		return s, 0, false
	}
	return s[:i], n, true
}
