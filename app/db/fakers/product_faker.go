package fakers

import (
	"github.com/cataleon/cataleon/app/helpers"
	"github.com/cataleon/cataleon/app/models"
	"github.com/cataleon/cataleon/app/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type demoProduct struct {
	name        string
	sku         string
	productType models.ProductType
	metalType   string
	netWeight   string
	grossWeight string
	purity      string
	purityUnit  models.PurityUnit
	diamondW    string
	diamondV    string
	color       string
	clarity     string
	making      string
	cert        string
	gemCost     string
	stock       int
}

var demoCatalog = []demoProduct{
	{name: "Classic Gold Ring 1", sku: "RNG-001", productType: models.TypeJewellery, metalType: models.MetalGold, netWeight: "4.250", purity: "22", purityUnit: models.PurityKarat, making: "1500", stock: 3},
	{name: "Classic Gold Ring 2", sku: "RNG-002", productType: models.TypeJewellery, metalType: models.MetalGold, netWeight: "5.100", purity: "22", purityUnit: models.PurityKarat, making: "1800", stock: 2},
	{name: "Classic Gold Ring 10", sku: "RNG-010", productType: models.TypeJewellery, metalType: models.MetalGold, netWeight: "6.800", purity: "18", purityUnit: models.PurityKarat, making: "2200", stock: 1},
	{name: "Diamond Solitaire Pendant", sku: "PND-001", productType: models.TypeJewellery, metalType: models.MetalGold, netWeight: "2.400", purity: "18", purityUnit: models.PurityKarat, diamondW: "0.350", diamondV: "42000", color: "F", clarity: "VS1", making: "3500", cert: "1200", stock: 1},
	{name: "Silver Anklet Pair", sku: "ANK-001", productType: models.TypeJewellery, metalType: models.MetalSilver, grossWeight: "38.500", purity: "0.925", purityUnit: models.PurityFraction, making: "600", stock: 6},
	{name: "Round Brilliant 0.50ct", sku: "DIA-050", productType: models.TypeLooseDiamonds, diamondW: "0.500", diamondV: "85000", color: "G", clarity: "VVS2", cert: "2500", stock: 2},
	{name: "Natural Ruby 2.1ct", sku: "GEM-RBY1", productType: models.TypeGemstones, gemCost: "36000", cert: "1800", stock: 1},
}

// ProductFaker builds the demo catalog for a vendor, pricing each product
// through the same valuation rule the API uses.
func ProductFaker(profile *models.VendorProfile, vendorID string) []models.Product {
	products := make([]models.Product, 0, len(demoCatalog))
	for _, d := range demoCatalog {
		id := uuid.New().String()
		product := models.Product{
			ID:                id,
			VendorID:          vendorID,
			Name:              d.name,
			Slug:              helpers.GenerateSlug(d.name + "-" + id[:6]),
			Sku:               d.sku,
			ProductType:       d.productType,
			MetalType:         d.metalType,
			NetWeight:         dec(d.netWeight),
			GrossWeight:       dec(d.grossWeight),
			Purity:            dec(d.purity),
			PurityUnit:        d.purityUnit,
			DiamondWeight:     dec(d.diamondW),
			DiamondValue:      dec(d.diamondV),
			DiamondColor:      d.color,
			DiamondClarity:    d.clarity,
			MakingCharge:      dec(d.making),
			CertificationCost: dec(d.cert),
			GemstoneCost:      dec(d.gemCost),
			Stock:             d.stock,
			DeliveryType:      "ready",
		}

		rate := profile.RateFor(product.MetalType)
		valuation := services.ValueProduct(&product, rate)
		product.MetalRate = rate
		product.CostPrice = valuation.CostPrice
		product.RetailPrice = valuation.RetailPrice

		products = append(products, product)
	}
	return products
}

func dec(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
