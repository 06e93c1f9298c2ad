package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductType string

const (
	TypeJewellery     ProductType = "Jewellery"
	TypeLooseDiamonds ProductType = "Loose Diamonds"
	TypeGemstones     ProductType = "Gemstones"
)

// PurityUnit makes the unit of the stored purity value explicit. Legacy rows
// carry PurityUnspecified and are normalized by magnitude at read time.
type PurityUnit string

const (
	PurityUnspecified PurityUnit = ""
	PurityFraction    PurityUnit = "fraction"
	PurityKarat       PurityUnit = "karat"
	PurityPercent     PurityUnit = "percent"
)

type Product struct {
	ID          string      `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	VendorID    string      `gorm:"size:36;index;not null" json:"vendor_id"`
	Vendor      User        `gorm:"foreignKey:VendorID" json:"-"`
	Name        string      `gorm:"size:255;not null" json:"name"`
	Slug        string      `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Sku         string      `gorm:"size:100;index" json:"sku"`
	Description string      `gorm:"type:text" json:"description"`
	ProductType ProductType `gorm:"size:50;index" json:"product_type"`
	MetalType   string      `gorm:"size:50" json:"metal_type"`

	GrossWeight decimal.Decimal `gorm:"type:decimal(10,3);default:0" json:"gross_weight"`
	NetWeight   decimal.Decimal `gorm:"type:decimal(10,3);default:0" json:"net_weight"`
	Purity      decimal.Decimal `gorm:"type:decimal(10,4);default:0" json:"purity"`
	PurityUnit  PurityUnit      `gorm:"size:10;default:''" json:"purity_unit"`
	// Per-gram rate captured at the last recalculation.
	MetalRate decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"metal_rate"`

	StoneWeight1   decimal.Decimal `gorm:"type:decimal(10,3);default:0" json:"stone_weight_1"`
	StoneWeight2   decimal.Decimal `gorm:"type:decimal(10,3);default:0" json:"stone_weight_2"`
	DiamondWeight  decimal.Decimal `gorm:"type:decimal(10,3);default:0" json:"diamond_weight"`
	DiamondValue   decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"diamond_value"`
	DiamondColor   string          `gorm:"size:20" json:"diamond_color"`
	DiamondClarity string          `gorm:"size:20" json:"diamond_clarity"`
	// Legacy composite field ("<color> <clarity>"); superseded by the two
	// explicit columns but still read as a fallback by the filter engine.
	Gemstone string `gorm:"size:100" json:"gemstone"`

	MakingCharge      decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"making_charge"`
	CertificationCost decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"certification_cost"`
	GemstoneCost      decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"gemstone_cost"`

	CostPrice   decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"cost_price"`
	RetailPrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"retail_price"`

	Stock        int    `gorm:"not null;default:0" json:"stock"`
	DeliveryType string `gorm:"size:50" json:"delivery_type"`
	ImagePath    string `gorm:"size:255" json:"image_path"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// HasWeight reports whether the product carries any metal weight, which is
// what qualifies it for rate-driven recalculation.
func (p *Product) HasWeight() bool {
	return p.NetWeight.IsPositive() || p.GrossWeight.IsPositive()
}

// EffectiveWeight prefers net weight over gross; zero when neither is set.
func (p *Product) EffectiveWeight() decimal.Decimal {
	if p.NetWeight.IsPositive() {
		return p.NetWeight
	}
	if p.GrossWeight.IsPositive() {
		return p.GrossWeight
	}
	return decimal.Zero
}
