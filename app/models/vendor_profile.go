package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// VendorProfile holds the business identity and the three current metal
// rates. The rate columns are the single source of truth consulted by every
// valuation; RatesUpdatedAt moves whenever any of them changes.
type VendorProfile struct {
	ID           string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID       string `gorm:"size:36;not null;uniqueIndex" json:"user_id"`
	BusinessName string `gorm:"size:255;not null" json:"business_name"`
	Address      string `gorm:"size:500" json:"address"`
	City         string `gorm:"size:100" json:"city"`
	GSTNumber    string `gorm:"size:30" json:"gst_number"`
	LogoPath     string `gorm:"size:255" json:"logo_path"`
	WhatsApp     string `gorm:"size:20" json:"whatsapp"`

	GoldRate     decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"gold_rate"`
	SilverRate   decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"silver_rate"`
	PlatinumRate decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"platinum_rate"`

	RatesUpdatedAt *time.Time `json:"rates_updated_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// RateFor returns the stored per-gram rate for a metal kind; unknown metals
// get zero so valuation degrades to the non-metal cost components.
func (v *VendorProfile) RateFor(metal string) decimal.Decimal {
	switch strings.ToLower(strings.TrimSpace(metal)) {
	case MetalGold:
		return v.GoldRate
	case MetalSilver:
		return v.SilverRate
	case MetalPlatinum:
		return v.PlatinumRate
	}
	return decimal.Zero
}

const (
	MetalGold     = "gold"
	MetalSilver   = "silver"
	MetalPlatinum = "platinum"
)
