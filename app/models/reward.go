package models

import "time"

// Reward is one entry in a vendor's per-customer points ledger. Positive
// points are earned (e.g. an inquiry converting to a sale), negative points
// are redemptions. The balance is the sum over a customer's entries.
type Reward struct {
	ID            string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	VendorID      string    `gorm:"size:36;index;not null" json:"vendor_id"`
	CustomerEmail string    `gorm:"size:100;index;not null" json:"customer_email"`
	Points        int       `gorm:"not null" json:"points"`
	Reason        string    `gorm:"size:255" json:"reason"`
	CreatedAt     time.Time `json:"created_at"`
}
