package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceKind string

const (
	KindInvoice  InvoiceKind = "invoice"
	KindEstimate InvoiceKind = "estimate"
)

// Invoice doubles as a manufacturing estimate when Kind is KindEstimate; an
// estimate carries the same lines but is not final and gets no number until
// it is converted.
type Invoice struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	VendorID      string          `gorm:"size:36;index;not null" json:"vendor_id"`
	Number        string          `gorm:"size:30;index" json:"number"`
	Kind          InvoiceKind     `gorm:"size:10;default:'invoice'" json:"kind"`
	CustomerName  string          `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string          `gorm:"size:100" json:"customer_email"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"subtotal"`
	TaxPercent    decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"tax_percent"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"tax_amount"`
	GrandTotal    decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"grand_total"`
	Items         []InvoiceItem   `gorm:"foreignKey:InvoiceID" json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

type InvoiceItem struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	InvoiceID   string          `gorm:"size:36;index;not null" json:"invoice_id"`
	ProductID   string          `gorm:"size:36" json:"product_id"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Quantity    int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"unit_price"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"line_total"`
	CreatedAt   time.Time       `json:"created_at"`
}
