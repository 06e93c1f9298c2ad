package models

import (
	"time"

	"gorm.io/gorm"
)

type InquiryStatus string

const (
	InquiryPending   InquiryStatus = "pending"
	InquiryContacted InquiryStatus = "contacted"
	InquiryClosed    InquiryStatus = "closed"
)

// Inquiry is a customer's purchase interest submitted through a shared
// catalog link. It never carries money movement; conversion is tracked only
// through the status enum.
type Inquiry struct {
	ID            string        `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	VendorID      string        `gorm:"size:36;index;not null" json:"vendor_id"`
	ProductID     string        `gorm:"size:36;index" json:"product_id"`
	Product       *Product      `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CustomerName  string        `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string        `gorm:"size:100" json:"customer_email"`
	CustomerPhone string        `gorm:"size:20" json:"customer_phone"`
	Message       string        `gorm:"type:text" json:"message"`
	Status        InquiryStatus `gorm:"size:20;default:'pending';index" json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
