package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin-managed site content: blog posts, press mentions and the brand-logo
// strip shown on the public pages.

type BlogPost struct {
	ID        string         `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Slug      string         `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Body      string         `gorm:"type:text" json:"body"`
	CoverPath string         `gorm:"size:255" json:"cover_path"`
	Published bool           `gorm:"default:false" json:"published"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type PressItem struct {
	ID        string         `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Outlet    string         `gorm:"size:100" json:"outlet"`
	URL       string         `gorm:"size:500" json:"url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type BrandLogo struct {
	ID        string         `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	ImagePath string         `gorm:"size:255;not null" json:"image_path"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
