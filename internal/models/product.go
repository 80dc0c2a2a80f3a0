// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

// Product is a read-only catalog entry. The same struct is decoded from the
// seed file, stored by gorm and rendered by the API.
type Product struct {
	ID            string         `json:"id" yaml:"id" gorm:"primaryKey;size:64"`
	Title         string         `json:"title" yaml:"title" gorm:"size:255;not null"`
	Price         float64        `json:"price" yaml:"price" gorm:"type:decimal(12,2);not null;index"`
	OriginalPrice *float64       `json:"originalPrice,omitempty" yaml:"originalPrice,omitempty" gorm:"type:decimal(12,2)"`
	Discount      *float64       `json:"discount,omitempty" yaml:"discount,omitempty"`
	Rating        float64        `json:"rating" yaml:"rating" gorm:"type:decimal(3,2);default:0"`
	Reviews       int64          `json:"reviews" yaml:"reviews" gorm:"default:0"`
	Image         string         `json:"image" yaml:"image" gorm:"size:1024"`
	Category      string         `json:"category" yaml:"category" gorm:"size:100;index"`
	Brand         string         `json:"brand" yaml:"brand" gorm:"size:100;index"`
	Description   string         `json:"description" yaml:"description" gorm:"type:text"`
	Features      pq.StringArray `json:"features" yaml:"features" gorm:"type:text[]"`
	InStock       bool           `json:"inStock" yaml:"inStock" gorm:"default:true"`

	// Position keeps the seed order, which is the "relevance" order.
	Position int `json:"-" yaml:"-" gorm:"not null;index"`
	Timestamps
}

type Category struct {
	ID            string         `json:"id" yaml:"id" gorm:"primaryKey;size:64"`
	Name          string         `json:"name" yaml:"name" gorm:"size:100;not null;uniqueIndex"`
	Icon          string         `json:"icon" yaml:"icon" gorm:"size:64"`
	Subcategories pq.StringArray `json:"subcategories,omitempty" yaml:"subcategories,omitempty" gorm:"type:text[]"`

	Position int `json:"-" yaml:"-" gorm:"not null;index"`
	Timestamps
}
