package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product categories.
const (
	CategoryElectronics = "ELECTRONICS"
	CategoryBooks       = "BOOKS"
	CategoryClothing    = "CLOTHING"
	CategoryHome        = "HOME"
	CategorySports      = "SPORTS"
	CategoryToys        = "TOYS"
)

// ValidCategory reports whether c is one of the known product categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryElectronics, CategoryBooks, CategoryClothing, CategoryHome, CategorySports, CategoryToys:
		return true
	}
	return false
}

// Product Model
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`                 // Primary key
	Name        string          `gorm:"not null" json:"name"`                 // Product name
	Description string          `json:"description"`                          // Free-text description
	Category    string          `gorm:"not null;index" json:"category"`       // Product category
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`      // Unit price, positive and bounded
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`     // Timestamp of creation
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`     // Timestamp of last update
}
