package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Only PENDING and PAID are produced at creation time;
// the remaining states are set by external fulfilment flows.
const (
	OrderPending   = "PENDING"
	OrderPaid      = "PAID"
	OrderCancelled = "CANCELLED"
	OrderShipped   = "SHIPPED"
	OrderDelivered = "DELIVERED"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderPaid, OrderCancelled, OrderShipped, OrderDelivered:
		return true
	}
	return false
}

// Order Model. Items and Payment are cascade-owned: they are created and
// deleted together with the order.
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`                                             // Primary key
	CustomerID      uint            `gorm:"not null;index" json:"customer_id"`                                // Foreign key to the owning customer
	Customer        User            `gorm:"foreignKey:CustomerID" json:"-"`                                   // Owning customer
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`      // Order line items
	Payment         Payment         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payment"`    // One-to-one payment
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`                           // Sum of item subtotals
	ShippingAddress string          `gorm:"not null" json:"shipping_address"`                                 // Delivery address
	Status          string          `gorm:"not null;default:PENDING;index" json:"status"`                     // Order status
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`                                 // Timestamp of creation
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`                                 // Timestamp of last update
}

// OrderItem Model
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`               // Primary key
	OrderID   uint            `gorm:"not null;index" json:"order_id"`     // Foreign key to the owning order
	ProductID uint            `gorm:"not null" json:"product_id"`         // Foreign key to the product
	Product   Product         `gorm:"foreignKey:ProductID" json:"-"`      // Referenced product
	Quantity  int             `gorm:"not null" json:"quantity"`           // Positive quantity
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"` // product.Price * Quantity, computed at save time
}
