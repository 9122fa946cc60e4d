package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserResponse is the public representation of a user.
type UserResponse struct {
	ID        uint      `json:"id"`         // User ID
	Email     string    `json:"email"`      // Email
	FirstName string    `json:"first_name"` // First name
	LastName  string    `json:"last_name"`  // Last name
	Phone     string    `json:"phone"`      // Phone number
	Address   string    `json:"address"`    // Postal address
	Role      string    `json:"role"`       // User role
	Active    bool      `json:"active"`     // Soft-delete flag
	CreatedAt time.Time `json:"created_at"` // Timestamp of creation
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of last update
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Email string `json:"email"` // Authenticated email
	Role  string `json:"role"`  // Role claim carried by the token
	Token string `json:"token"` // Signed JWT
}

// ProductResponse is the public representation of a product.
type ProductResponse struct {
	ID          uint            `json:"id"`          // Product ID
	Name        string          `json:"name"`        // Product name
	Description string          `json:"description"` // Free-text description
	Category    string          `json:"category"`    // Product category
	Price       decimal.Decimal `json:"price"`       // Unit price
	CreatedAt   time.Time       `json:"created_at"`  // Timestamp of creation
	UpdatedAt   time.Time       `json:"updated_at"`  // Timestamp of last update
}

// OrderItemResponse is one product line within an order response.
type OrderItemResponse struct {
	ID        uint            `json:"id"`         // Item ID
	ProductID uint            `json:"product_id"` // Ordered product
	Quantity  int             `json:"quantity"`   // Ordered quantity
	Subtotal  decimal.Decimal `json:"subtotal"`   // price * quantity
}

// PaymentResponse is the public representation of a payment.
type PaymentResponse struct {
	ID            uint   `json:"id"`             // Payment ID
	Method        string `json:"method"`         // Payment method
	Status        string `json:"status"`         // Payment status
	TransactionID string `json:"transaction_id"` // External transaction reference
}

// OrderResponse is the public representation of an order.
type OrderResponse struct {
	ID              uint                `json:"id"`               // Order ID
	Items           []OrderItemResponse `json:"items"`            // Order line items
	Payment         PaymentResponse     `json:"payment"`          // Payment details
	TotalAmount     decimal.Decimal     `json:"total_amount"`     // Sum of item subtotals
	ShippingAddress string              `json:"shipping_address"` // Delivery address
	Status          string              `json:"status"`           // Order status
	CreatedAt       time.Time           `json:"created_at"`       // Timestamp of creation
	UpdatedAt       time.Time           `json:"updated_at"`       // Timestamp of last update
}
