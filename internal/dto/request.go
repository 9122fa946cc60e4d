package dto

import "github.com/shopspring/decimal"

// RegisterRequest carries the fields needed to register a user.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`           // Email must be valid and unique
	Password  string `json:"password" binding:"required,min=6,max=20"` // Plain password, hashed before storage
	FirstName string `json:"first_name" binding:"required,max=50"`     // First name
	LastName  string `json:"last_name" binding:"required,max=50"`      // Last name
	Phone     string `json:"phone" binding:"required,max=15"`          // Phone number
	Address   string `json:"address" binding:"required,max=100"`       // Postal address
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // Registered email
	Password string `json:"password" binding:"required"`    // Plain password
}

// UpdateProfileRequest overwrites the mutable profile fields. Every field is
// required: there are no optional-field semantics on profile updates.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required,max=50"` // New first name
	LastName  string `json:"last_name" binding:"required,max=50"`  // New last name
	Phone     string `json:"phone" binding:"required,max=15"`      // New phone number
	Address   string `json:"address" binding:"required,max=100"`   // New postal address
}

// ProductRequest carries the fields for creating or updating a product.
// Category and price bounds are checked in the service layer.
type ProductRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`   // Product name
	Description string          `json:"description" binding:"max=500"`     // Free-text description
	Category    string          `json:"category" binding:"required"`       // Product category
	Price       decimal.Decimal `json:"price"`                             // Unit price, 0.01 .. 1000000.00
}

// OrderItemRequest is one requested product line.
type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`  // Product to order
	Quantity  int  `json:"quantity" binding:"required,gt=0"` // Positive quantity
}

// OrderRequest carries the fields needed to place an order. TransactionID is
// validated by the payment derivation rule, not by request binding.
type OrderRequest struct {
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"` // At least one item
	PaymentMethod   string             `json:"payment_method" binding:"required"`   // CREDIT_CARD or BANK_TRANSFER
	ShippingAddress string             `json:"shipping_address" binding:"max=100"`  // Optional, defaults to the customer's address
	TransactionID   string             `json:"transaction_id"`                      // External transaction reference
}
