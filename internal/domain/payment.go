package domain

import "time"

// Payment methods.
const (
	PaymentCreditCard   = "CREDIT_CARD"
	PaymentBankTransfer = "BANK_TRANSFER"
)

// Payment statuses.
const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
)

// Payment Model
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`              // Primary key
	OrderID       uint      `gorm:"uniqueIndex" json:"order_id"`       // Foreign key to the owning order
	Method        string    `gorm:"not null" json:"method"`            // CREDIT_CARD or BANK_TRANSFER
	Status        string    `gorm:"not null" json:"status"`            // Derived from the method at creation
	TransactionID string    `gorm:"not null" json:"transaction_id"`    // External transaction reference, non-empty
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`  // Timestamp of creation
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`  // Timestamp of last update
}

// DerivePaymentStatus resolves the payment status for a method and
// transaction id. It is pure: the same inputs always yield the same result.
// Credit card payments settle immediately, bank transfers stay pending until
// reconciled out of band.
func DerivePaymentStatus(method, transactionID string) (string, error) {
	if transactionID == "" {
		return "", ErrMissingTransactionID
	}
	switch method {
	case PaymentCreditCard:
		return PaymentCompleted, nil
	case PaymentBankTransfer:
		return PaymentPending, nil
	default:
		return "", ErrUnsupportedPaymentMethod
	}
}
