package domain

import "time"

// User roles. Role is set at construction time and never changes afterwards.
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
	RoleEmployee = "EMPLOYEE"
)

// User Model. All roles share one table; the role-specific payload lives in
// nullable columns (Discount for customers, EmployeeID for admins,
// CommissionRate for employees).
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`                // Primary key
	Email          string    `gorm:"unique;not null" json:"email"`        // Unique email, identifies the user
	Password       string    `gorm:"not null" json:"-"`                   // Bcrypt hash, never serialized
	FirstName      string    `gorm:"not null" json:"first_name"`          // First name
	LastName       string    `gorm:"not null" json:"last_name"`           // Last name
	Phone          string    `gorm:"not null" json:"phone"`               // Phone number
	Address        string    `gorm:"not null" json:"address"`             // Postal address
	Role           string    `gorm:"not null" json:"role"`                // ADMIN, CUSTOMER or EMPLOYEE
	Active         bool      `gorm:"not null;default:true" json:"active"` // Soft-delete flag
	Discount       *int      `json:"discount,omitempty"`                  // Customer discount percentage
	EmployeeID     *string   `json:"employee_id,omitempty"`               // Admin employee identifier
	CommissionRate *int      `json:"commission_rate,omitempty"`           // Employee commission rate
	Orders         []Order   `gorm:"foreignKey:CustomerID" json:"-"`      // Orders placed as customer
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`    // Timestamp of creation
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`    // Timestamp of last update
}

// FullName returns the display name of the user.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
