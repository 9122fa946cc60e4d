package service

import (
	"virtualshop/internal/domain"
	"virtualshop/internal/repository"
)

// Services depend on these narrow store interfaces. The gorm repositories in
// internal/repository satisfy them; tests substitute in-memory fakes.

// UserStore is the persistence surface for users.
type UserStore interface {
	Create(user *domain.User) error
	Save(user *domain.User) error
	FindByEmail(email string) (*domain.User, error)
	FindByID(id uint) (*domain.User, error)
	ExistsByEmail(email string) (bool, error)
	List(page, pageSize int) ([]domain.User, int64, error)
}

// ProductStore is the persistence surface for products.
type ProductStore interface {
	Create(product *domain.Product) error
	Save(product *domain.Product) error
	FindByID(id uint) (*domain.Product, error)
	Delete(id uint) error
	List(page, pageSize int) ([]domain.Product, int64, error)
	Search(filter repository.ProductFilter, page, pageSize int) ([]domain.Product, int64, error)
	BestSellers(page, pageSize int) ([]domain.Product, int64, error)
}

// OrderStore is the persistence surface for orders.
type OrderStore interface {
	Create(order *domain.Order) error
	FindByID(id uint) (*domain.Order, error)
	FindByCustomerEmail(email, status string, page, pageSize int) ([]domain.Order, int64, error)
}
