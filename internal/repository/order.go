package repository

import (
	"errors"

	"gorm.io/gorm" // GORM ORM library

	"virtualshop/internal/domain"
)

// OrderRepository wraps order queries over the relational store.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository backed by db.
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists the order together with its items and payment in one
// transaction. GORM inserts the owned associations with the parent row, so a
// failure anywhere rolls back the whole graph.
func (r *OrderRepository) Create(order *domain.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// FindByID loads an order with its items, payment and customer.
func (r *OrderRepository) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.Preload("Items").Preload("Payment").Preload("Customer").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByCustomerEmail returns one page of orders belonging to the customer
// with the given email, optionally filtered by exact status, plus the total
// match count. Results are ordered by id for stable pagination.
func (r *OrderRepository) FindByCustomerEmail(email, status string, page, pageSize int) ([]domain.Order, int64, error) {
	query := r.db.Model(&domain.Order{}).
		Joins("JOIN users ON users.id = orders.customer_id").
		Where("users.email = ?", email)
	if status != "" {
		query = query.Where("orders.status = ?", status)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []domain.Order
	offset := (page - 1) * pageSize
	if err := query.Preload("Items").Preload("Payment").
		Order("orders.id asc").Offset(offset).Limit(pageSize).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
