package repository

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal" // Decimal arithmetic for prices
	"gorm.io/gorm"                  // GORM ORM library

	"virtualshop/internal/domain"
)

// ProductFilter holds the optional, independent search filters. Nil/empty
// fields leave the corresponding predicate out of the query.
type ProductFilter struct {
	Name     string           // Case-insensitive substring match
	Category string           // Exact category match
	MinPrice *decimal.Decimal // Inclusive lower price bound
	MaxPrice *decimal.Decimal // Inclusive upper price bound
}

// ProductRepository wraps product queries over the relational store.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository backed by db.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product row.
func (r *ProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

// Save persists changes to an existing product.
func (r *ProductRepository) Save(product *domain.Product) error {
	return r.db.Save(product).Error
}

// FindByID looks a product up by primary key.
func (r *ProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Delete removes a product row. Missing rows surface as ErrProductNotFound.
func (r *ProductRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// List returns one page of products plus the total row count.
func (r *ProductRepository) List(page, pageSize int) ([]domain.Product, int64, error) {
	var total int64
	if err := r.db.Model(&domain.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var products []domain.Product
	offset := (page - 1) * pageSize
	if err := r.db.Order("id asc").Offset(offset).Limit(pageSize).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Search returns one page of products matching the filter, sorted ascending
// by price, plus the total match count.
func (r *ProductRepository) Search(filter ProductFilter, page, pageSize int) ([]domain.Product, int64, error) {
	query := r.db.Model(&domain.Product{})
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var products []domain.Product
	offset := (page - 1) * pageSize
	if err := query.Order("price asc").Offset(offset).Limit(pageSize).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// BestSellers returns products ranked by total quantity sold, descending.
// The inner join naturally excludes products with no sales.
func (r *ProductRepository) BestSellers(page, pageSize int) ([]domain.Product, int64, error) {
	base := r.db.Model(&domain.Product{}).
		Joins("JOIN order_items ON order_items.product_id = products.id")
	var total int64
	if err := base.Distinct("products.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var products []domain.Product
	offset := (page - 1) * pageSize
	if err := r.db.Model(&domain.Product{}).
		Select("products.*").
		Joins("JOIN order_items ON order_items.product_id = products.id").
		Group("products.id").
		Order("SUM(order_items.quantity) DESC").
		Offset(offset).Limit(pageSize).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
