package service

import (
	"fmt"

	"github.com/shopspring/decimal" // Decimal arithmetic for prices
	"github.com/sirupsen/logrus"    // Logging library

	"virtualshop/internal/domain"
	"virtualshop/internal/dto"
	"virtualshop/internal/repository"
)

// Price bounds enforced on product creation and update.
var (
	minProductPrice = decimal.RequireFromString("0.01")
	maxProductPrice = decimal.RequireFromString("1000000.00")
)

// ProductService handles catalog management and search.
type ProductService struct {
	products ProductStore
}

// NewProductService creates a product service over the given store.
func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

func validateProduct(req dto.ProductRequest) error {
	if !domain.ValidCategory(req.Category) {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, req.Category)
	}
	if req.Price.LessThan(minProductPrice) || req.Price.GreaterThan(maxProductPrice) {
		return fmt.Errorf("%w: price must be between %s and %s", domain.ErrValidation, minProductPrice, maxProductPrice)
	}
	return nil
}

// Create adds a product to the catalog.
func (s *ProductService) Create(req dto.ProductRequest) (dto.ProductResponse, error) {
	if err := validateProduct(req); err != nil {
		return dto.ProductResponse{}, err
	}
	product := domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
	}
	if err := s.products.Create(&product); err != nil {
		return dto.ProductResponse{}, err
	}
	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"name":       product.Name,
		"category":   product.Category,
	}).Info("Product created")
	return dto.ToProductResponse(&product), nil
}

// Update applies the non-identity fields onto an existing product. The id and
// timestamps stay server-managed.
func (s *ProductService) Update(id uint, req dto.ProductRequest) (dto.ProductResponse, error) {
	if err := validateProduct(req); err != nil {
		return dto.ProductResponse{}, err
	}
	product, err := s.products.FindByID(id)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	product.Name = req.Name
	product.Description = req.Description
	product.Category = req.Category
	product.Price = req.Price
	if err := s.products.Save(product); err != nil {
		return dto.ProductResponse{}, err
	}
	return dto.ToProductResponse(product), nil
}

// Delete removes a product from the catalog. Unknown ids fail with
// ErrProductNotFound.
func (s *ProductService) Delete(id uint) error {
	if err := s.products.Delete(id); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"product_id": id}).Info("Product deleted")
	return nil
}

// Get returns one product by id.
func (s *ProductService) Get(id uint) (dto.ProductResponse, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	return dto.ToProductResponse(product), nil
}

// List returns one page of the catalog.
func (s *ProductService) List(page, pageSize int) ([]dto.ProductResponse, int64, error) {
	products, total, err := s.products.List(page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToProductResponses(products), total, nil
}

// Search applies the optional, independent filters and returns matches
// sorted ascending by price.
func (s *ProductService) Search(filter repository.ProductFilter, page, pageSize int) ([]dto.ProductResponse, int64, error) {
	products, total, err := s.products.Search(filter, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToProductResponses(products), total, nil
}

// BestSellers returns products ranked by total quantity sold, descending.
func (s *ProductService) BestSellers(page, pageSize int) ([]dto.ProductResponse, int64, error) {
	products, total, err := s.products.BestSellers(page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToProductResponses(products), total, nil
}
