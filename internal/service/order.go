package service

import (
	"github.com/shopspring/decimal" // Decimal arithmetic for money
	"github.com/sirupsen/logrus"    // Logging library

	"virtualshop/internal/domain"
	"virtualshop/internal/dto"
)

// OrderService handles order placement and retrieval.
type OrderService struct {
	orders   OrderStore
	users    UserStore
	products ProductStore
}

// NewOrderService creates an order service over the given stores.
func NewOrderService(orders OrderStore, users UserStore, products ProductStore) *OrderService {
	return &OrderService{orders: orders, users: users, products: products}
}

// CreateOrder places an order for the customer identified by email. Each
// item subtotal is product price times quantity; the total is the sum over
// all items. The payment status is derived from the method before anything
// is written, so a derivation failure persists nothing, and the order plus
// its items and payment commit as one unit.
func (s *OrderService) CreateOrder(customerEmail string, req dto.OrderRequest) (dto.OrderResponse, error) {
	customer, err := s.users.FindByEmail(customerEmail)
	if err != nil {
		return dto.OrderResponse{}, err
	}

	paymentStatus, err := domain.DerivePaymentStatus(req.PaymentMethod, req.TransactionID)
	if err != nil {
		return dto.OrderResponse{}, err
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	total := decimal.Zero
	for _, item := range req.Items {
		product, err := s.products.FindByID(item.ProductID)
		if err != nil {
			return dto.OrderResponse{}, err
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	// The customer's stored address stands in when the request omits one.
	shippingAddress := req.ShippingAddress
	if shippingAddress == "" {
		shippingAddress = customer.Address
	}

	orderStatus := domain.OrderPending
	if paymentStatus == domain.PaymentCompleted {
		orderStatus = domain.OrderPaid
	}

	order := domain.Order{
		CustomerID:      customer.ID,
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: shippingAddress,
		Status:          orderStatus,
		Payment: domain.Payment{
			Method:        req.PaymentMethod,
			Status:        paymentStatus,
			TransactionID: req.TransactionID,
		},
	}
	if err := s.orders.Create(&order); err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customer.ID,
			"total":       total.String(),
			"error":       err.Error(),
		}).Error("Order creation failed")
		return dto.OrderResponse{}, err
	}
	logrus.WithFields(logrus.Fields{
		"order_id":    order.ID,
		"customer_id": customer.ID,
		"total":       total.String(),
		"status":      order.Status,
	}).Info("Order created")
	return dto.ToOrderResponse(&order), nil
}

// OrdersByCustomerAndStatus returns the customer's orders, filtered by exact
// status when one is given, with the total match count for pagination.
func (s *OrderService) OrdersByCustomerAndStatus(email, status string, page, pageSize int) ([]dto.OrderResponse, int64, error) {
	orders, total, err := s.orders.FindByCustomerEmail(email, status, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToOrderResponses(orders), total, nil
}

// OrderByIDForUser returns one order, refusing callers who do not own it.
func (s *OrderService) OrderByIDForUser(orderID uint, email string) (dto.OrderResponse, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return dto.OrderResponse{}, err
	}
	if order.Customer.Email != email {
		return dto.OrderResponse{}, domain.ErrNotAuthorized
	}
	return dto.ToOrderResponse(order), nil
}

// OrderByID returns one order without an ownership check. Admin path.
func (s *OrderService) OrderByID(orderID uint) (dto.OrderResponse, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return dto.OrderResponse{}, err
	}
	return dto.ToOrderResponse(order), nil
}
