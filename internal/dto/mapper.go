package dto

import "virtualshop/internal/domain"

// ToUserResponse converts a user entity to its public representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Address:   u.Address,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToProductResponse converts a product entity to its public representation.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of product entities.
func ToProductResponses(products []domain.Product) []ProductResponse {
	resp := make([]ProductResponse, len(products))
	for i := range products {
		resp[i] = ToProductResponse(&products[i])
	}
	return resp
}

// ToOrderResponse converts an order entity, including its items and payment.
func ToOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		}
	}
	return OrderResponse{
		ID:    o.ID,
		Items: items,
		Payment: PaymentResponse{
			ID:            o.Payment.ID,
			Method:        o.Payment.Method,
			Status:        o.Payment.Status,
			TransactionID: o.Payment.TransactionID,
		},
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of order entities.
func ToOrderResponses(orders []domain.Order) []OrderResponse {
	resp := make([]OrderResponse, len(orders))
	for i := range orders {
		resp[i] = ToOrderResponse(&orders[i])
	}
	return resp
}
