package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"virtualshop/internal/domain"
	"virtualshop/internal/dto"
	"virtualshop/internal/service"
)

// CreateOrderHandler places an order for the authenticated customer.
func CreateOrderHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := callerEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req dto.OrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		order, err := orders.CreateOrder(email, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// OrderHistoryHandler returns the caller's orders, optionally filtered by
// exact status.
func OrderHistoryHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := callerEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		status := c.Query("status")
		if status != "" && !domain.ValidOrderStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		page, pageSize := parsePagination(c)
		resp, total, err := orders.OrdersByCustomerAndStatus(email, status, page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"orders":      resp,
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": totalPages(total, pageSize),
		})
	}
}

// GetOrderHandler returns one order, only to the customer who placed it.
func GetOrderHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := callerEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		order, err := orders.OrderByIDForUser(id, email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GetOrderAdminHandler returns any order without an ownership check.
// Admin-gated at the router.
func GetOrderAdminHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		order, err := orders.OrderByID(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
