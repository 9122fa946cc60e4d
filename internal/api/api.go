package api

import (
	"errors"
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/gin-gonic/gin" // Gin web framework

	"virtualshop/internal/domain"
	"virtualshop/internal/middleware"
)

// parsePagination reads page and page_size from the query string, with
// defaults of 1 and 20 and a page size cap of 100.
func parsePagination(c *gin.Context) (int, int) {
	page := 1      // Default page number
	pageSize := 20 // Default page size
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}
	return page, pageSize
}

// totalPages computes the number of pages covering total rows.
func totalPages(total int64, pageSize int) int {
	return (int(total) + pageSize - 1) / pageSize
}

// callerEmail returns the authenticated email placed in the context by the
// JWT middleware.
func callerEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(middleware.ContextEmail)
	if !exists {
		return "", false
	}
	s, ok := email.(string)
	return s, ok
}

// respondError maps the business error taxonomy onto HTTP statuses:
// validation 400, credentials 401, authorization 403, not-found 404,
// duplicates 409. Anything unrecognized is a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnsupportedPaymentMethod),
		errors.Is(err, domain.ErrMissingTransactionID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}
