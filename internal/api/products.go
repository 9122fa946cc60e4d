package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strings"  // String manipulation
	"time"     // Time durations

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Decimal arithmetic for prices

	"virtualshop/internal/dto"
	"virtualshop/internal/repository"
	"virtualshop/internal/service"
	"virtualshop/internal/utils"
)

// Prefix shared by every cached catalog page, so one prefix delete drops
// them all when the catalog changes.
const productCachePrefix = "products:"

// productPage is the cached JSON shape of the paginated catalog responses.
type productPage struct {
	Products   []dto.ProductResponse `json:"products"`    // One page of products
	Page       int                   `json:"page"`        // Current page
	PageSize   int                   `json:"page_size"`   // Page size
	Total      int64                 `json:"total"`       // Total number of matches
	TotalPages int                   `json:"total_pages"` // Total pages
}

// ListProductsHandler returns the catalog one page at a time, served from
// the Redis read-through cache when possible.
func ListProductsHandler(products *service.ProductService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		page, pageSize := parsePagination(c)
		cacheKey := productCachePrefix + "list:page=" + c.DefaultQuery("page", "1") + ":size=" + c.DefaultQuery("page_size", "20")
		var cached productPage
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"products":    cached.Products,
				"page":        cached.Page,
				"page_size":   cached.PageSize,
				"total":       cached.Total,
				"total_pages": cached.TotalPages,
				"cached":      true,
			})
			return
		}
		resp, total, err := products.List(page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}
		respData := gin.H{
			"products":    resp,
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": totalPages(total, pageSize),
			"cached":      false,
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, respData, ttl)
		c.JSON(http.StatusOK, respData)
	}
}

// GetProductHandler returns one product by id.
func GetProductHandler(products *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		product, err := products.Get(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// SearchProductsHandler filters the catalog by optional name substring,
// category and inclusive price bounds, sorted ascending by price.
func SearchProductsHandler(products *service.ProductService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		page, pageSize := parsePagination(c)

		// Build cache key from all query params
		var keyParts []string
		for _, k := range []string{"name", "category", "minPrice", "maxPrice", "page", "page_size"} {
			keyParts = append(keyParts, k+"="+c.DefaultQuery(k, ""))
		}
		cacheKey := productCachePrefix + "search:" + strings.Join(keyParts, ":")
		var cached productPage
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"products":    cached.Products,
				"page":        cached.Page,
				"page_size":   cached.PageSize,
				"total":       cached.Total,
				"total_pages": cached.TotalPages,
				"cached":      true,
			})
			return
		}

		filter := repository.ProductFilter{
			Name:     c.Query("name"),
			Category: c.Query("category"),
		}
		if raw := c.Query("minPrice"); raw != "" {
			v, err := decimal.NewFromString(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
				return
			}
			filter.MinPrice = &v
		}
		if raw := c.Query("maxPrice"); raw != "" {
			v, err := decimal.NewFromString(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
				return
			}
			filter.MaxPrice = &v
		}

		resp, total, err := products.Search(filter, page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}
		respData := gin.H{
			"products":    resp,
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": totalPages(total, pageSize),
			"cached":      false,
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, respData, ttl)
		c.JSON(http.StatusOK, respData)
	}
}

// BestSellersHandler ranks products by total quantity sold, descending.
func BestSellersHandler(products *service.ProductService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		page, pageSize := parsePagination(c)
		cacheKey := productCachePrefix + "bestsellers:page=" + c.DefaultQuery("page", "1") + ":size=" + c.DefaultQuery("page_size", "20")
		var cached productPage
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"products":    cached.Products,
				"page":        cached.Page,
				"page_size":   cached.PageSize,
				"total":       cached.Total,
				"total_pages": cached.TotalPages,
				"cached":      true,
			})
			return
		}
		resp, total, err := products.BestSellers(page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}
		respData := gin.H{
			"products":    resp,
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": totalPages(total, pageSize),
			"cached":      false,
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, respData, ttl)
		c.JSON(http.StatusOK, respData)
	}
}

// CreateProductHandler adds a product to the catalog. Admin-gated.
func CreateProductHandler(products *service.ProductService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		product, err := products.Create(req)
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.DeleteCacheByPrefix(context.Background(), rdb, productCachePrefix)
		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProductHandler overwrites a product's non-identity fields. Admin-gated.
func UpdateProductHandler(products *service.ProductService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		var req dto.ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		product, err := products.Update(id, req)
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.DeleteCacheByPrefix(context.Background(), rdb, productCachePrefix)
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProductHandler removes a product from the catalog. Admin-gated.
func DeleteProductHandler(products *service.ProductService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		if err := products.Delete(id); err != nil {
			respondError(c, err)
			return
		}
		_ = utils.DeleteCacheByPrefix(context.Background(), rdb, productCachePrefix)
		c.Status(http.StatusNoContent)
	}
}
