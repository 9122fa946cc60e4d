package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client

	"virtualshop/internal/dto"
	"virtualshop/internal/service"
	"virtualshop/internal/utils"
)

const userCachePrefix = "admin:users:"

// ListUsersHandler returns one page of users. Admin-gated.
func ListUsersHandler(users *service.UserService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		page, pageSize := parsePagination(c)
		cacheKey := userCachePrefix + "page=" + c.DefaultQuery("page", "1") + ":size=" + c.DefaultQuery("page_size", "20")
		var cached struct {
			Users      []dto.UserResponse `json:"users"`       // One page of users
			Page       int                `json:"page"`        // Current page
			PageSize   int                `json:"page_size"`   // Page size
			Total      int64              `json:"total"`       // Total number of users
			TotalPages int                `json:"total_pages"` // Total pages
		}
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"users":       cached.Users,
				"page":        cached.Page,
				"page_size":   cached.PageSize,
				"total":       cached.Total,
				"total_pages": cached.TotalPages,
				"cached":      true,
			})
			return
		}
		resp, total, err := users.List(page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}
		respData := gin.H{
			"users":       resp,
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

// GetUserHandler returns one user by id. Admin-gated.
func GetUserHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		user, err := users.Get(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// ProfileHandler returns the authenticated user's profile.
func ProfileHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := callerEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, err := users.Profile(email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateProfileHandler overwrites the caller's profile fields. Every field
// must be supplied.
func UpdateProfileHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := callerEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req dto.UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := users.UpdateProfile(email, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DeactivateUserHandler soft-deletes a non-admin user. Admin-gated.
func DeactivateUserHandler(users *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		if err := users.Deactivate(id); err != nil {
			respondError(c, err)
			return
		}
		_ = utils.DeleteCacheByPrefix(context.Background(), rdb, userCachePrefix)
		c.Status(http.StatusNoContent)
	}
}
