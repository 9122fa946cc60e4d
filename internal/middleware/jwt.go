package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library

	"virtualshop/internal/domain"
	"virtualshop/internal/utils" // JWT utility functions
)

// Context keys set by the auth middleware.
const (
	ContextEmail = "email"
	ContextRole  = "role"
)

// JWTAuthMiddleware validates bearer tokens and stores the authenticated
// email and role claim in the request context. A token identifies exactly the
// user it was issued to: the subject is taken as the caller's email. The
// account row is re-read on each request so a deactivated user cannot keep
// acting on a token issued before the deactivation.
func JWTAuthMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		var user domain.User
		if err := db.Where("email = ?", claims.Subject).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if !user.Active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account is deactivated"})
			return
		}
		c.Set(ContextEmail, claims.Subject)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}
