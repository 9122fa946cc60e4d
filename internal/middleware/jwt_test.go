package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"virtualshop/internal/domain"
	"virtualshop/internal/utils"
)

const testSecret = "test-secret"

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string, active bool) {
	t.Helper()
	u := domain.User{
		Email:     email,
		Password:  "hash",
		FirstName: "Test",
		LastName:  "User",
		Phone:     "555-0100",
		Address:   "1 Main St",
		Role:      role,
		Active:    active,
	}
	require.NoError(t, db.Create(&u).Error)
}

func authRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/me", JWTAuthMiddleware(db, testSecret), ok)
	r.GET("/admin", JWTAuthMiddleware(db, testSecret), AdminOnlyMiddleware(db), ok)
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddlewareAcceptsActiveUser(t *testing.T) {
	db := openTestDB(t)
	r := authRouter(db)
	seedUser(t, db, "alice@example.com", domain.RoleCustomer, true)

	token, err := utils.GenerateJWT("alice@example.com", domain.RoleCustomer, testSecret, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(r, "/me", token).Code)
}

func TestJWTAuthMiddlewareRejectsDeactivatedUser(t *testing.T) {
	db := openTestDB(t)
	r := authRouter(db)
	seedUser(t, db, "alice@example.com", domain.RoleCustomer, true)

	token, err := utils.GenerateJWT("alice@example.com", domain.RoleCustomer, testSecret, time.Hour)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, doRequest(r, "/me", token).Code)

	// Deactivation after login must invalidate the still-unexpired token.
	require.NoError(t, db.Model(&domain.User{}).Where("email = ?", "alice@example.com").Update("active", false).Error)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/me", token).Code)
}

func TestJWTAuthMiddlewareRejectsUnknownSubjectAndMissingToken(t *testing.T) {
	db := openTestDB(t)
	r := authRouter(db)

	token, err := utils.GenerateJWT("ghost@example.com", domain.RoleCustomer, testSecret, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/me", token).Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/me", "").Code)
}

func TestAdminOnlyMiddlewareGatesByStoredRole(t *testing.T) {
	db := openTestDB(t)
	r := authRouter(db)
	seedUser(t, db, "root@example.com", domain.RoleAdmin, true)
	seedUser(t, db, "alice@example.com", domain.RoleCustomer, true)

	adminToken, err := utils.GenerateJWT("root@example.com", domain.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)
	customerToken, err := utils.GenerateJWT("alice@example.com", domain.RoleCustomer, testSecret, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(r, "/admin", adminToken).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, "/admin", customerToken).Code)

	// A deactivated admin is cut off before the role gate.
	require.NoError(t, db.Model(&domain.User{}).Where("email = ?", "root@example.com").Update("active", false).Error)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/admin", adminToken).Code)
}
