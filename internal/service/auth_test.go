package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"virtualshop/internal/domain"
	"virtualshop/internal/dto"
	"virtualshop/internal/utils"
)

const testSecret = "test-secret"

func registerRequest(email string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:     email,
		Password:  "password1",
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "+12025550101",
		Address:   "123 Main St",
	}
}

func TestRegisterCreatesActiveCustomer(t *testing.T) {
	users := newFakeUserStore()
	auth := NewAuthService(users, testSecret, time.Hour)

	resp, err := auth.Register(registerRequest("jane@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", resp.Email)
	assert.Equal(t, domain.RoleCustomer, resp.Role)
	assert.True(t, resp.Active)

	stored, err := users.FindByEmail("jane@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password1")))
}

func TestRegisterDuplicateEmailFails(t *testing.T) {
	users := newFakeUserStore()
	auth := NewAuthService(users, testSecret, time.Hour)

	_, err := auth.Register(registerRequest("dup@example.com"))
	require.NoError(t, err)

	_, err = auth.Register(registerRequest("dup@example.com"))
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)

	_, total, err := users.List(1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestRegisterAdminGetsEmployeeID(t *testing.T) {
	users := newFakeUserStore()
	auth := NewAuthService(users, testSecret, time.Hour)

	resp, err := auth.RegisterAdmin(registerRequest("admin@example.com"))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, resp.Role)

	stored, err := users.FindByEmail("admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.EmployeeID)
	assert.NotEmpty(t, *stored.EmployeeID)
}

func TestLoginIssuesTokenForEmailAndRole(t *testing.T) {
	users := newFakeUserStore()
	auth := NewAuthService(users, testSecret, time.Hour)
	_, err := auth.Register(registerRequest("jane@example.com"))
	require.NoError(t, err)

	resp, err := auth.Login(dto.LoginRequest{Email: "jane@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.Equal(t, domain.RoleCustomer, resp.Role)

	claims, err := utils.ParseJWT(resp.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Subject)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	users := newFakeUserStore()
	auth := NewAuthService(users, testSecret, time.Hour)
	_, err := auth.Register(registerRequest("jane@example.com"))
	require.NoError(t, err)

	_, err = auth.Login(dto.LoginRequest{Email: "jane@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = auth.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "password1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginRejectsDeactivatedUser(t *testing.T) {
	users := newFakeUserStore()
	auth := NewAuthService(users, testSecret, time.Hour)
	resp, err := auth.Register(registerRequest("gone@example.com"))
	require.NoError(t, err)

	userSvc := NewUserService(users)
	require.NoError(t, userSvc.Deactivate(resp.ID))

	_, err = auth.Login(dto.LoginRequest{Email: "gone@example.com", Password: "password1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
