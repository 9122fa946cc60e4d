package service

import (
	"time"

	"github.com/google/uuid"     // Generated employee identifiers
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing

	"virtualshop/internal/domain"
	"virtualshop/internal/dto"
	"virtualshop/internal/utils"
)

// AuthService handles registration, login and token issuance.
type AuthService struct {
	users     UserStore
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates an auth service issuing tokens signed with jwtSecret
// that expire after tokenTTL.
func NewAuthService(users UserStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a new active customer with a hashed password. Registering
// an email twice fails with ErrDuplicateEmail.
func (s *AuthService) Register(req dto.RegisterRequest) (dto.UserResponse, error) {
	return s.register(req, domain.RoleCustomer, nil)
}

// RegisterAdmin creates a new admin with a generated unique employee
// identifier. The duplicate-email check is the same as for customers.
func (s *AuthService) RegisterAdmin(req dto.RegisterRequest) (dto.UserResponse, error) {
	employeeID := uuid.NewString()
	return s.register(req, domain.RoleAdmin, &employeeID)
}

func (s *AuthService) register(req dto.RegisterRequest, role string, employeeID *string) (dto.UserResponse, error) {
	exists, err := s.users.ExistsByEmail(req.Email)
	if err != nil {
		return dto.UserResponse{}, err
	}
	if exists {
		return dto.UserResponse{}, domain.ErrDuplicateEmail
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResponse{}, err
	}
	user := domain.User{
		Email:      req.Email,
		Password:   string(hash),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Address:    req.Address,
		Role:       role,
		Active:     true,
		EmployeeID: employeeID,
	}
	if err := s.users.Create(&user); err != nil {
		return dto.UserResponse{}, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	}).Info("User registered")
	return dto.ToUserResponse(&user), nil
}

// Login authenticates the credentials against the stored hash and issues a
// signed token with subject=email and a role claim. Unknown emails, password
// mismatches and deactivated accounts all fail with ErrInvalidCredentials.
func (s *AuthService) Login(req dto.LoginRequest) (dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return dto.AuthResponse{}, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return dto.AuthResponse{}, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return dto.AuthResponse{}, domain.ErrInvalidCredentials
	}
	token, err := utils.GenerateJWT(user.Email, user.Role, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	return dto.AuthResponse{Email: user.Email, Role: user.Role, Token: token}, nil
}
