package service

import (
	"github.com/sirupsen/logrus" // Logging library

	"virtualshop/internal/domain"
	"virtualshop/internal/dto"
)

// UserService handles profile reads and writes plus the admin user paths.
type UserService struct {
	users UserStore
}

// NewUserService creates a user service over the given store.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Profile returns the profile of the user identified by email.
func (s *UserService) Profile(email string) (dto.UserResponse, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.ToUserResponse(user), nil
}

// UpdateProfile unconditionally overwrites the mutable profile fields.
func (s *UserService) UpdateProfile(email string, req dto.UpdateProfileRequest) (dto.UserResponse, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return dto.UserResponse{}, err
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone
	user.Address = req.Address
	if err := s.users.Save(user); err != nil {
		return dto.UserResponse{}, err
	}
	return dto.ToUserResponse(user), nil
}

// Deactivate soft-deletes a user: the row stays queryable with Active=false.
// Admin accounts cannot be deactivated through this path.
func (s *UserService) Deactivate(id uint) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleAdmin {
		return domain.ErrNotAuthorized
	}
	user.Active = false
	if err := s.users.Save(user); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User deactivated")
	return nil
}

// List returns one page of users. Admin path.
func (s *UserService) List(page, pageSize int) ([]dto.UserResponse, int64, error) {
	users, total, err := s.users.List(page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = dto.ToUserResponse(&users[i])
	}
	return resp, total, nil
}

// Get returns one user by id. Admin path.
func (s *UserService) Get(id uint) (dto.UserResponse, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.ToUserResponse(user), nil
}
