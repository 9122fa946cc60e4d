package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtualshop/internal/domain"
	"virtualshop/internal/dto"
)

func seedUser(t *testing.T, users *fakeUserStore, email, role string) domain.User {
	t.Helper()
	user := domain.User{
		Email:     email,
		Password:  "hash",
		FirstName: "Test",
		LastName:  "User",
		Phone:     "+12025550100",
		Address:   "1 Test St",
		Role:      role,
		Active:    true,
	}
	require.NoError(t, users.Create(&user))
	return user
}

func TestDeactivateCustomerFlipsActiveAndKeepsRow(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)
	customer := seedUser(t, users, "c@example.com", domain.RoleCustomer)

	require.NoError(t, svc.Deactivate(customer.ID))

	stored, err := users.FindByID(customer.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
	assert.Equal(t, "c@example.com", stored.Email)
}

func TestDeactivateAdminIsRefused(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)
	admin := seedUser(t, users, "a@example.com", domain.RoleAdmin)

	err := svc.Deactivate(admin.ID)
	require.ErrorIs(t, err, domain.ErrNotAuthorized)

	stored, err := users.FindByID(admin.ID)
	require.NoError(t, err)
	assert.True(t, stored.Active)
}

func TestDeactivateUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	assert.ErrorIs(t, svc.Deactivate(42), domain.ErrUserNotFound)
}

func TestUpdateProfileOverwritesAllFields(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)
	user := seedUser(t, users, "p@example.com", domain.RoleCustomer)

	resp, err := svc.UpdateProfile(user.Email, dto.UpdateProfileRequest{
		FirstName: "New",
		LastName:  "Name",
		Phone:     "+12025550199",
		Address:   "99 Updated Ave",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", resp.FirstName)
	assert.Equal(t, "Name", resp.LastName)
	assert.Equal(t, "+12025550199", resp.Phone)
	assert.Equal(t, "99 Updated Ave", resp.Address)

	stored, err := users.FindByEmail(user.Email)
	require.NoError(t, err)
	assert.Equal(t, "New", stored.FirstName)
}

func TestProfileAndGetUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.Profile("ghost@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.Get(7)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListUsersPaginates(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)
	for _, email := range []string{"u1@example.com", "u2@example.com", "u3@example.com"} {
		seedUser(t, users, email, domain.RoleCustomer)
	}

	pageOne, total, err := svc.List(1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, pageOne, 2)

	pageTwo, _, err := svc.List(2, 2)
	require.NoError(t, err)
	assert.Len(t, pageTwo, 1)
}
