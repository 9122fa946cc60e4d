package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql" // MySQL driver errors
	"gorm.io/gorm"                   // GORM ORM library

	"virtualshop/internal/domain"
)

// UserRepository wraps user queries over the relational store.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository backed by db.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user row. Email is the only unique user column, so a
// duplicate key on insert always means the address is already registered; the
// pre-insert existence check in the auth service cannot see a concurrent
// insert, this mapping can.
func (r *UserRepository) Create(user *domain.User) error {
	err := r.db.Create(user).Error
	if isDuplicateKey(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

// isDuplicateKey reports whether err is a unique constraint violation,
// either translated by GORM or raw from the MySQL driver (error 1062).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// Save persists changes to an existing user.
func (r *UserRepository) Save(user *domain.User) error {
	return r.db.Save(user).Error
}

// FindByEmail looks a user up by email.
func (r *UserRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID looks a user up by primary key.
func (r *UserRepository) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail reports whether a user with the given email is registered.
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns one page of users plus the total row count.
func (r *UserRepository) List(page, pageSize int) ([]domain.User, int64, error) {
	var total int64
	if err := r.db.Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	offset := (page - 1) * pageSize
	if err := r.db.Order("id asc").Offset(offset).Limit(pageSize).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
