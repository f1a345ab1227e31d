package repositories

import (
	"errors"
	"fmt"

	"blogapi/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
// The db handle may be nil when the startup connection failed; every
// operation then returns ErrNotConnected.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user. The unique index on email is the only guard
// against duplicate registrations.
func (r *GORMUserRepository) Create(user *models.User) error {
	if r.db == nil {
		return ErrNotConnected
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByCredentials retrieves the user matching the exact email+password
// pair. Both fields go into the same filter; a wrong password and an
// unknown email are the same ErrNotFound.
func (r *GORMUserRepository) FindByCredentials(email, password string) (*models.User, error) {
	if r.db == nil {
		return nil, ErrNotConnected
	}
	var user models.User
	if err := r.db.First(&user, "email = ? AND password = ?", email, password).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user %s: %w", email, err)
	}
	return &user, nil
}
