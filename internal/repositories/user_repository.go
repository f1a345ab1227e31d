package repositories

import "blogapi/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	FindByCredentials(email, password string) (*models.User, error)
}
