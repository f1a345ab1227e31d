package services

import (
	"fmt"

	"blogapi/internal/models"
	"blogapi/internal/repositories"
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Register stores a new user. The store's unique constraint on email is
// the only duplicate guard; there is no pre-flight lookup.
func (s *AuthService) Register(user *models.User) error {
	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Login returns the user matching the exact email+password pair. The
// comparison is a verbatim string match performed by the store filter.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByCredentials(email, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return user, nil
}
