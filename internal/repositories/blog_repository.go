package repositories

import "blogapi/internal/models"

// BlogRepository defines the interface for blog data access.
//
// UpdateOwned and DeleteOwned must apply the id+authorEmail filter in the
// same store operation as the mutation. Callers rely on that for the
// ownership check; splitting it into a lookup followed by a write would
// reintroduce a check-then-act race.
type BlogRepository interface {
	GetAll() ([]models.Blog, error)
	Create(blog *models.Blog) error
	UpdateOwned(id, authorEmail, title, content, image string) error
	DeleteOwned(id, authorEmail string) error
	IncrementViews(id string) error
}
