package repositories

import (
	"fmt"
	"time"

	"blogapi/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBlogRepository is a GORM implementation of BlogRepository.
type GORMBlogRepository struct {
	db *gorm.DB
}

// NewGORMBlogRepository creates a new instance of GORMBlogRepository.
func NewGORMBlogRepository(db *gorm.DB) *GORMBlogRepository {
	return &GORMBlogRepository{
		db: db,
	}
}

// GetAll retrieves all blogs ordered newest first.
func (r *GORMBlogRepository) GetAll() ([]models.Blog, error) {
	if r.db == nil {
		return nil, ErrNotConnected
	}
	var blogs []models.Blog
	if err := r.db.Order("created_at DESC").Find(&blogs).Error; err != nil {
		return nil, fmt.Errorf("failed to get all blogs: %w", err)
	}
	return blogs, nil
}

// Create inserts a new blog with a fresh ID, a zero view counter and both
// timestamps set to now.
func (r *GORMBlogRepository) Create(blog *models.Blog) error {
	if r.db == nil {
		return ErrNotConnected
	}
	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	now := time.Now()
	blog.Views = 0
	blog.CreatedAt = now
	blog.UpdatedAt = now
	if err := r.db.Create(blog).Error; err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

// UpdateOwned rewrites title, content and image of the blog matching both
// id and authorEmail, refreshing updatedAt. The ownership filter and the
// mutation run as one statement; zero rows affected means wrong id or
// wrong owner, reported as ErrNotFound.
func (r *GORMBlogRepository) UpdateOwned(id, authorEmail, title, content, image string) error {
	if r.db == nil {
		return ErrNotConnected
	}
	res := r.db.Model(&models.Blog{}).
		Where("id = ? AND author_email = ?", id, authorEmail).
		Updates(map[string]interface{}{
			"title":      title,
			"content":    content,
			"image":      image,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update blog %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteOwned removes the blog matching both id and authorEmail, with the
// same single-statement ownership semantics as UpdateOwned.
func (r *GORMBlogRepository) DeleteOwned(id, authorEmail string) error {
	if r.db == nil {
		return ErrNotConnected
	}
	res := r.db.Where("id = ? AND author_email = ?", id, authorEmail).Delete(&models.Blog{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete blog %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter by one as a single SQL expression,
// so concurrent increments never lose updates. There is no ownership check
// and a missing id is not an error. updatedAt is left untouched.
func (r *GORMBlogRepository) IncrementViews(id string) error {
	if r.db == nil {
		return ErrNotConnected
	}
	err := r.db.Model(&models.Blog{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		return fmt.Errorf("failed to increment views for blog %s: %w", id, err)
	}
	return nil
}
