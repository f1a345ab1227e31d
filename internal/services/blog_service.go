package services

import (
	"blogapi/internal/models"
	"blogapi/internal/repositories"
)

// BlogService handles blog listing, creation and the owned mutations.
type BlogService struct {
	repo repositories.BlogRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo repositories.BlogRepository) *BlogService {
	return &BlogService{
		repo: repo,
	}
}

// GetAllBlogs retrieves all blogs, newest first.
func (s *BlogService) GetAllBlogs() ([]models.Blog, error) {
	return s.repo.GetAll()
}

// CreateBlog creates a new blog. The repository assigns the ID, zeroes the
// view counter and stamps both timestamps.
func (s *BlogService) CreateBlog(blog *models.Blog) error {
	return s.repo.Create(blog)
}

// UpdateBlog rewrites title, content and image of the blog with the given
// id, but only when authorEmail matches the stored owner.
func (s *BlogService) UpdateBlog(id, authorEmail, title, content, image string) error {
	return s.repo.UpdateOwned(id, authorEmail, title, content, image)
}

// DeleteBlog removes the blog with the given id, but only when authorEmail
// matches the stored owner.
func (s *BlogService) DeleteBlog(id, authorEmail string) error {
	return s.repo.DeleteOwned(id, authorEmail)
}

// IncrementViews bumps the view counter of any blog by one. Every caller
// may increment every blog; there is no ownership check here.
func (s *BlogService) IncrementViews(id string) error {
	return s.repo.IncrementViews(id)
}
