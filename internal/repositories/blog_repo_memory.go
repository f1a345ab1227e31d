package repositories

import (
	"sort"
	"sync"
	"time"

	"blogapi/internal/models"

	"github.com/google/uuid"
)

// MemoryBlogRepository is an in-memory implementation of BlogRepository.
// The mutex stands in for the atomicity a real store provides: the owned
// mutations and the view increment each run under one lock acquisition.
type MemoryBlogRepository struct {
	blogs map[string]models.Blog
	mu    sync.RWMutex
}

// NewMemoryBlogRepository creates a new instance of MemoryBlogRepository.
func NewMemoryBlogRepository() *MemoryBlogRepository {
	return &MemoryBlogRepository{
		blogs: make(map[string]models.Blog),
	}
}

// GetAll returns all blogs ordered newest first.
func (r *MemoryBlogRepository) GetAll() ([]models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blogList := make([]models.Blog, 0, len(r.blogs))
	for _, blog := range r.blogs {
		blogList = append(blogList, blog)
	}
	sort.Slice(blogList, func(i, j int) bool {
		return blogList[i].CreatedAt.After(blogList[j].CreatedAt)
	})
	return blogList, nil
}

// Create adds a new blog with a fresh ID, zero views and timestamps set to now.
func (r *MemoryBlogRepository) Create(blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	now := time.Now()
	blog.Views = 0
	blog.CreatedAt = now
	blog.UpdatedAt = now
	r.blogs[blog.ID] = *blog
	return nil
}

// UpdateOwned rewrites title, content and image when both id and
// authorEmail match, refreshing updatedAt.
func (r *MemoryBlogRepository) UpdateOwned(id, authorEmail, title, content, image string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	blog, ok := r.blogs[id]
	if !ok || blog.AuthorEmail != authorEmail {
		return ErrNotFound
	}
	blog.Title = title
	blog.Content = content
	blog.Image = image
	blog.UpdatedAt = time.Now()
	r.blogs[id] = blog
	return nil
}

// DeleteOwned removes the blog when both id and authorEmail match.
func (r *MemoryBlogRepository) DeleteOwned(id, authorEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	blog, ok := r.blogs[id]
	if !ok || blog.AuthorEmail != authorEmail {
		return ErrNotFound
	}
	delete(r.blogs, id)
	return nil
}

// IncrementViews bumps the view counter by one. A missing id is not an
// error, matching the store behavior.
func (r *MemoryBlogRepository) IncrementViews(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	blog, ok := r.blogs[id]
	if !ok {
		return nil
	}
	blog.Views++
	r.blogs[id] = blog
	return nil
}
