package handlers

import (
	"errors"
	"log"

	"blogapi/internal/models"
	"blogapi/internal/repositories"
	"blogapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// BlogHandler handles HTTP requests for blogs.
type BlogHandler struct {
	service *services.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service *services.BlogService) *BlogHandler {
	return &BlogHandler{
		service: service,
	}
}

// RegisterRoutes registers the blog routes with the Fiber app.
func (h *BlogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/get-blogs", h.HandleGetBlogs)
	router.Post("/save-blog", h.HandleSaveBlog)
	router.Post("/update-blog", h.HandleUpdateBlog)
	router.Post("/delete-blog", h.HandleDeleteBlog)
	router.Post("/increment-view", h.HandleIncrementView)
}

// HandleGetBlogs retrieves all blogs, newest first.
func (h *BlogHandler) HandleGetBlogs(c *fiber.Ctx) error {
	blogs, err := h.service.GetAllBlogs()
	if err != nil {
		log.Printf("Error getting all blogs: %v", err)
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "DB error",
		})
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	return c.JSON(fiber.Map{
		"success": true,
		"blogs":   blogs,
	})
}

// HandleSaveBlog creates a new blog from the request body. Views and
// timestamps are set by the store layer, whatever the body says.
func (h *BlogHandler) HandleSaveBlog(c *fiber.Ctx) error {
	var blog models.Blog
	if err := c.BodyParser(&blog); err != nil {
		log.Printf("Error parsing save-blog request body: %v", err)
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save blog",
		})
	}

	if err := h.service.CreateBlog(&blog); err != nil {
		log.Printf("Error saving blog: %v", err)
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save blog",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// UpdateBlogRequest represents the request body for update-blog.
type UpdateBlogRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	AuthorEmail string `json:"authorEmail"`
}

// HandleUpdateBlog edits a blog. The supplied authorEmail must match the
// stored owner; a wrong id and a wrong owner report the same failure.
func (h *BlogHandler) HandleUpdateBlog(c *fiber.Ctx) error {
	var req UpdateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update-blog request body: %v", err)
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "Update failed",
		})
	}

	if err := h.service.UpdateBlog(req.ID, req.AuthorEmail, req.Title, req.Content, req.Image); err != nil {
		log.Printf("Error updating blog %s: %v", req.ID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(fiber.Map{
				"success": false,
				"error":   "Not authorized or not found",
			})
		}
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "Update failed",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// DeleteBlogRequest represents the request body for delete-blog.
type DeleteBlogRequest struct {
	ID          string `json:"id"`
	AuthorEmail string `json:"authorEmail"`
}

// HandleDeleteBlog removes a blog owned by the supplied authorEmail.
// "Not found", "wrong owner" and "store error" all answer with the same
// message; callers were never given more than that.
func (h *BlogHandler) HandleDeleteBlog(c *fiber.Ctx) error {
	var req DeleteBlogRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing delete-blog request body: %v", err)
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "Delete failed",
		})
	}

	if err := h.service.DeleteBlog(req.ID, req.AuthorEmail); err != nil {
		log.Printf("Error deleting blog %s: %v", req.ID, err)
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "Delete failed",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// IncrementViewRequest represents the request body for increment-view.
type IncrementViewRequest struct {
	ID string `json:"id"`
}

// HandleIncrementView bumps a blog's view counter. No ownership check, no
// error message on failure, and an unknown id still answers success.
func (h *BlogHandler) HandleIncrementView(c *fiber.Ctx) error {
	var req IncrementViewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing increment-view request body: %v", err)
		return c.JSON(fiber.Map{"success": false})
	}

	if err := h.service.IncrementViews(req.ID); err != nil {
		log.Printf("Error incrementing views for blog %s: %v", req.ID, err)
		return c.JSON(fiber.Map{"success": false})
	}

	return c.JSON(fiber.Map{"success": true})
}
