package handlers

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler stores multipart image uploads on local disk. Stored files
// are served back as static content under /uploads and are never deleted
// or overwritten by this system.
type UploadHandler struct {
	uploadDir string
}

// NewUploadHandler creates a new UploadHandler writing into uploadDir.
func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{
		uploadDir: uploadDir,
	}
}

// RegisterRoutes registers the upload route with the Fiber app.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/upload-image", h.HandleUploadImage)
}

// HandleUploadImage accepts exactly one file under the "image" field and
// persists it under a millisecond-timestamp-prefixed name. Two uploads of
// the same filename within the same millisecond collide; the site has
// always lived with that. No type, size or content checks are performed.
func (h *UploadHandler) HandleUploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No file uploaded",
		})
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		log.Printf("Error saving upload %s: %v", name, err)
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "Upload failed",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"url":     "/uploads/" + name,
	})
}
