package handlers

import (
	"log"

	"blogapi/internal/models"
	"blogapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for registration and login.
//
// Like every handler in this package it answers 200 OK with a
// {success, ...} envelope; domain failures carry a short error string and
// the real cause only goes to the server log.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/register", h.HandleRegister)
	router.Post("/login", h.HandleLogin)
}

// HandleRegister handles new user registration. Any failure, duplicate
// email included, is reported with the same generic message.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "Email already exists",
		})
	}

	if err := h.authService.Register(&user); err != nil {
		log.Printf("Register error for %s: %v", user.Email, err)
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "Email already exists",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles user login. A match returns the full stored record;
// wrong password and unknown email are indistinguishable to the caller.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "Invalid email or password",
		})
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Login error for %s: %v", req.Email, err)
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "Invalid email or password",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}
