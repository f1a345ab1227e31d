package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// OTPSender delivers a caller-generated one-time password by mail.
type OTPSender interface {
	SendOTP(to, otp string) error
}

// OTPHandler relays OTP codes to users by email. The OTP lifecycle lives
// entirely with the caller: nothing is generated, stored or verified here.
type OTPHandler struct {
	mailer OTPSender
}

// NewOTPHandler creates a new OTPHandler.
func NewOTPHandler(mailer OTPSender) *OTPHandler {
	return &OTPHandler{
		mailer: mailer,
	}
}

// RegisterRoutes registers the OTP route with the Fiber app.
func (h *OTPHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/send-otp", h.HandleSendOTP)
}

// SendOTPRequest represents the request body for send-otp.
type SendOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// HandleSendOTP sends the supplied OTP to the supplied address. Provider
// or network failures surface as a generic delivery failure.
func (h *OTPHandler) HandleSendOTP(c *fiber.Ctx) error {
	var req SendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing send-otp request body: %v", err)
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "Failed to send OTP",
		})
	}

	if err := h.mailer.SendOTP(req.Email, req.OTP); err != nil {
		log.Printf("Error sending OTP to %s: %v", req.Email, err)
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "Failed to send OTP",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
