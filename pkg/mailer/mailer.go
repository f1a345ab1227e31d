package mailer

import (
	"fmt"
	"net/smtp"
)

// Config holds SMTP connection details.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Client sends mail through an authenticated SMTP provider.
type Client struct {
	cfg Config
}

// NewClient creates a new mail client. No connection is made here; SMTP
// sessions are opened per message, so a misconfigured provider only shows
// up when a send is attempted.
func NewClient(cfg Config) *Client {
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &Client{cfg: cfg}
}

// SendOTP relays a caller-generated OTP as a plain-text message. Delivery
// is the whole job: the code is not stored, validated or expired here.
func (c *Client) SendOTP(to, otp string) error {
	return c.send(to, "Your OTP Code", fmt.Sprintf("Your OTP code is: %s", otp))
}

func (c *Client) send(to, subject, body string) error {
	if c.cfg.Host == "" || c.cfg.Username == "" || c.cfg.Password == "" {
		return fmt.Errorf("smtp is not configured")
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"\r\n"+
			"%s\r\n",
		c.cfg.From, to, subject, body,
	))

	auth := smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
	addr := c.cfg.Host + ":" + c.cfg.Port
	if err := smtp.SendMail(addr, auth, c.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
