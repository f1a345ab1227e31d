package config

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds everything the process reads from the environment.
type Config struct {
	AppPort      string `validate:"required"`
	DatabaseDSN  string `validate:"required"`
	UploadDir    string `validate:"required"`
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string `validate:"required"`
	SMTPPassword string `validate:"required"`
	MailFrom     string
}

// Load reads configuration from environment variables, applying defaults.
// Incomplete configuration is logged, never fatal: a process without a
// database DSN or mail credentials still serves traffic, each affected
// request failing on its own.
func Load() Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", "587")
	viper.AutomaticEnv()

	cfg := Config{
		AppPort:      viper.GetString("APP_PORT"),
		DatabaseDSN:  viper.GetString("DATABASE_DSN"),
		UploadDir:    viper.GetString("UPLOAD_DIR"),
		SMTPHost:     viper.GetString("SMTP_HOST"),
		SMTPPort:     viper.GetString("SMTP_PORT"),
		SMTPUser:     viper.GetString("SMTP_USER"),
		SMTPPassword: viper.GetString("SMTP_PASSWORD"),
		MailFrom:     viper.GetString("MAIL_FROM"),
	}
	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.SMTPUser
	}

	if err := validator.New().Struct(cfg); err != nil {
		log.Printf("Configuration incomplete, continuing anyway: %v", err)
	}

	return cfg
}
