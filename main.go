package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"blogapi/internal/config"
	"blogapi/internal/handlers"
	"blogapi/internal/models"
	"blogapi/internal/repositories"
	"blogapi/internal/services"
	"blogapi/pkg/mailer"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	// Connect once at startup. A failure is logged, not fatal: the
	// repositories get a nil handle and every store call fails on its own
	// until the process is restarted with a working DSN.
	var db *gorm.DB
	if cfg.DatabaseDSN != "" {
		var err error
		db, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Printf("Database connection error: %v", err)
			db = nil
		}
	}
	if db != nil {
		if err := db.AutoMigrate(&models.User{}, &models.Blog{}); err != nil {
			log.Printf("Auto-migration failed: %v", err)
		} else {
			log.Println("Connected to database")
		}
	}

	// --- Upload directory ---
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Printf("Failed to create upload directory %s: %v", cfg.UploadDir, err)
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	blogRepo := repositories.NewGORMBlogRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo)
	blogService := services.NewBlogService(blogRepo)
	mailClient := mailer.NewClient(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	blogHandler := handlers.NewBlogHandler(blogService)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir)
	otpHandler := handlers.NewOTPHandler(mailClient)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(cors.New())

	// Uploaded files are served back verbatim, no access control.
	app.Static("/uploads", cfg.UploadDir)

	// --- API Routes ---
	authHandler.RegisterRoutes(app)
	blogHandler.RegisterRoutes(app)
	uploadHandler.RegisterRoutes(app)
	otpHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
