// main.go
//
// Podcast onboarding service for Straw Hut Media.
// Copyright (c) 2026 Straw Hut Media

package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"github.com/strawhutmedia/onboarding/internal/config"
	"github.com/strawhutmedia/onboarding/internal/database"
	"github.com/strawhutmedia/onboarding/internal/handlers"
	"github.com/strawhutmedia/onboarding/internal/middleware"
	"github.com/strawhutmedia/onboarding/internal/services"
	"github.com/strawhutmedia/onboarding/internal/types"

	_ "github.com/strawhutmedia/onboarding/docs/api" // Swagger docs
)

// @title Straw Hut Onboarding API
// @version 1.0.0
// @description Podcast onboarding wizard and admin console service
// @termsOfService http://swagger.io/terms/

// @contact.name Straw Hut Media
// @contact.url https://strawhutmedia.com
// @contact.email onboarding@strawhutmedia.com

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name shm_admin_session

func main() {
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to a .env file")
	flag.Parse()

	if envFilename != "" {
		log.Printf("Loading environment variables from %s", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v", err)
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the approved list from the remote endpoint when configured. A
	// failure is not fatal; the stored list keeps serving.
	if cfg.CompaniesEndpoint != "" {
		if count, err := services.SyncCompanies(db, cfg.CompaniesEndpoint); err != nil {
			log.Printf("Startup company sync skipped: %v", err)
		} else {
			log.Printf("Startup company sync loaded %d companies", count)
		}
	}

	sessions := services.NewSessionStore()
	notifier := services.NewNotifier(cfg)
	auth := services.NewAuthService(cfg)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("onboarding")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	wizardHandler := &handlers.WizardHandler{
		DB:         db,
		Sessions:   sessions,
		Notifier:   notifier,
		InspoLimit: cfg.InspoFileLimit,
	}
	adminHandler := &handlers.AdminHandler{
		DB:                db,
		Auth:              auth,
		Notifier:          notifier,
		CompaniesEndpoint: cfg.CompaniesEndpoint,
	}
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db, Sessions: sessions}

	api.Get("/health", healthHandler.GetHealth)

	// Public wizard routes
	api.Post("/gate", wizardHandler.Gate)
	api.Get("/wizard/:token", wizardHandler.GetState)
	api.Patch("/wizard/:token/fields", wizardHandler.SetFields)
	api.Post("/wizard/:token/next", wizardHandler.Next)
	api.Post("/wizard/:token/prev", wizardHandler.Prev)
	api.Post("/wizard/:token/jump", wizardHandler.Jump)
	api.Post("/wizard/:token/files/:category", wizardHandler.AddFiles)
	api.Delete("/wizard/:token/files/:category/:index", wizardHandler.RemoveFile)
	api.Get("/wizard/:token/summary", wizardHandler.GetSummary)
	api.Post("/wizard/:token/submit", wizardHandler.Submit)

	// Admin routes; everything past login requires the session cookie
	api.Post("/admin/login", adminHandler.Login)
	api.Post("/admin/logout", adminHandler.Logout)

	admin := api.Group("/admin", middleware.AuthAdmin(auth))
	admin.Get("/companies", adminHandler.GetCompanies)
	admin.Post("/companies", adminHandler.AddCompany)
	admin.Post("/companies/sync", adminHandler.SyncCompanies)
	admin.Delete("/companies/:index", adminHandler.RemoveCompany)
	admin.Get("/submissions", adminHandler.GetSubmissions)
	admin.Get("/submissions/:index", adminHandler.GetSubmission)
	admin.Put("/submissions/:index", adminHandler.UpdateSubmission)
	admin.Post("/submissions/:index/resend", adminHandler.ResendSubmission)
	admin.Delete("/submissions/:index", adminHandler.DeleteSubmission)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
