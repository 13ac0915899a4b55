package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"autoluxe/internal/config"
	"autoluxe/internal/handlers"
	"autoluxe/internal/mail"
	"autoluxe/internal/middleware"
	"autoluxe/internal/store"
	"autoluxe/pkg/localdb"
	"autoluxe/pkg/logger"
	"autoluxe/pkg/mailer"
	"autoluxe/pkg/ws"
	"autoluxe/routes"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Local profile persistence
	backend, err := localdb.NewFileBackend(cfg.Store.DataDir)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to open local storage")
	}
	dataStore := store.New(backend, appLogger)

	// Push change notifications to connected views
	wsHandler := ws.NewHandler(appLogger)
	hub := wsHandler.GetHub()
	dataStore.Events().SubscribeAll(func(event store.Event) {
		var payload interface{}
		if event.Email != nil {
			payload = event.Email
		}
		hub.Broadcast(string(event.Channel), payload)
	})

	mockMail := mail.NewMock(dataStore.Events(), cfg.Mail.MockDelay, cfg.Mail.MockFrom, appLogger)
	smtpRelay := mailer.NewSMTPMailer(&mailer.Config{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromEmail: cfg.SMTP.FromEmail,
		FromName:  cfg.SMTP.FromName,
	})

	// Initialize handlers
	vehicleHandler := handlers.NewVehicleHandler(dataStore, appLogger)
	authHandler := handlers.NewAuthHandler(dataStore, appLogger)
	requestHandler := handlers.NewRequestHandler(dataStore, appLogger)
	mailHandler := handlers.NewMailHandler(mockMail, smtpRelay, appLogger)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupVehicleRoutes(v1, vehicleHandler, dataStore)
		routes.SetupAuthRoutes(v1, authHandler, dataStore)
		routes.SetupRequestRoutes(v1, requestHandler, dataStore)
		routes.SetupMailRoutes(v1, router, mailHandler)
	}

	router.GET("/ws", wsHandler.HandleWebSocket)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.WithError(err).Fatal("Server stopped")
	}
}
