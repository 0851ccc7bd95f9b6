package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	httpapi "rma-portal-backend/internal/api/http"
	"rma-portal-backend/internal/config"
	"rma-portal-backend/internal/logger"
	"rma-portal-backend/internal/repository/postgres"
	"rma-portal-backend/internal/security"
	"rma-portal-backend/internal/service"
	"rma-portal-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RMA Portal Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Storage Service
	var mockStorage *storage.MockStorageService
	if cfg.Storage.Type == "" || cfg.Storage.Type == "mock" {
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStorage, err = storage.NewMockStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
	} else {
		logger.Error("Unsupported storage type", "type", cfg.Storage.Type)
		log.Fatalf("Storage type '%s' not yet implemented", cfg.Storage.Type)
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		cfg.Email.Disabled,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.CustomerRepository, store.StaffRepository, tokenManager)
	rmaSvc := service.NewRMAService(
		store.RMARepository,
		store.AttachmentRepository,
		store.ProductRepository,
		store.CustomerRepository,
		emailSvc,
		store.NotificationRepository,
	)
	productSvc := service.NewProductService(store.ProductRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	saleSvc := service.NewSaleService(store.SaleRepository, store.CustomerRepository, store.ProductRepository)
	attachmentSvc := service.NewAttachmentService(store.AttachmentRepository, mockStorage)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)

	// Build the router
	router := httpapi.NewRouter(cfg, tokenManager, httpapi.Services{
		Auth:          authSvc,
		RMAs:          rmaSvc,
		Products:      productSvc,
		Customers:     customerSvc,
		Sales:         saleSvc,
		Attachments:   attachmentSvc,
		Notifications: notificationSvc,
	}, mockStorage)

	// Start HTTP server
	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
