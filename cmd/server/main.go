package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "erp-cars-backend/internal/api/http"
	"erp-cars-backend/internal/config"
	"erp-cars-backend/internal/logger"
	"erp-cars-backend/internal/pricing"
	"erp-cars-backend/internal/repository/postgres"
	"erp-cars-backend/internal/security"
	"erp-cars-backend/internal/service"

	"github.com/shopspring/decimal"

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
	logger.Info("Starting ERP Cars Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Rating Engine
	engine, err := buildPricingEngine(cfg.Pricing)
	if err != nil {
		logger.Error("Failed to build pricing engine", "error", err)
		log.Fatalf("Failed to build pricing engine: %v", err)
	}

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	agencySvc := service.NewAgencyService(store.AgencyRepository)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	customerSvc := service.NewCustomerService(store.CustomerRepository, engine)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository)
	contractSvc := service.NewContractService(
		store.ContractRepository,
		store.CustomerRepository,
		store.VehicleRepository,
		store.NotificationRepository,
		store,
		engine,
		emailSvc,
	)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, store.ContractRepository)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Tokens:        tokenManager,
		Agencies:      agencySvc,
		Auth:          authSvc,
		Customers:     customerSvc,
		Vehicles:      vehicleSvc,
		Contracts:     contractSvc,
		Payments:      paymentSvc,
		Notifications: notificationSvc,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Received shutdown signal", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

// buildPricingEngine applies the config overrides on top of the built-in
// tier catalog.
func buildPricingEngine(cfg config.PricingConfig) (*pricing.Engine, error) {
	catalog := pricing.DefaultCatalog()
	if cfg.DefaultDailyKmLimit > 0 {
		catalog.DefaultDailyKmLimit = cfg.DefaultDailyKmLimit
	}
	if cfg.DefaultOverageRate != "" {
		rate, err := decimal.NewFromString(cfg.DefaultOverageRate)
		if err != nil {
			return nil, err
		}
		catalog.DefaultOverageRate = rate
	}
	return pricing.NewEngine(catalog)
}
