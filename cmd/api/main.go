package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	donationUseCase "github.com/rotaryroots/hariyo-ban/internal/domain/usecase/donation"
	"github.com/rotaryroots/hariyo-ban/internal/domain/usecase/leaderboard"
	"github.com/rotaryroots/hariyo-ban/internal/domain/usecase/refresh"
	roomUseCase "github.com/rotaryroots/hariyo-ban/internal/domain/usecase/room"
	siteUseCase "github.com/rotaryroots/hariyo-ban/internal/domain/usecase/site"
	"github.com/rotaryroots/hariyo-ban/internal/domain/usecase/stats"

	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/api/handler"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/api/routes"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/database"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/database/migration"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/feed"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/logger"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/payment"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/repository"
	timeProvider "github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/time"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer appLogger.Flush()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay / time.Second),
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	donationRepo := repository.NewDonationRepository(dbManager.DB(), appLogger)
	profileRepo := repository.NewProfileRepository(dbManager.DB(), appLogger)
	siteRepo := repository.NewSiteRepository(dbManager.DB(), tp, appLogger)
	metricRepo := repository.NewImpactMetricRepository(dbManager.DB(), appLogger)
	notificationRepo := repository.NewNotificationRepository(dbManager.DB(), appLogger)
	roomRepo := repository.NewRoomRepository(dbManager.DB(), appLogger)

	// Unit of work (transaction manager)
	uow := dbManager.CreateUnitOfWork()

	// In-process change feed for the realtime refresh controller
	changeFeed := feed.NewBus(appLogger)
	defer changeFeed.Close()

	// Payment gateway
	gateway := payment.NewEsewaGateway(payment.Config{
		Endpoint:     cfg.Esewa.Endpoint,
		MerchantCode: cfg.Esewa.MerchantCode,
		SuccessURL:   cfg.Esewa.SuccessURL,
		FailureURL:   cfg.Esewa.FailureURL,
	}, appLogger)

	// Initialize use cases
	donationService := donationUseCase.NewService(donationRepo, uow, changeFeed, gateway, tp, appLogger)
	progressTracker := roomUseCase.NewProgressTracker(roomRepo, tp, appLogger)
	roomService := roomUseCase.NewService(
		roomRepo,
		siteRepo,
		uow,
		changeFeed,
		gateway,
		progressTracker,
		tp,
		appLogger,
		cfg.Donation.MinimumContribution,
	)
	siteService := siteUseCase.NewService(siteRepo, notificationRepo, tp, appLogger)

	// Read-side aggregators behind the refresh controller
	aggregator := stats.NewAggregator(donationRepo, siteRepo, metricRepo, tp, appLogger)
	ranker := leaderboard.NewRanker(donationRepo, profileRepo, appLogger)
	estimator := leaderboard.NewOrganizationEstimator(leaderboard.DefaultOrganizations())

	controller := refresh.NewController(
		aggregator,
		ranker,
		estimator,
		progressTracker,
		changeFeed,
		appLogger,
		cfg.Refresh.Schedule,
	)
	if err := controller.Start(context.Background()); err != nil {
		appLogger.Error("Failed to start refresh controller", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Seed the default planting sites
	if err := migration.CreateDefaultSites(context.Background(), siteRepo, siteService); err != nil {
		appLogger.Error("Failed to create default planting sites", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize API handlers
	viewsHandler := handler.NewViewsHandler(controller, appLogger)
	donationHandler := handler.NewDonationHandler(donationService, appLogger)
	roomHandler := handler.NewRoomHandler(roomService, appLogger)
	paymentHandler := handler.NewPaymentHandler(gateway, donationService, roomService, appLogger)
	siteHandler := handler.NewSiteHandler(siteService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, viewsHandler, donationHandler, roomHandler, paymentHandler, siteHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	// Stop the refresh controller after the HTTP surface is drained
	controller.Stop()

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("HB_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or HB_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Port == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("HB_DB_PORT") == "" {
			missingConfigs = append(missingConfigs, "database.port (or HB_DB_PORT environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.port")
		}
	}

	if cfg.Database.Username == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("HB_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or HB_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("HB_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or HB_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("HB_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or HB_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate payment gateway configuration
	if cfg.Esewa.Endpoint == "" {
		missingConfigs = append(missingConfigs, "esewa.endpoint")
	}

	if cfg.Esewa.MerchantCode == "" {
		missingConfigs = append(missingConfigs, "esewa.merchantCode")
	}

	if cfg.Esewa.SuccessURL == "" {
		missingConfigs = append(missingConfigs, "esewa.successUrl")
	}

	if cfg.Esewa.FailureURL == "" {
		missingConfigs = append(missingConfigs, "esewa.failureUrl")
	}

	// Validate donation configuration
	if cfg.Donation.MinimumContribution <= 0 {
		missingConfigs = append(missingConfigs, "donation.minimumContribution")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		if strings.ToLower(cfg.Database.SSLMode) != "require" && strings.ToLower(cfg.Database.SSLMode) != "verify-ca" && strings.ToLower(cfg.Database.SSLMode) != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
