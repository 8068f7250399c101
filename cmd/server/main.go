package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/seu-repo/vocalis/internal/adapter/ai/gemini"
	"github.com/seu-repo/vocalis/internal/adapter/cache"
	"github.com/seu-repo/vocalis/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/vocalis/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/vocalis/internal/adapter/media"
	"github.com/seu-repo/vocalis/internal/adapter/queue"
	"github.com/seu-repo/vocalis/internal/adapter/storage/postgres"
	"github.com/seu-repo/vocalis/internal/adapter/vault"
	"github.com/seu-repo/vocalis/internal/observability/telemetry"
	"github.com/seu-repo/vocalis/internal/ports"
	"github.com/seu-repo/vocalis/internal/service/assistant"
	"github.com/seu-repo/vocalis/internal/service/auth"
	"github.com/seu-repo/vocalis/internal/service/email"
	"github.com/seu-repo/vocalis/internal/service/health"
	"github.com/seu-repo/vocalis/pkg/config"
)

const (
	serviceName    = "vocalis"
	serviceVersion = "v1.0.0"
)

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting Vocalis",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Resolve secrets from Vault when configured; env/config otherwise
	if cfg.Vault.Address != "" {
		resolveSecrets(cfg, logger)
	}

	// 4. Initialize OpenTelemetry (Distributed Tracing)
	if cfg.OpenTelemetry.Enabled {
		tracerProvider, err := telemetry.InitTracer(serviceName, serviceVersion, cfg.OpenTelemetry.JaegerEndpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 5. Initialize PostgreSQL
	db, err := postgres.NewConnection(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer postgres.Close(db)

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// 6. Initialize Cache (Redis, in-memory fallback)
	appCache, err := cache.NewRedisCache(cfg.Redis.URL, logger)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory cache", zap.Error(err))
		appCache = cache.NewLocalCache(time.Minute, logger)
	}
	defer appCache.Close()

	// 7. Initialize Message Queue (optional)
	var messageQueue queue.MessageQueue
	if cfg.Queue.URL != "" {
		messageQueue, err = newQueue(cfg.Queue, logger)
		if err != nil {
			logger.Warn("Message queue unavailable, event publishing disabled", zap.Error(err))
		} else {
			defer messageQueue.Close()
		}
	}

	// 8. Initialize Repositories
	userRepo := postgres.NewUserRepository(db, logger)

	// 9. Initialize Services
	var emailService ports.EmailService
	if cfg.Email.Enabled {
		emailService, err = email.NewService(&email.Config{
			APIKey:    cfg.Email.APIKey,
			FromEmail: cfg.Email.From,
			FromName:  cfg.Email.FromName,
		}, logger)
		if err != nil {
			logger.Warn("Email service disabled", zap.Error(err))
		}
	}

	authService := auth.NewService(userRepo, appCache, emailService, auth.Options{
		JWTSecret:             cfg.JWT.Secret,
		AccessTokenDuration:   cfg.JWT.AccessTokenDuration,
		RefreshTokenDuration:  cfg.JWT.RefreshTokenDuration,
		DefaultAssistantName:  cfg.Assistant.DefaultName,
		DefaultAssistantImage: cfg.Assistant.DefaultImage,
	}, logger)

	geminiClient := gemini.NewClient(cfg.Gemini.Endpoint, cfg.Gemini.Timeout, logger)
	assistantService := assistant.New(userRepo, geminiClient, messageQueue, logger)

	var uploader ports.MediaUploader
	if cfg.Media.UploadURL != "" {
		uploader = media.NewUploader(cfg.Media.UploadURL, cfg.Media.UploadPreset, 30*time.Second, logger)
	}

	// 10. Health checks
	healthService := health.NewService(serviceVersion, logger)
	if sqlDB, err := db.DB(); err == nil {
		healthService.RegisterDatabase(sqlDB)
	}
	healthService.RegisterCache(appCache)
	if messageQueue != nil {
		healthService.RegisterQueue(cfg.Queue.Driver)
	}

	// 11. Initialize Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.NewCORS(cfg.CORS))
	if cfg.CircuitBreaker.Enabled {
		app.Use(middleware.CircuitBreaker(cfg.CircuitBreaker, logger))
	}

	health.NewFiberHandler(healthService).RegisterRoutes(app)

	if cfg.Prometheus.Enabled {
		metricsPath := cfg.Prometheus.Path
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		app.Get(metricsPath, func(c *fiber.Ctx) error {
			handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
			handler(c.Context())
			return nil
		})
	}

	// 12. API v1 Routes
	cookie := handlers.CookieSettings{
		Name:   cfg.JWT.CookieName,
		Secure: cfg.JWT.CookieSecure,
		MaxAge: cfg.JWT.AccessTokenDuration,
	}
	authHandler := handlers.NewAuthHandler(authService, cookie, logger)
	assistantHandler := handlers.NewAssistantHandler(assistantService, uploader, logger)

	user := app.Group("/api/v1/user")
	user.Post("/register", authHandler.Register)
	user.Post("/login", authHandler.Login)
	user.Post("/refresh", authHandler.RefreshToken)

	protected := user.Group("", middleware.AuthRequired(authService, cfg.JWT.CookieName))
	protected.Post("/logout", authHandler.Logout)
	protected.Get("/getuserdetails", authHandler.GetUserDetails)
	protected.Put("/updateuserdetails", assistantHandler.UpdateUserDetails)
	protected.Post("/asktoassistant", assistantHandler.Ask)
	protected.Post("/assistant/classify", assistantHandler.Classify)

	// 13. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 14. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

func newQueue(cfg config.QueueConfig, logger *zap.Logger) (queue.MessageQueue, error) {
	switch cfg.Driver {
	case "rabbitmq":
		return queue.NewRabbitMQQueue(cfg.URL, logger)
	case "nats", "":
		return queue.NewNATSQueue(cfg.URL, logger)
	default:
		return nil, fmt.Errorf("unknown queue driver %q", cfg.Driver)
	}
}

// resolveSecrets overrides config values with Vault secrets where present.
// Failures fall back to what config/env already provided.
func resolveSecrets(cfg *config.Config, logger *zap.Logger) {
	sm, err := vault.NewSecretManager(cfg.Vault.Address, cfg.Vault.Token)
	if err != nil {
		logger.Warn("Vault unavailable, using env secrets", zap.Error(err))
		return
	}

	if v, err := sm.GetDatabaseURL(); err == nil && v != "" {
		cfg.Database.URL = v
	}
	if v, err := sm.GetJWTSecret(); err == nil && v != "" {
		cfg.JWT.Secret = v
	}
	if v, err := sm.GetGeminiEndpoint(); err == nil && v != "" {
		cfg.Gemini.Endpoint = v
	}
	if v, err := sm.GetSendGridAPIKey(); err == nil && v != "" {
		cfg.Email.APIKey = v
	}

	logger.Info("Secrets resolved from Vault", zap.String("address", cfg.Vault.Address))
}
