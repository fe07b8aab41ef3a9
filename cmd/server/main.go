package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	activityapp "github.com/nutritrack/backend/internal/application/activity"
	adminapp "github.com/nutritrack/backend/internal/application/admin"
	catalogapp "github.com/nutritrack/backend/internal/application/catalog"
	identityapp "github.com/nutritrack/backend/internal/application/identity"
	nutritionapp "github.com/nutritrack/backend/internal/application/nutrition"
	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/nutritrack/backend/internal/infrastructure/auth"
	"github.com/nutritrack/backend/internal/infrastructure/cache"
	"github.com/nutritrack/backend/internal/infrastructure/config"
	"github.com/nutritrack/backend/internal/infrastructure/event"
	"github.com/nutritrack/backend/internal/infrastructure/logger"
	"github.com/nutritrack/backend/internal/infrastructure/migration"
	"github.com/nutritrack/backend/internal/infrastructure/persistence"
	"github.com/nutritrack/backend/internal/infrastructure/printing"
	"github.com/nutritrack/backend/internal/infrastructure/realtime"
	"github.com/nutritrack/backend/internal/infrastructure/storage"
	"github.com/nutritrack/backend/internal/infrastructure/telemetry"
	"github.com/nutritrack/backend/internal/interfaces/http/handler"
	"github.com/nutritrack/backend/internal/interfaces/http/middleware"
	"github.com/nutritrack/backend/internal/interfaces/http/router"
	"github.com/nutritrack/backend/migrations"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/lib/pq"
	_ "github.com/nutritrack/backend/docs"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			NutriTrack API
//	@version		1.0
//	@description	Nutrition tracking backend: food log, daily rollups, goals, reports and admin analytics.

//	@contact.name	API Support
//	@contact.url	https://github.com/nutritrack/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync(log)

	ctx := context.Background()

	// Telemetry: logs bridge first so later components log through it
	logProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize log exporter", zap.Error(err))
	}
	log = logProvider.Bridge(log, zapcore.InfoLevel)

	log.Info("Starting NutriTrack backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("timezone", cfg.App.Timezone),
		zap.String("version", version),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:           cfg.Telemetry.ProfilingEnabled,
		ServerAddress:     cfg.Telemetry.ProfilingServer,
		ApplicationName:   cfg.Telemetry.ServiceName,
		BasicAuthUser:     cfg.Telemetry.ProfilingAuthUser,
		BasicAuthPassword: cfg.Telemetry.ProfilingAuthToken,
		ProfileTypes:      cfg.Telemetry.ProfilingTypes,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if cfg.Telemetry.ProfilingEnabled {
		tracerProvider.EnableSpanProfiles()
	}

	// Apply schema migrations on a dedicated connection; closing the
	// migrator closes it.
	if cfg.Database.AutoMigrate {
		if err := runMigrations(cfg.Database, log); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	// Initialize database connection with the zap backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.GormLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:            cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:         cfg.Telemetry.DBLogFullSQL,
		SlowQueryThreshold: cfg.Telemetry.DBSlowQueryThresh,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Redis is optional; without it blacklist and idempotency stay in process
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	var (
		blacklist  auth.TokenBlacklist
		cacheCheck handler.Pinger
	)
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		cacheCheck = handler.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("Redis not configured, token blacklist is process local")
	}
	idempotencyStore := cache.NewIdempotencyStore(redisClient, log)

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	foodRepo := persistence.NewGormFoodRepository(db.DB)
	entryRepo := persistence.NewGormEntryRepository(db.DB)
	goalRepo := persistence.NewGormGoalRepository(db.DB)
	summaryRepo := persistence.NewGormSummaryRepository(db.DB)
	activityRepo := persistence.NewGormActivityRepository(db.DB)
	analyticsRepo := persistence.NewGormAnalyticsRepository(db.DB)

	// Event bus: services publish synchronously, handlers record activity
	// and push recomputed summaries to open sockets
	eventBus := event.NewInMemoryEventBus(log)
	hub := realtime.NewHub(cfg.Realtime, log)
	defer hub.Close()

	idempotency := shared.IdempotencyConfig{
		Enabled: cfg.Event.IdempotencyEnabled,
		TTL:     cfg.Event.IdempotencyTTL,
		Scope:   "activity",
	}
	recorder := activityapp.NewRecorder(activityRepo, log)
	eventBus.Subscribe(event.NewIdempotentHandler(recorder, idempotencyStore, idempotency, log), recorder.EventTypes()...)
	notifier := nutritionapp.NewSummaryNotifier(hub, cfg.App.Location())
	eventBus.Subscribe(notifier)

	log.Info("Event handlers registered",
		zap.Strings("activity_events", recorder.EventTypes()),
		zap.Strings("notifier_events", notifier.EventTypes()),
	)

	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Metrics instruments fall back to no-ops when export is disabled
	var httpMeter metric.Meter
	if meterProvider.IsEnabled() {
		httpMeter = meterProvider.Meter("nutritrack/http")
	}
	nutritionMetrics, err := telemetry.NewNutritionMetrics(meterProvider.Meter("nutritrack/nutrition"))
	if err != nil {
		log.Fatal("Failed to create nutrition metrics", zap.Error(err))
	}

	// Optional outputs: PDF rendering and export storage
	var renderer nutritionapp.ReportRenderer
	if cfg.Printing.Enabled {
		chrome, err := printing.NewChromeRenderer(cfg.Printing, log)
		if err != nil {
			log.Warn("PDF rendering unavailable", zap.Error(err))
		} else {
			defer func() { _ = chrome.Close() }()
			renderer = chrome
		}
	}

	analyticsOpts := []adminapp.Option{adminapp.WithLocation(cfg.App.Location())}
	if cfg.Storage.Bucket != "" {
		store, err := storage.NewS3Store(ctx, cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize export storage", zap.Error(err))
		}
		if err := store.EnsureBucket(ctx); err != nil {
			log.Warn("Export bucket check failed", zap.String("bucket", store.Bucket()), zap.Error(err))
		}
		analyticsOpts = append(analyticsOpts, adminapp.WithExportStorage(store))
	}

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	engine := nutritionapp.NewRollupEngine(entryRepo, goalRepo, summaryRepo, log,
		nutritionapp.WithPublisher(eventBus),
		nutritionapp.WithMetrics(nutritionMetrics),
		nutritionapp.WithLocation(cfg.App.Location()),
	)
	entryService := nutritionapp.NewEntryService(entryRepo, engine, foodRepo, eventBus, nutritionMetrics, log)
	goalService := nutritionapp.NewGoalService(goalRepo, eventBus, log)
	reportService := nutritionapp.NewReportService(entryRepo, summaryRepo, engine, renderer)
	foodService := catalogapp.NewFoodService(foodRepo, eventBus, log)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, eventBus, log)
	userService := identityapp.NewUserService(userRepo, blacklist, eventBus, log, cfg.JWT.RefreshTokenExpiration)
	activityService := activityapp.NewService(activityRepo)
	analyticsService := adminapp.NewAnalyticsService(userRepo, foodRepo, activityRepo, analyticsRepo, log, analyticsOpts...)

	// Set Gin mode based on environment
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := middleware.SetupValidator(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer rateLimiter.Close()
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	api, err := router.New(router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Nutrition:  handler.NewNutritionHandler(entryService),
		Reports:    handler.NewReportHandler(reportService),
		Goals:      handler.NewGoalHandler(goalService),
		Foods:      handler.NewFoodHandler(foodService),
		Activities: handler.NewActivityHandler(activityService),
		Admin:      handler.NewAdminHandler(userService, goalService, analyticsService),
		WebSocket:  handler.NewWebSocketHandler(hub),
		Health:     handler.NewHealthHandler(db, cacheCheck, version),
	}, router.Options{
		Logger:           log,
		ServiceName:      cfg.Telemetry.ServiceName,
		TracingEnabled:   tracerProvider.IsEnabled(),
		ProfilingEnabled: cfg.Telemetry.ProfilingEnabled,
		Meter:            httpMeter,
		CORS:             middleware.CORSConfigFromHTTP(cfg.HTTP),
		Security:         middleware.DefaultSecurityConfig(),
		MaxBodyBytes:     cfg.HTTP.MaxBodySize,
		RateLimiter:      rateLimiter,
		Tokens:           jwtService,
		Blacklist:        blacklist,
		Swagger:          cfg.Swagger,
	})
	if err != nil {
		log.Fatal("Failed to build router", zap.Error(err))
	}

	// Create HTTP server with config
	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      api,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Warn("Error stopping profiler", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Error flushing metrics", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Error flushing traces", zap.Error(err))
	}
	if err := logProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Error flushing logs", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// runMigrations brings the schema to the latest embedded version
func runMigrations(cfg config.DatabaseConfig, log *zap.Logger) error {
	conn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return err
	}
	m, err := migration.New(conn, migration.FromFS(migrations.FS), log)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer func() { _ = m.Close() }()
	return m.Up()
}
