package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sbilibin2017/covid19-portal/internal/docs"
	"github.com/sbilibin2017/covid19-portal/internal/handlers"
	"github.com/sbilibin2017/covid19-portal/internal/jwt"
	"github.com/sbilibin2017/covid19-portal/internal/logger"
	"github.com/sbilibin2017/covid19-portal/internal/metrics"
	"github.com/sbilibin2017/covid19-portal/internal/middlewares"
	"github.com/sbilibin2017/covid19-portal/internal/migrations"
	"github.com/sbilibin2017/covid19-portal/internal/repositories"
	"github.com/sbilibin2017/covid19-portal/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

var errMissingJWTSecret = errors.New("JWT_SECRET_KEY is required")

// config holds everything read from the environment at startup.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int
	PGMigrate      bool

	JWTSecretKey string
	JWTExpSecond int
}

// @title covid19-portal API
// @version 1.0.0
// @description Authenticated CRUD over states and districts with case statistics
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads the dotenv file at path, when present, and reads the configuration
// from the environment. JWT_SECRET_KEY has no default.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "covid19")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_PORT: %w", err)
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_MAX_IDLE_CONNS: %w", err)
	}
	if cfg.PGMigrate, err = strconv.ParseBool(getEnv("POSTGRES_MIGRATE", "true")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_MIGRATE: %w", err)
	}

	// JWT
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "")
	if cfg.JWTSecretKey == "" {
		return cfg, errMissingJWTSecret
	}
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "10800")); err != nil {
		return cfg, fmt.Errorf("JWT_EXP_SECOND: %w", err)
	}
	if cfg.JWTExpSecond <= 0 {
		return cfg, fmt.Errorf("JWT_EXP_SECOND must be positive, got %d", cfg.JWTExpSecond)
	}

	return cfg, nil
}

// run initializes the logger, database, migrations and HTTP server.
// It blocks until ctx is cancelled or a termination signal arrives, then shuts down gracefully.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if cfg.PGMigrate {
		if err := migrations.Run(ctx, db.DB); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		logger.Log.Info("Migrations applied")
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	addr := fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	docs.SwaggerInfo.Host = addr

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(db, tokens, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers over db and returns the HTTP routes.
// Every route except login, health, metrics and swagger requires a bearer token.
func newRouter(db *sqlx.DB, tokens *jwt.JWT, reg *prometheus.Registry) http.Handler {
	// Repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	stateReadRepo := repositories.NewStateReadRepository(db)
	districtReadRepo := repositories.NewDistrictReadRepository(db)
	districtWriteRepo := repositories.NewDistrictWriteRepository(db)

	// Services
	authService := services.NewAuthService(userReadRepo, tokens)
	stateService := services.NewStateService(stateReadRepo)
	districtService := services.NewDistrictService(districtReadRepo, districtWriteRepo)

	m := metrics.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware(m))

	// Public routes
	r.Post("/login", handlers.NewLoginHandler(authService))
	r.Get("/ping", handlers.NewPingHandler(db))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))

		r.Get("/states", handlers.NewListStatesHandler(stateService))
		r.Get("/states/{stateId}", handlers.NewGetStateHandler(stateService))
		r.Get("/states/{stateId}/stats", handlers.NewGetStateStatsHandler(stateService))

		r.Post("/districts", handlers.NewCreateDistrictHandler(districtService))
		r.Get("/districts/{districtId}", handlers.NewGetDistrictHandler(districtService))
		r.Put("/districts/{districtId}", handlers.NewUpdateDistrictHandler(districtService))
		r.Delete("/districts/{districtId}", handlers.NewDeleteDistrictHandler(districtService))
	})

	return r
}
