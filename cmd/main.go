package main

import (
	"context"
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

	"github.com/hirehub/internship-portal/internal/handlers"
	"github.com/hirehub/internship-portal/internal/jwt"
	"github.com/hirehub/internship-portal/internal/logger"
	"github.com/hirehub/internship-portal/internal/middlewares"
	"github.com/hirehub/internship-portal/internal/models"
	"github.com/hirehub/internship-portal/internal/repositories"
	"github.com/hirehub/internship-portal/internal/repositories/migrations"
	"github.com/hirehub/internship-portal/internal/services"
	"github.com/hirehub/internship-portal/internal/uploads"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Internship Application Portal API
// @version 1.0.0
// @description REST API for managing internship applications between students and faculty
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		jwtSecret, jwtExp,
		uploadDir, storageDriver,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		jwtSecret, jwtExp,
		uploadDir, storageDriver,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, JWT, upload, and storage configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	uploadDir, storageDriver string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// JWT config, tokens are valid for 24 hours by default
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "your-super-secret-jwt-key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Upload config
	uploadDir = getEnv("UPLOAD_DIR", "uploads")

	// Storage config; memory is the default, postgres is opt-in
	storageDriver = getEnv("STORAGE_DRIVER", "memory")
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	return
}

// run initializes the logger, storage, upload store, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	uploadDir, storageDriver string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Select storage
	var (
		accountReader services.AccountReader
		accountWriter services.AccountWriter
		listingReader services.ListingReader
		listingWriter services.ListingWriter
		appReader     services.ApplicationReader
		appWriter     services.ApplicationWriter
	)
	switch storageDriver {
	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			pgUser, pgPassword, pgHost, pgPort, pgDB)
		logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			logger.Log.Fatal("PostgreSQL connection error:", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(pgMaxOpenConns)
		db.SetMaxIdleConns(pgMaxIdleConns)
		if err := migrations.Up(db.DB); err != nil {
			logger.Log.Fatal("PostgreSQL migration error:", err)
		}

		accountRepo := repositories.NewAccountPostgresRepository(db)
		listingRepo := repositories.NewListingPostgresRepository(db)
		applicationRepo := repositories.NewApplicationPostgresRepository(db)
		accountReader, accountWriter = accountRepo, accountRepo
		listingReader, listingWriter = listingRepo, listingRepo
		appReader, appWriter = applicationRepo, applicationRepo
	default:
		logger.Log.Info("Using in-memory storage (data will be lost on restart)")

		accountRepo := repositories.NewAccountMemoryRepository()
		listingRepo := repositories.NewListingMemoryRepository()
		applicationRepo := repositories.NewApplicationMemoryRepository()
		accountReader, accountWriter = accountRepo, accountRepo
		listingReader, listingWriter = listingRepo, listingRepo
		appReader, appWriter = applicationRepo, applicationRepo
	}

	// Initialize upload store
	resumeStore, err := uploads.NewStore(uploadDir)
	if err != nil {
		logger.Log.Fatal("upload store error:", err)
	}

	// Initialize JWT service
	tokens := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(accountReader, accountWriter, tokens)
	listingService := services.NewListingService(listingReader, listingWriter)
	applicationService := services.NewApplicationService(appReader, appWriter, listingReader, accountReader)
	notificationService := services.NewNotificationService()

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	createInternshipHandler := handlers.NewCreateInternshipHandler(listingService)
	listInternshipsHandler := handlers.NewListInternshipsHandler(listingService)
	getInternshipHandler := handlers.NewGetInternshipHandler(listingService)
	applyHandler := handlers.NewApplyHandler(applicationService, resumeStore)
	listApplicationsHandler := handlers.NewListApplicationsHandler(applicationService)
	updateStatusHandler := handlers.NewUpdateApplicationStatusHandler(applicationService)
	notifyHandler := handlers.NewEmailNotificationHandler(notificationService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.CORSMiddleware)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/", handlers.NewRootHandler(buildVersion))
	r.Get("/health", handlers.NewHealthHandler())
	r.Post("/api/auth/register", registerHandler)
	r.Post("/api/auth/login", loginHandler)
	r.Get("/api/internships", listInternshipsHandler)
	r.Get("/api/internships/{id}", getInternshipHandler)
	r.Post("/api/notifications/email", notifyHandler)

	// Protected routes
	authMiddleware := middlewares.AuthMiddleware(tokens)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(middlewares.RequireRole(models.RoleFaculty))
		r.Post("/api/internships", createInternshipHandler)
		r.Get("/api/internships/{id}/applications", listApplicationsHandler)
		r.Patch("/api/applications/{id}", updateStatusHandler)
	})
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(middlewares.RequireRole(models.RoleStudent))
		r.Post("/api/applications", applyHandler)
	})

	// Stored resumes, served by generated path only
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(resumeStore.Dir()))))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
