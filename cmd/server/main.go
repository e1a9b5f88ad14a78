package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"filedrive/internal/auth"
	"filedrive/internal/config"
	"filedrive/internal/handler"
	"filedrive/internal/middleware"
	"filedrive/internal/repository/postgres"
	"filedrive/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	sharingPolicy, err := config.LoadSharingPolicy()
	if err != nil {
		log.Fatalf("Failed to load sharing policy: %v", err)
	}

	tokens, err := auth.NewHMACTokenManager(cfg.JWTSecret, cfg.TokenTTL, logger)
	if err != nil {
		log.Fatalf("Failed to create token manager: %v", err)
	}

	ctx := context.Background()

	if err := postgres.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	folderRepo := postgres.NewFolderRepository(repoConfig)
	fileRepo := postgres.NewFileRepository(repoConfig)

	// Create services
	authService := service.NewAuthService(userRepo, tokens, logger)
	folderService := service.NewFolderService(folderRepo, fileRepo, sharingPolicy, logger)

	// Create handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	folderHandler := handler.NewFolderHandler(folderService, logger)

	logger.Info("services initialized")

	requireAuth := middleware.RequireAuth(tokens, logger)
	optionalAuth := middleware.OptionalAuth(tokens)

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Auth routes
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /api/auth/me", requireAuth(http.HandlerFunc(authHandler.Me)))

	// Folder routes. The GET-by-id and breadcrumbs endpoints take optional
	// auth so shared-link visitors without an account can reach them;
	// everything else requires a valid token.
	mux.Handle("GET /api/folders/root", requireAuth(http.HandlerFunc(folderHandler.GetRootFolder)))
	mux.Handle("GET /api/folders/tree", requireAuth(http.HandlerFunc(folderHandler.GetFolderTree)))
	mux.Handle("GET /api/folders/{id}", optionalAuth(http.HandlerFunc(folderHandler.GetFolder)))
	mux.Handle("GET /api/folders/{id}/breadcrumbs", optionalAuth(http.HandlerFunc(folderHandler.GetBreadcrumbs)))
	mux.Handle("POST /api/folders", requireAuth(http.HandlerFunc(folderHandler.CreateFolder)))
	mux.Handle("PUT /api/folders/{id}", requireAuth(http.HandlerFunc(folderHandler.RenameFolder)))
	mux.Handle("DELETE /api/folders/{id}", requireAuth(http.HandlerFunc(folderHandler.DeleteFolder)))
	mux.Handle("POST /api/folders/{id}/share", requireAuth(http.HandlerFunc(folderHandler.ShareFolder)))

	// Build middleware chain: CORS → Recovery → Routes
	var root http.Handler = mux
	root = middleware.Recovery(logger)(root)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
