package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/chronicle/api/internal/config"
	"github.com/forgo/chronicle/api/internal/database"
	"github.com/forgo/chronicle/api/internal/handler"
	"github.com/forgo/chronicle/api/internal/middleware"
	"github.com/forgo/chronicle/api/internal/repository"
	"github.com/forgo/chronicle/api/internal/service"
	"github.com/forgo/chronicle/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	questRepo := repository.NewQuestRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	// Initialize services
	authService := service.NewAuthService(accountRepo, jwtService)
	accountService := service.NewAccountService(accountRepo)
	campaignService := service.NewCampaignService(campaignRepo, questRepo, locationRepo)
	questService := service.NewQuestService(campaignRepo, questRepo)
	locationService := service.NewLocationService(campaignRepo, locationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	campaignHandler := handler.NewCampaignHandler(campaignService)
	questHandler := handler.NewQuestHandler(questService)
	locationHandler := handler.NewLocationHandler(locationService)

	pageHandler, err := handler.NewPageHandler()
	if err != nil {
		slog.Error("failed to load page templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up routes
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.Health(db))

	// Auth endpoints
	mux.HandleFunc("POST /signup", authHandler.Signup)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("GET /logout", authHandler.Logout)

	// Auth middleware for protected routes
	authMiddleware := middleware.Auth(authService)

	// Account endpoints
	mux.Handle("GET /account/data", authMiddleware(http.HandlerFunc(accountHandler.Get)))
	mux.Handle("POST /account/changePassword", authMiddleware(http.HandlerFunc(accountHandler.ChangePassword)))
	mux.Handle("POST /account/togglePremium", authMiddleware(http.HandlerFunc(accountHandler.TogglePremium)))

	// Campaign endpoints
	mux.Handle("GET /api/campaigns", authMiddleware(http.HandlerFunc(campaignHandler.List)))
	mux.Handle("POST /api/campaigns", authMiddleware(http.HandlerFunc(campaignHandler.Create)))
	mux.Handle("POST /api/campaigns/delete", authMiddleware(http.HandlerFunc(campaignHandler.Delete)))

	// Quest endpoints
	mux.Handle("GET /api/quests", authMiddleware(http.HandlerFunc(questHandler.List)))
	mux.Handle("POST /api/quests", authMiddleware(http.HandlerFunc(questHandler.Create)))
	mux.Handle("POST /api/quests/delete", authMiddleware(http.HandlerFunc(questHandler.Delete)))

	// Location endpoints
	mux.Handle("GET /api/locations", authMiddleware(http.HandlerFunc(locationHandler.List)))
	mux.Handle("POST /api/locations", authMiddleware(http.HandlerFunc(locationHandler.Create)))
	mux.Handle("POST /api/locations/delete", authMiddleware(http.HandlerFunc(locationHandler.Delete)))

	// Pages
	mux.HandleFunc("GET /{$}", pageHandler.Login)
	mux.HandleFunc("GET /login", pageHandler.Login)
	mux.Handle("GET /app", authMiddleware(http.HandlerFunc(pageHandler.App)))
	mux.HandleFunc("/", pageHandler.NotFound)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
