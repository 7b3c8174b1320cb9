package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/sgould/authcore/internal/config"
	"github.com/sgould/authcore/internal/database"
	"github.com/sgould/authcore/internal/handler"
	"github.com/sgould/authcore/internal/interfaces"
	"github.com/sgould/authcore/internal/middleware"
	"github.com/sgould/authcore/internal/password"
	"github.com/sgould/authcore/internal/repository"
	"github.com/sgould/authcore/internal/service"
	"github.com/sgould/authcore/internal/token"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}

	// Select the account store: Postgres when a database is configured, the
	// in-memory store otherwise.
	var store interfaces.AccountStore
	if cfg.DbURL != "" {
		db, err := database.New(cfg.DbURL)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		store = repository.NewAccountRepository(db)
		logger.Info("Using PostgreSQL account store")
	} else {
		store = repository.NewMemoryStore()
		logger.Warn("DATABASE_URL not set; accounts are held in memory and lost on restart")
	}

	// Assemble the auth service and its HTTP surface
	hasher := password.NewBcryptHasher(cfg.BcryptCost)
	codec := token.NewCodec(cfg.JwtSecret)
	authService := service.NewAuthService(store, hasher, codec, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authService, cfg.CookieName)

	// Create router with middleware
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RateLimiter())

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Credential routes with strict rate limiting
	r.Group(func(r chi.Router) {
		r.Use(middleware.StrictRateLimiter())
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimiter())
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/auth/me", authHandler.CurrentUser)
	})

	// Create server with timeouts
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.WithFields(logrus.Fields{
			"port":      cfg.Port,
			"token_ttl": cfg.TokenTTL.String(),
		}).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited properly")
}
