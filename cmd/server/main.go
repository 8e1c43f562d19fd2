package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JJB64/IntelliPark/internal/config"
	"github.com/JJB64/IntelliPark/internal/db"
	transport "github.com/JJB64/IntelliPark/internal/http"
	"github.com/JJB64/IntelliPark/internal/http/middleware"
	"github.com/JJB64/IntelliPark/internal/repo"
	"github.com/JJB64/IntelliPark/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(context.Background())

	if err := db.EnsureIndexes(ctx, database.Database, cfg.RequestTimeout); err != nil {
		logger.Error("failed to ensure indexes", "error", err)
		os.Exit(1)
	}

	userRepo := repo.NewUserRepo(database.Database, cfg.RequestTimeout)
	vehicleRepo := repo.NewVehicleRepo(database.Database, cfg.RequestTimeout)
	passRepo := repo.NewPassRepo(database.Database, cfg.RequestTimeout)
	locationRepo := repo.NewLocationRepo(database.Database, cfg.RequestTimeout)

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenExpiry)
	authService := services.NewAuthService(userRepo, tokenService, cfg.PasswordMinLen)
	userService := services.NewUserService(userRepo)
	vehicleService := services.NewVehicleService(vehicleRepo)
	passService := services.NewPassService(passRepo)
	locationService := services.NewLocationService(locationRepo)

	router := transport.NewRouter(transport.Dependencies{
		Config:      cfg,
		Tokens:      tokenService,
		Auth:        authService,
		Users:       userService,
		Vehicles:    vehicleService,
		Passes:      passService,
		Locations:   locationService,
		Logger:      logger,
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimitPerMinute),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.RequestTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErrors:
		logger.Error("http server stopped unexpectedly", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env != "prod" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
