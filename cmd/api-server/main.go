package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"myshelf/database"
	"myshelf/internal/config"
	"myshelf/internal/httpapi/cache"
	"myshelf/internal/httpapi/handler"
	"myshelf/internal/httpapi/middleware"
	"myshelf/internal/httpapi/repository"
	"myshelf/internal/httpapi/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	db, err := database.OpenGorm(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db, logger); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	progressCache, err := cache.NewProgressCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		// The API serves progress straight from Postgres without the cache.
		logger.Warn("progress cache unavailable", "error", err)
	}
	defer progressCache.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	bookRepo := repository.NewBookRepository(db)
	publisherRepo := repository.NewPublisherRepo(db)
	genreRepo := repository.NewGenreRepo(db)
	libraryRepo := repository.NewLibraryRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	preferencesRepo := repository.NewPreferencesRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	progressService := service.NewProgressService(progressRepo, bookRepo, progressCache, logger)
	bookService := service.NewBookService(bookRepo, publisherRepo, libraryRepo, wishlistRepo, progressRepo, reviewRepo)
	libraryService := service.NewLibraryService(libraryRepo, bookRepo, progressRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, bookRepo)
	reviewService := service.NewReviewService(reviewRepo, bookRepo)
	profileService := service.NewProfileService(profileRepo)
	preferencesService := service.NewPreferencesService(preferencesRepo, genreRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	bookHandler := handler.NewBookHandler(bookService, wishlistService, progressService, reviewService)
	libraryHandler := handler.NewLibraryHandler(libraryService)
	wishlistHandler := handler.NewWishlistHandler(wishlistService)
	profileHandler := handler.NewProfileHandler(profileService)
	preferencesHandler := handler.NewPreferencesHandler(preferencesService)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authHandler.RegisterRoutes(api.Group("/auth"))

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(authService))

	bookHandler.RegisterRoutes(authed.Group("/books"))
	bookHandler.RegisterReviewRoutes(authed.Group("/reviews"))
	bookHandler.RegisterPublisherRoutes(authed.Group("/publishers"))
	bookHandler.RegisterProgressRoutes(authed.Group("/progress"))
	libraryHandler.RegisterRoutes(authed.Group("/library"))
	wishlistHandler.RegisterRoutes(authed.Group("/wishlist"))
	profileHandler.RegisterRoutes(authed.Group("/profile"))
	preferencesHandler.RegisterRoutes(authed.Group("/preferences"))
	preferencesHandler.RegisterGenreRoutes(authed.Group("/genres"))

	search := authed.Group("/search")
	search.Use(middleware.RateLimit(cfg.SearchRatePerSec, cfg.SearchRateBurst))
	bookHandler.RegisterSearchRoutes(search)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting_api_server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info("received_shutdown_signal")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown_error", "error", err.Error())
		}
		logger.Info("server_stopped_gracefully")
	case err := <-errChan:
		logger.Error("server_error", "error", err.Error())
		os.Exit(1)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
