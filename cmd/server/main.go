package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alacartapr/catalog-api/internal/config"
	"github.com/alacartapr/catalog-api/internal/database"
	"github.com/alacartapr/catalog-api/internal/handler"
	"github.com/alacartapr/catalog-api/internal/middleware"
	"github.com/alacartapr/catalog-api/internal/queue"
	"github.com/alacartapr/catalog-api/internal/repository"
	"github.com/alacartapr/catalog-api/internal/router"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	// The operating region's civil timezone; every availability
	// derivation resolves "now" against it.
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("load timezone %q failed: %v", cfg.Timezone, err)
	}

	restaurantRepo := repository.NewRestaurantRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	hoursRepo := repository.NewHoursRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	galleryRepo := repository.NewGalleryRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	publicHandler := handler.NewPublicHandler(restaurantRepo, categoryRepo, hoursRepo,
		locationRepo, galleryRepo, loc, cfg.ListingLimit)
	adminHandler := handler.NewAdminHandler(restaurantRepo, categoryRepo, hoursRepo,
		locationRepo, galleryRepo)

	// Redis backs the public response cache and rate limiter.  A nil
	// client disables both; the site still works, just without them.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}
	publicMW := []echo.MiddlewareFunc{
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	}

	// Background consumer appending restaurant.published events to the
	// log file.  It reconnects on its own and never stops the server.
	go func() {
		if err := queue.StartPublishConsumer(); err != nil {
			log.Printf("publish consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, publicHandler, publicMW...)
	router.RegisterAdmin(e, adminHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, tz=%s)", addr, cfg.Env, cfg.Timezone)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
