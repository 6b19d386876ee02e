package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "linkup/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"linkup/internal/auth"
	"linkup/internal/cache"
	"linkup/internal/config"
	"linkup/internal/db"
	"linkup/internal/handler"
	"linkup/internal/model"
	"linkup/internal/repository"
	"linkup/internal/router"
	"linkup/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Linkup API
// @version 1.0
// @description Social feed API with JWT authentication, posts, likes, and user search.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Like{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	likeRepo := repository.NewLikeRepository(gormDB)

	// Initialize auth and services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, postRepo, cacheClient)
	postService := service.NewPostService(postRepo, likeRepo, userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, userService)
	postHandler := handler.NewPostHandler(postService)
	userHandler := handler.NewUserHandler(userService, postService)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, jwtService, authHandler, postHandler, userHandler)

	go func() {
		addr := ":" + cfg.ServerPort
		log.Printf("Server running on port %s", cfg.ServerPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	// Drain in-flight requests on SIGINT/SIGTERM before releasing the pool.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutdown signal received, draining requests")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := db.Close(gormDB); err != nil {
		log.Printf("database close: %v", err)
	}
	if err := cacheClient.Close(); err != nil {
		log.Printf("cache close: %v", err)
	}
}
