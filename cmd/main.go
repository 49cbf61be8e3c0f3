package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/WilsonnnTan/auth-backend/config"
	"github.com/WilsonnnTan/auth-backend/db"
	"github.com/WilsonnnTan/auth-backend/internal/auth/handler"
	"github.com/WilsonnnTan/auth-backend/internal/auth/password"
	repo "github.com/WilsonnnTan/auth-backend/internal/auth/repository/postgres"
	"github.com/WilsonnnTan/auth-backend/internal/auth/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	hasher, err := password.NewHasher(cfg.BcryptCost)
	if err != nil {
		log.Fatalf("failed to initialise password hasher: %v", err)
	}

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(userRepo, cfg.AccessTokenSecret, cfg.AccessExpiryMin)
	userService := service.NewUserService(userRepo, tokenService, hasher)
	authHandler := handler.NewAuthHandler(userService, tokenService, logger)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
