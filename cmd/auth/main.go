package main

import (
	"os"

	"chat-platform/config"
	"chat-platform/internal/domain/user"
	"chat-platform/internal/handler"
	"chat-platform/internal/middleware"
	appredis "chat-platform/internal/redis"
	"chat-platform/internal/repository"
	"chat-platform/internal/server"
	"chat-platform/internal/services"
	"chat-platform/pkg/database"
	"chat-platform/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()
	l := newLogger(cfg)

	db, err := database.Connect(cfg)
	if err != nil {
		l.Errorf("failed to connect to database: %s", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&user.User{}, &user.Role{}); err != nil {
		l.Errorf("failed to migrate: %s", err)
		os.Exit(1)
	}

	redisClient := appredis.NewClient(appredis.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	limiter := appredis.NewRateLimiter(redisClient, appredis.DefaultRateLimitConfig())

	tokens := services.NewTokenManager(cfg)
	authService := services.NewAuthService(repository.NewUserRepository(db), tokens)
	authHandler := handler.NewAuthHandler(authService)

	srv := server.New(cfg.AppMode, cfg.AuthPort, l)
	srv.MountHealth(func() error { return database.HealthCheck(db) })

	auth := srv.Engine().Group("/api/auth")
	{
		auth.POST("/register", middleware.AuthRateLimitMiddleware(limiter), authHandler.Register)
		auth.POST("/login", middleware.AuthRateLimitMiddleware(limiter), authHandler.Login)
		auth.POST("/assign-role",
			middleware.AuthMiddleware(tokens),
			middleware.RequireRole(user.AdminRole),
			authHandler.AssignRole)
	}

	if err := srv.Start(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *logger.Logger {
	if cfg.AppMode == server.ReleaseMode {
		return logger.New(logger.ProductionMode)
	}
	return logger.New(logger.DevelopmentMode)
}
