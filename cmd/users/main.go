package main

import (
	"os"

	"chat-platform/config"
	"chat-platform/internal/domain/user"
	"chat-platform/internal/handler"
	"chat-platform/internal/middleware"
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

	tokens := services.NewTokenManager(cfg)
	userService := services.NewUserService(repository.NewUserRepository(db))
	userHandler := handler.NewUserHandler(userService)

	srv := server.New(cfg.AppMode, cfg.UsersPort, l)
	srv.MountHealth(func() error { return database.HealthCheck(db) })

	users := srv.Engine().Group("/api/users", middleware.AuthMiddleware(tokens))
	{
		users.GET("", userHandler.List)
		users.GET("/search", userHandler.Search)
		users.GET("/:id", userHandler.GetByID)
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
