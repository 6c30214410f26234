package main

import (
	"os"

	"chat-platform/config"
	"chat-platform/internal/domain/chat"
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
	if err := db.AutoMigrate(&chat.Chat{}); err != nil {
		l.Errorf("failed to migrate: %s", err)
		os.Exit(1)
	}

	tokens := services.NewTokenManager(cfg)
	chatService := services.NewChatService(db, repository.NewChatRepository(db))
	chatHandler := handler.NewChatHandler(chatService)

	srv := server.New(cfg.AppMode, cfg.ChatsPort, l)
	srv.MountHealth(func() error { return database.HealthCheck(db) })

	chats := srv.Engine().Group("/api/chats", middleware.AuthMiddleware(tokens))
	{
		chats.GET("", middleware.RequireRole(user.AdminRole), chatHandler.List)
		chats.POST("", chatHandler.Create)
		chats.GET("/by-user/:userId", chatHandler.ListByUser)
		chats.GET("/:id", chatHandler.GetByID)
		chats.PUT("/:id", chatHandler.Update)
		chats.DELETE("/:id", chatHandler.Remove)
		chats.POST("/:id/attach-user", chatHandler.AttachUser)
		chats.POST("/:id/detach-user", chatHandler.DetachUser)
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
