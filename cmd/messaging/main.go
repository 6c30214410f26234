package main

import (
	"context"
	"os"
	"time"

	"chat-platform/config"
	"chat-platform/internal/domain/message"
	"chat-platform/internal/domain/upload"
	"chat-platform/internal/handler"
	"chat-platform/internal/middleware"
	appredis "chat-platform/internal/redis"
	"chat-platform/internal/repository"
	"chat-platform/internal/server"
	"chat-platform/internal/services"
	"chat-platform/internal/storage"
	"chat-platform/internal/websocket"
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
	if err := db.AutoMigrate(&message.Message{}, &upload.Session{}); err != nil {
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
	chatService := services.NewChatService(db, repository.NewChatRepository(db))
	messageService := services.NewMessageService(
		repository.NewMessageRepository(db),
		appredis.NewPublisher(redisClient),
		l,
	)
	messageHandler := handler.NewMessageHandler(messageService)

	var uploadService *services.UploadService
	if cfg.S3Bucket != "" {
		s3Client, err := storage.NewClient(context.Background(), storage.S3Config{
			Region:     cfg.S3Region,
			Bucket:     cfg.S3Bucket,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			Endpoint:   cfg.S3Endpoint,
			PresignTTL: time.Duration(cfg.S3PresignTTL) * time.Minute,
		})
		if err != nil {
			l.Errorf("failed to configure attachment storage: %s", err)
			os.Exit(1)
		}
		uploadService = services.NewUploadService(repository.NewUploadRepository(db), s3Client)
	} else {
		uploadService = services.NewUploadService(repository.NewUploadRepository(db), nil)
	}
	uploadHandler := handler.NewUploadHandler(uploadService)

	hub := websocket.NewHub()
	wsHandler := websocket.NewHandler(tokens, chatService, messageService, hub, l)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bridge := websocket.NewRedisBridge(appredis.NewSubscriber(redisClient), hub)
	go func() {
		if err := bridge.Run(ctx, []string{"chat:*"}); err != nil && ctx.Err() == nil {
			l.Errorf("redis bridge stopped: %s", err)
		}
	}()

	srv := server.New(cfg.AppMode, cfg.MessagingPort, l)
	srv.MountHealth(func() error { return database.HealthCheck(db) })

	messages := srv.Engine().Group("/api/messages", middleware.AuthMiddleware(tokens))
	{
		messages.GET("/:chatId", messageHandler.ListByChat)
		messages.POST("/:chatId", middleware.MessageRateLimitMiddleware(limiter), messageHandler.Add)
		messages.PUT("/:chatId/:messageId", messageHandler.Update)
		messages.DELETE("/:chatId/:messageId", messageHandler.Delete)
	}

	uploads := srv.Engine().Group("/api/uploads", middleware.AuthMiddleware(tokens))
	{
		uploads.POST("/presign", uploadHandler.Presign)
		uploads.POST("/:id/complete", uploadHandler.Complete)
	}

	srv.Engine().GET("/ws/chat", wsHandler.Connect)

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
