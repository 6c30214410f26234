package main

import (
	"os"

	"chat-platform/config"
	"chat-platform/internal/gateway"
	"chat-platform/internal/server"
	"chat-platform/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()
	l := newLogger(cfg)

	gw, err := gateway.New([]gateway.Route{
		{Prefix: "/api/auth", Upstream: cfg.AuthURL},
		{Prefix: "/api/users", Upstream: cfg.UsersURL},
		{Prefix: "/api/chats", Upstream: cfg.ChatsURL},
		{Prefix: "/api/messages", Upstream: cfg.MessagingURL},
		{Prefix: "/api/uploads", Upstream: cfg.MessagingURL},
		{Prefix: "/ws", Upstream: cfg.MessagingURL},
	}, l)
	if err != nil {
		l.Errorf("failed to build gateway: %s", err)
		os.Exit(1)
	}

	if err := server.StartHandler(gw, cfg.GatewayPort, l); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *logger.Logger {
	if cfg.AppMode == server.ReleaseMode {
		return logger.New(logger.ProductionMode)
	}
	return logger.New(logger.DevelopmentMode)
}
