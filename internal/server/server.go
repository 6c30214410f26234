package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chat-platform/internal/middleware"
	"chat-platform/internal/transport/httpdto"
	"chat-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

// Server wraps a gin engine with the common middleware chain and graceful
// shutdown. Each service binary mounts its own routes on Engine().
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	port       string
	logger     *logger.Logger
}

func New(mode, port string, l *logger.Logger) *Server {
	switch mode {
	case ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.LoggingMiddleware(l))
	engine.Use(middleware.ErrorHandler(l))

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: engine,
		},
		engine: engine,
		port:   port,
		logger: l,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// MountHealth exposes /ping and /health; check may be nil.
func (s *Server) MountHealth(check func() error) {
	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.Success(gin.H{"message": "pong"}, ""))
	})
	s.engine.GET("/health", func(c *gin.Context) {
		if check != nil {
			if err := check(); err != nil {
				c.JSON(http.StatusServiceUnavailable, httpdto.Failure(err.Error()))
				return
			}
		}
		c.JSON(http.StatusOK, httpdto.Success(gin.H{"status": "healthy"}, ""))
	})
}

// Start serves until SIGINT/SIGTERM, then shuts down with a 5s grace period.
func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.port)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Errorf("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}
	return nil
}

// StartHandler is Start for plain http.Handler services (the gateway).
func StartHandler(handler http.Handler, port string, l *logger.Logger) error {
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: handler,
	}

	go func() {
		if l != nil {
			l.Infof("Starting the server on port %s...", port)
		}
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if l != nil {
				l.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	return httpServer.Shutdown(ctx)
}
