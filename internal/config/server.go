package config

import (
	chatHandler "AIShopService/internal/api/chat/handler"
	chatService "AIShopService/internal/api/chat/service"
	recommendationHandler "AIShopService/internal/api/recommendation/handler"
	recommendationService "AIShopService/internal/api/recommendation/service"
	searchHandler "AIShopService/internal/api/search/handler"
	searchService "AIShopService/internal/api/search/service"
	summaryHandler "AIShopService/internal/api/summary/handler"
	summaryService "AIShopService/internal/api/summary/service"
	"AIShopService/internal/catalog"
	"AIShopService/internal/middleware"
	"AIShopService/pkg/tfidf"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Version is reported by the health endpoint and the root banner.
const Version = "0.1.0"

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	catalog    catalog.Provider
	handlers   []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.catalog == nil {
		return nil, fmt.Errorf("catalog provider is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithCatalog(provider catalog.Provider) ServerOption {
	return func(s *Server) error {
		s.catalog = provider
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Recommendations
	recommendationServices := recommendationService.New(s.log)
	recommendationHandlers := recommendationHandler.New(s.log, s.validator, s.middleware, s.catalog, recommendationServices)

	// Semantic search
	rankingEngine := tfidf.NewEngine(s.log)
	searchServices := searchService.New(s.log, rankingEngine)
	searchHandlers := searchHandler.New(s.log, s.validator, s.middleware, s.catalog, searchServices)

	// Product summaries
	summaryServices := summaryService.New(s.log)
	summaryHandlers := summaryHandler.New(s.log, s.validator, s.middleware, summaryServices)

	// Conversational shopping
	chatServices := chatService.New(s.log)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, recommendationHandlers, searchHandlers, summaryHandlers, chatHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewCORSMiddleware())
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "AI Enhanced Premium Shopping Experience - AI Service",
			"version": Version,
			"endpoints": []string{
				"/api/v1/health",
				"/api/v1/recommend",
				"/api/v1/search",
				"/api/v1/summary",
				"/api/v1/chat",
			},
		})
	})

	s.engine.Get("/api/v1/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":  "healthy",
			"version": Version,
		})
	})
}
