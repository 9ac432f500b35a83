package searchHandler

import (
	searchService "AIShopService/internal/api/search/service"
	"AIShopService/internal/catalog"
	"AIShopService/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SearchHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	catalog       catalog.Provider
	searchService searchService.ISearchService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	catalogProvider catalog.Provider,
	ss searchService.ISearchService,
) *SearchHandler {
	return &SearchHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		catalog:       catalogProvider,
		searchService: ss,
	}
}

func (h *SearchHandler) Start(srv fiber.Router) {
	srv.Post("/search", h.SmartSearch)
}
