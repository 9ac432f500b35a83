package recommendationHandler

import (
	recommendationService "AIShopService/internal/api/recommendation/service"
	"AIShopService/internal/catalog"
	"AIShopService/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RecommendationHandler struct {
	log                   *logrus.Logger
	validator             *validator.Validate
	middleware            middleware.Middleware
	catalog               catalog.Provider
	recommendationService recommendationService.IRecommendationService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	catalogProvider catalog.Provider,
	rs recommendationService.IRecommendationService,
) *RecommendationHandler {
	return &RecommendationHandler{
		log:                   log,
		validator:             validate,
		middleware:            middleware,
		catalog:               catalogProvider,
		recommendationService: rs,
	}
}

func (h *RecommendationHandler) Start(srv fiber.Router) {
	srv.Post("/recommend", h.GetRecommendations)
}
