package summaryHandler

import (
	summaryService "AIShopService/internal/api/summary/service"
	"AIShopService/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SummaryHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	summaryService summaryService.ISummaryService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ss summaryService.ISummaryService,
) *SummaryHandler {
	return &SummaryHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		summaryService: ss,
	}
}

func (h *SummaryHandler) Start(srv fiber.Router) {
	srv.Post("/summary", h.GenerateSummary)
}
