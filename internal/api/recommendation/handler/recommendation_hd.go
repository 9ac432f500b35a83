package recommendationHandler

import (
	"AIShopService/internal/api/recommendation"
	"AIShopService/internal/entity"
	contextPkg "AIShopService/pkg/context"
	"AIShopService/pkg/handlerUtil"
	"AIShopService/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *RecommendationHandler) GetRecommendations(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing recommendation request")

	var req recommendation.RecommendationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if req.Limit == 0 {
		req.Limit = recommendation.DefaultLimit
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	// No user store exists, so history is always empty here. A real
	// deployment fetches the user's interactions before scoring.
	history := []entity.InteractionRecord{}

	products, err := h.recommendationService.GetRecommendations(
		c, req.UserID, h.catalog.Products(), history, req.Limit, req.MinRating)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_recommendations")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, recommendation.RecommendationResponse{
			Products:  products,
			Total:     len(products),
			Algorithm: recommendation.Algorithm,
		})
	}
}
