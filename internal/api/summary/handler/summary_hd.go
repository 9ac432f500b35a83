package summaryHandler

import (
	"AIShopService/internal/api/summary"
	contextPkg "AIShopService/pkg/context"
	"AIShopService/pkg/handlerUtil"
	"AIShopService/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *SummaryHandler) GenerateSummary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing product summary request")

	var req summary.ProductSummaryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.summaryService.GenerateSummary(c, req.ProductData)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "generate_summary")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, summary.ProductSummaryResponse{
			ProductID:   req.ProductID,
			Summary:     result.Summary,
			KeyFeatures: result.KeyFeatures,
			BestFor:     result.BestFor,
		})
	}
}
