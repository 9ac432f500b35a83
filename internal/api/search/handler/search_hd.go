package searchHandler

import (
	"AIShopService/internal/api/search"
	"AIShopService/internal/entity"
	contextPkg "AIShopService/pkg/context"
	"AIShopService/pkg/handlerUtil"
	"AIShopService/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *SearchHandler) SmartSearch(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing smart search request")

	var req search.SmartSearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if req.Limit == 0 {
		req.Limit = search.DefaultLimit
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	results, err := h.searchService.SemanticSearch(c, req.Query, h.catalog.Products(), req.Limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "smart_search")
	}

	products := make([]entity.Product, 0, len(results))
	for _, r := range results {
		products = append(products, r.Product)
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, search.SmartSearchResponse{
			Results:    products,
			Total:      len(products),
			Query:      req.Query,
			SearchType: search.SearchType,
		})
	}
}
