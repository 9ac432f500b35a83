package summaryHandler

import (
	"AIShopService/internal/api/summary"
	summaryService "AIShopService/internal/api/summary/service"
	"AIShopService/internal/middleware"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	app := fiber.New()
	m := middleware.New(logger)
	app.Use(m.NewRequestIDMiddleware())

	h := New(logger, validator.New(), m, summaryService.New(logger))
	h.Start(app.Group("/api/v1"))

	return app
}

func TestSummaryEndpoint(t *testing.T) {
	app := newTestApp()

	payload := `{
		"product_id": "p1",
		"product_data": {
			"name": "Widget",
			"description": "Durable waterproof casing with shock absorption",
			"category": "Electronics"
		}
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/summary", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body summary.ProductSummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "p1", body.ProductID)
	assert.True(t, strings.HasPrefix(body.Summary, "Widget is a premium electronics product. "))
	assert.True(t, strings.HasSuffix(body.Summary, "..."))
	assert.Equal(t, "technology enthusiasts", body.BestFor)
	assert.Equal(t, []string{"Durable", "waterproof", "casing", "shock"}, body.KeyFeatures)
}

func TestSummaryEndpointRequiresProductData(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/summary", strings.NewReader(`{"product_id":"p1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
