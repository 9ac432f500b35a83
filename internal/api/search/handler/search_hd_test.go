package searchHandler

import (
	"AIShopService/internal/api/search"
	searchService "AIShopService/internal/api/search/service"
	"AIShopService/internal/catalog"
	"AIShopService/internal/middleware"
	"AIShopService/pkg/tfidf"
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

	h := New(
		logger,
		validator.New(),
		m,
		catalog.NewStaticProvider(catalog.SampleProducts()),
		searchService.New(logger, tfidf.NewEngine(logger)),
	)
	h.Start(app.Group("/api/v1"))

	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSmartSearchEndpoint(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/search", `{"query":"wireless headphones"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body search.SmartSearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "semantic", body.SearchType)
	assert.Equal(t, "wireless headphones", body.Query)
	assert.Equal(t, len(body.Results), body.Total)
	require.NotEmpty(t, body.Results)
	assert.Equal(t, "p1", body.Results[0].ID)
}

func TestSmartSearchRejectsMissingQuery(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/search", `{"limit":5}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestSmartSearchRejectsOversizedLimit(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/search", `{"query":"camera","limit":500}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSmartSearchNoResults(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/search", `{"query":"bicycle"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body search.SmartSearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Zero(t, body.Total)
	assert.Empty(t, body.Results)
}
