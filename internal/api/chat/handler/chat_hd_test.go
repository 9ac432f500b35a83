package chatHandler

import (
	"AIShopService/internal/api/chat"
	chatService "AIShopService/internal/api/chat/service"
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

	h := New(logger, validator.New(), m, chatService.New(logger))
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

func TestChatEndpointEchoesUserAndSuggestsAction(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/chat", `{"user_id":"u1","message":"can you help me find headphones"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body chat.ConversationalResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "u1", body.UserID)
	assert.Equal(t, "I'll help you find the perfect product. What are you looking for?", body.Response)
	require.NotNil(t, body.NextAction)
	assert.Equal(t, "search", *body.NextAction)
}

func TestChatEndpointHelpHasNoNextAction(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/chat", `{"user_id":"u1","message":"how does shipping work"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body chat.ConversationalResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.NextAction)
}

func TestChatEndpointRequiresMessage(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/chat", `{"user_id":"u1"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
