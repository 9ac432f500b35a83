package middleware

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// NewCORSMiddleware allows the local dev frontends plus whatever
// FRONTEND_URL / BACKEND_URL point at in deployment.
func NewCORSMiddleware() fiber.Handler {
	origins := []string{
		"http://localhost:3000",
		"http://localhost:3001",
	}

	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		origins = append(origins, frontend)
	}
	if backend := os.Getenv("BACKEND_URL"); backend != "" {
		origins = append(origins, backend)
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Request-ID",
	})
}
