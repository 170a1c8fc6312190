package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORSMiddleware sets permissive CORS headers on every response and
// answers preflight OPTIONS requests with 200 directly, before auth or
// routing logic runs.
func CORSMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}

		return next(c)
	}
}
