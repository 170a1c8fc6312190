package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/jwtutil"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/logger"
	"github.com/ramyasree-2705/multi-tenant-SaaS/prometheus"
)

// CustomerKey is the echo context key under which AuthMiddleware stores
// the authenticated customer claims.
const CustomerKey = "customer"

// AuthMiddleware validates the customer bearer token. Carts are only
// reachable with a genuinely signed token.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			prometheus.RecordAuthError("missing_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			prometheus.RecordAuthError("invalid_auth_format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}

		claims, err := jwtutil.ValidateStoreToken(parts[1])
		if err != nil {
			log.Warn("Invalid customer token", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
		}

		c.Set(CustomerKey, claims)
		return next(c)
	}
}

// CustomerFromContext returns the claims stored by AuthMiddleware.
func CustomerFromContext(c echo.Context) (*jwtutil.StoreClaims, bool) {
	claims, ok := c.Get(CustomerKey).(*jwtutil.StoreClaims)
	return claims, ok
}
