package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/notes/guard"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/jwtutil"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/logger"
	"github.com/ramyasree-2705/multi-tenant-SaaS/prometheus"
)

// IdentityKey is the echo context key under which AuthMiddleware stores
// the authenticated identity.
const IdentityKey = "identity"

// AuthMiddleware validates the JWT token from the Authorization header.
// A missing or malformed header is rejected before the token service is
// consulted, so unauthenticated requests never reach storage. Every
// failure collapses to the same 401.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			prometheus.RecordAuthError("missing_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			log.Warn("Invalid Authorization header format")
			prometheus.RecordAuthError("invalid_auth_format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}

		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Warn("Invalid JWT token", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
		}

		c.Set(IdentityKey, guard.Identity{
			UserID:     claims.UserID,
			Email:      claims.Email,
			Role:       claims.Role,
			TenantID:   claims.TenantID,
			TenantSlug: claims.TenantSlug,
			TenantPlan: claims.TenantPlan,
		})

		return next(c)
	}
}

// IdentityFromContext returns the identity stored by AuthMiddleware.
func IdentityFromContext(c echo.Context) (guard.Identity, bool) {
	id, ok := c.Get(IdentityKey).(guard.Identity)
	return id, ok
}
