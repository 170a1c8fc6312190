package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/notes/guard"
	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/notes/middleware"
	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/notes/model"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/database"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/logger"
	"github.com/ramyasree-2705/multi-tenant-SaaS/prometheus"
)

// UpgradeTenant moves a tenant from the FREE plan to PRO. Only an ADMIN
// of that same tenant may do it; an ADMIN elsewhere is rejected before
// the slug is even looked up. The caller's token still carries the old
// plan, so clients re-login or patch their stored identity.
func UpgradeTenant(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		prometheus.RecordAuthError("missing_identity")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	if err := guard.RequireRole(id, model.RoleAdmin); err != nil {
		log.Warn("Non-admin upgrade attempt",
			zap.String("user_id", id.UserID),
			zap.String("role", id.Role))
		prometheus.RecordAuthError("role_denied")
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Forbidden: Admin role required"})
	}

	slug := c.Param("slug")
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant slug is required"})
	}

	if err := guard.RequireSameTenant(id, slug); err != nil {
		log.Warn("Cross-tenant upgrade attempt",
			zap.String("user_tenant", id.TenantSlug),
			zap.String("target_tenant", slug))
		prometheus.RecordAuthError("tenant_mismatch")
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Cannot upgrade different tenant"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	result := database.GetDB().Model(&model.Tenant{}).
		Where("slug = ?", slug).
		Updates(map[string]interface{}{
			"plan":       model.PlanPro,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		log.Error("Failed to upgrade tenant", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "tenant not found"})
	}

	var tenant model.Tenant
	if result := database.GetDB().Where("slug = ?", slug).First(&tenant); result.Error != nil {
		log.Error("Failed to reload tenant", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	prometheus.TenantUpgradeCounter.Inc()
	log.Info("Tenant upgraded",
		zap.String("slug", tenant.Slug),
		zap.String("plan", tenant.Plan))

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Tenant upgraded to Pro plan successfully",
		"tenant": map[string]interface{}{
			"slug": tenant.Slug,
			"name": tenant.Name,
			"plan": tenant.Plan,
		},
	})
}
