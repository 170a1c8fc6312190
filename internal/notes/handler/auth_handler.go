package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/notes/model"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/database"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/jwtutil"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/logger"
	"github.com/ramyasree-2705/multi-tenant-SaaS/prometheus"
)

// Login authenticates a user and issues a token embedding the full
// identity, tenant attributes included. Unknown email and wrong
// password produce the same response.
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordLogin("notes")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Email == "" || req.Password == "" {
		prometheus.RecordAuthError("incomplete_login")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	result := database.GetDB().Preload("Tenant").Where("email = ?", req.Email).First(&user)
	if result.Error != nil {
		log.Warn("User not found", zap.String("email", req.Email))
		prometheus.RecordAuthError("user_not_found")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := jwtutil.GenerateToken(user.ID, user.Email, user.Role,
		user.TenantID, user.Tenant.Slug, user.Tenant.Plan)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	prometheus.IncreaseActiveTokens()

	log.Info("User logged in",
		zap.String("email", user.Email),
		zap.String("tenant_slug", user.Tenant.Slug),
		zap.String("role", user.Role))

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user": map[string]interface{}{
			"id":          user.ID,
			"email":       user.Email,
			"role":        user.Role,
			"tenant_slug": user.Tenant.Slug,
			"tenant_plan": user.Tenant.Plan,
		},
	})
}

// HashPassword hashes a secret for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
