package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/storefront/store"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/jwtutil"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/logger"
	"github.com/ramyasree-2705/multi-tenant-SaaS/prometheus"
)

// storedUser is the customer record kept in the key-value store, keyed
// by email. Passwords are stored as bcrypt digests only.
type storedUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
}

// Register creates a customer account and issues a token.
func (h *Handler) Register(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and password are required"})
	}

	ctx := c.Request().Context()
	if _, err := h.Store.Get(ctx, userKey(req.Email)); err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("Failed to check existing user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	user := storedUser{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}

	encoded, err := json.Marshal(user)
	if err != nil {
		log.Error("Failed to encode user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	if err := h.Store.Set(ctx, userKey(user.Email), string(encoded)); err != nil {
		log.Error("Failed to store user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	token, err := jwtutil.GenerateStoreToken(user.ID, user.Email, user.Name)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	log.Info("Customer registered", zap.String("email", user.Email))

	return c.JSON(http.StatusCreated, echo.Map{
		"token": token,
		"user": map[string]interface{}{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// Login authenticates a customer and issues a token.
func (h *Handler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordLogin("storefront")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	ctx := c.Request().Context()
	encoded, err := h.Store.Get(ctx, userKey(req.Email))
	if errors.Is(err, store.ErrNotFound) {
		prometheus.RecordAuthError("user_not_found")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if err != nil {
		log.Error("Failed to load user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	var user storedUser
	if err := json.Unmarshal([]byte(encoded), &user); err != nil {
		log.Error("Failed to decode user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := jwtutil.GenerateStoreToken(user.ID, user.Email, user.Name)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	prometheus.IncreaseActiveTokens()
	log.Info("Customer logged in", zap.String("email", user.Email))

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user": map[string]interface{}{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}
