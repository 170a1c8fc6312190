package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/storefront/middleware"
	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/storefront/store"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/config"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/jwtutil"
)

func init() {
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "storefront-test-key", ExpirationHours: 1})
}

// newServer builds an echo instance with the same routing as the
// storefront-service binary, backed by an in-memory store.
func newServer() (*echo.Echo, *Handler) {
	h := New(store.NewMemory())

	e := echo.New()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.GET("/products", h.ListProducts)
	e.GET("/products/:id", h.GetProduct)
	e.GET("/categories", h.ListCategories)

	cart := e.Group("/cart")
	cart.Use(middleware.AuthMiddleware)
	cart.GET("", h.GetCart)
	cart.DELETE("", h.ClearCart)
	cart.POST("/items", h.AddCartItem)
	cart.PUT("/items/:id", h.UpdateCartItem)
	cart.DELETE("/items/:id", h.RemoveCartItem)

	return e, h
}

func doJSON(e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// registerCustomer registers a customer and returns their token.
func registerCustomer(t *testing.T, e *echo.Echo, name, email, password string) string {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/auth/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
