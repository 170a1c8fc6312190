package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/storefront/middleware"
	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/storefront/model"
	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/storefront/store"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/logger"
	"github.com/ramyasree-2705/multi-tenant-SaaS/prometheus"
)

// cartItem is a single line in a customer's cart as stored in the
// key-value store.
type cartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// cartLine is a cart item joined with its product for responses.
type cartLine struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

func (h *Handler) loadCart(c echo.Context, userID string) ([]cartItem, error) {
	encoded, err := h.Store.Get(c.Request().Context(), cartKey(userID))
	if errors.Is(err, store.ErrNotFound) {
		return []cartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []cartItem
	if err := json.Unmarshal([]byte(encoded), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *Handler) saveCart(c echo.Context, userID string, items []cartItem) error {
	encoded, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return h.Store.Set(c.Request().Context(), cartKey(userID), string(encoded))
}

func cartResponse(items []cartItem) echo.Map {
	lines := []cartLine{}
	var total float64
	for _, item := range items {
		product, ok := model.FindProduct(item.ProductID)
		if !ok {
			// Product removed from the catalog; drop the line.
			continue
		}
		lines = append(lines, cartLine{Product: product, Quantity: item.Quantity})
		total += product.Price * float64(item.Quantity)
	}
	return echo.Map{"items": lines, "total": total}
}

// GetCart returns the caller's cart with its running total.
func (h *Handler) GetCart(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCartOperation("get")

	claims, ok := middleware.CustomerFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	items, err := h.loadCart(c, claims.UserID)
	if err != nil {
		log.Error("Failed to load cart", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load cart"})
	}

	return c.JSON(http.StatusOK, cartResponse(items))
}

// AddCartItem adds a product to the cart, or bumps its quantity when it
// is already there.
func (h *Handler) AddCartItem(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCartOperation("add")

	claims, ok := middleware.CustomerFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_id is required"})
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	if _, ok := model.FindProduct(req.ProductID); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	items, err := h.loadCart(c, claims.UserID)
	if err != nil {
		log.Error("Failed to load cart", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load cart"})
	}

	found := false
	for i := range items {
		if items[i].ProductID == req.ProductID {
			items[i].Quantity += req.Quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, cartItem{ProductID: req.ProductID, Quantity: req.Quantity})
	}

	if err := h.saveCart(c, claims.UserID, items); err != nil {
		log.Error("Failed to save cart", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save cart"})
	}

	return c.JSON(http.StatusOK, cartResponse(items))
}

// UpdateCartItem sets the quantity of a cart line. A quantity of zero
// or less removes the line.
func (h *Handler) UpdateCartItem(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCartOperation("update")

	claims, ok := middleware.CustomerFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	productID := c.Param("id")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	items, err := h.loadCart(c, claims.UserID)
	if err != nil {
		log.Error("Failed to load cart", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load cart"})
	}

	updated := items[:0]
	found := false
	for _, item := range items {
		if item.ProductID == productID {
			found = true
			if req.Quantity > 0 {
				item.Quantity = req.Quantity
				updated = append(updated, item)
			}
			continue
		}
		updated = append(updated, item)
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "item not in cart"})
	}

	if err := h.saveCart(c, claims.UserID, updated); err != nil {
		log.Error("Failed to save cart", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save cart"})
	}

	return c.JSON(http.StatusOK, cartResponse(updated))
}

// RemoveCartItem deletes a line from the cart.
func (h *Handler) RemoveCartItem(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCartOperation("remove")

	claims, ok := middleware.CustomerFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	productID := c.Param("id")

	items, err := h.loadCart(c, claims.UserID)
	if err != nil {
		log.Error("Failed to load cart", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load cart"})
	}

	updated := items[:0]
	found := false
	for _, item := range items {
		if item.ProductID == productID {
			found = true
			continue
		}
		updated = append(updated, item)
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "item not in cart"})
	}

	if err := h.saveCart(c, claims.UserID, updated); err != nil {
		log.Error("Failed to save cart", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save cart"})
	}

	return c.JSON(http.StatusOK, cartResponse(updated))
}

// ClearCart removes the whole cart.
func (h *Handler) ClearCart(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCartOperation("clear")

	claims, ok := middleware.CustomerFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	if err := h.Store.Remove(c.Request().Context(), cartKey(claims.UserID)); err != nil {
		log.Error("Failed to clear cart", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to clear cart"})
	}

	return c.NoContent(http.StatusNoContent)
}
