package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/storefront/model"
)

type cartResp struct {
	Items []struct {
		Product  model.Product `json:"product"`
		Quantity int           `json:"quantity"`
	} `json:"items"`
	Total float64 `json:"total"`
}

func TestCartRequiresAuth(t *testing.T) {
	e, _ := newServer()

	rec := doJSON(e, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/cart/items", "not-a-valid-token",
		map[string]interface{}{"product_id": "1"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartLifecycle(t *testing.T) {
	e, _ := newServer()
	token := registerCustomer(t, e, "Jane", "jane@shop.test", "pw")

	// Empty cart.
	rec := doJSON(e, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cart cartResp
	decodeBody(t, rec, &cart)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)

	// Add the denim jacket (89.99) twice in one line.
	rec = doJSON(e, http.MethodPost, "/cart/items", token,
		map[string]interface{}{"product_id": "1", "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	// Adding the same product again bumps the quantity.
	rec = doJSON(e, http.MethodPost, "/cart/items", token,
		map[string]interface{}{"product_id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	// And a t-shirt (24.99).
	rec = doJSON(e, http.MethodPost, "/cart/items", token,
		map[string]interface{}{"product_id": "2", "quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code)

	decodeBody(t, rec, &cart)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.InDelta(t, 3*89.99+24.99, cart.Total, 0.001)

	// Drop the jacket line down to one.
	rec = doJSON(e, http.MethodPut, "/cart/items/1", token,
		map[string]interface{}{"quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &cart)
	assert.InDelta(t, 89.99+24.99, cart.Total, 0.001)

	// Quantity zero removes the line.
	rec = doJSON(e, http.MethodPut, "/cart/items/1", token,
		map[string]interface{}{"quantity": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "2", cart.Items[0].Product.ID)

	// Remove the last line.
	rec = doJSON(e, http.MethodDelete, "/cart/items/2", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &cart)
	assert.Empty(t, cart.Items)
}

func TestCartUnknownProduct(t *testing.T) {
	e, _ := newServer()
	token := registerCustomer(t, e, "Jane", "jane@shop.test", "pw")

	rec := doJSON(e, http.MethodPost, "/cart/items", token,
		map[string]interface{}{"product_id": "999"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/cart/items/999", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartsAreIsolatedPerCustomer(t *testing.T) {
	e, _ := newServer()
	jane := registerCustomer(t, e, "Jane", "jane@shop.test", "pw")
	john := registerCustomer(t, e, "John", "john@shop.test", "pw")

	rec := doJSON(e, http.MethodPost, "/cart/items", jane,
		map[string]interface{}{"product_id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/cart", john, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cart cartResp
	decodeBody(t, rec, &cart)
	assert.Empty(t, cart.Items)
}

func TestClearCart(t *testing.T) {
	e, _ := newServer()
	token := registerCustomer(t, e, "Jane", "jane@shop.test", "pw")

	rec := doJSON(e, http.MethodPost, "/cart/items", token,
		map[string]interface{}{"product_id": "3", "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/cart", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cart cartResp
	decodeBody(t, rec, &cart)
	assert.Empty(t, cart.Items)
}
