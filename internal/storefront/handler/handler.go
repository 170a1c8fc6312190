// Package handler implements the storefront HTTP surface: customer
// registration and login, catalog browsing and a per-customer cart.
package handler

import (
	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/storefront/store"
)

// Handler carries the injected key-value store shared by the storefront
// endpoints.
type Handler struct {
	Store store.Store
}

// New returns a Handler backed by the given store.
func New(s store.Store) *Handler {
	return &Handler{Store: s}
}

func userKey(email string) string {
	return "user:" + email
}

func cartKey(userID string) string {
	return "cart:" + userID
}
