package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/storefront/model"
)

// ListProducts returns the catalog, optionally filtered by category.
func (h *Handler) ListProducts(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" || category == "All" {
		return c.JSON(http.StatusOK, model.Products)
	}

	filtered := []model.Product{}
	for _, p := range model.Products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return c.JSON(http.StatusOK, filtered)
}

// GetProduct returns a single product by ID.
func (h *Handler) GetProduct(c echo.Context) error {
	product, ok := model.FindProduct(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}
	return c.JSON(http.StatusOK, product)
}

// ListCategories returns the category list in display order.
func (h *Handler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Categories)
}
