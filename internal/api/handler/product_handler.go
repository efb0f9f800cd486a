package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webshop/webshop-api/internal/core/ports"
)

// ProductHandler serves the static catalog to authenticated users.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List returns the full catalog.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Security     BasicAuth
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  errorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}
