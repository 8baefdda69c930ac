package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	catalog Catalog
}

func NewProductHandler(catalog Catalog) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// GET /api/products?category=&search=
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
