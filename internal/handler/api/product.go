package api

import (
	"net/http"

	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productQueries queries.ProductQueries
}

func NewProductHandler(productQueries queries.ProductQueries) *ProductHandler {
	return &ProductHandler{productQueries: productQueries}
}

// @Summary List products
// @Description Newest first, optionally restricted to one category
// @Tags products
// @Produce json
// @Param category query string false "Category slug"
// @Success 200 {array} queries.ProductView
// @Failure 500 {object} httperr.Response
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productQueries.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// @Summary Get product
// @Tags products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} queries.ProductView
// @Failure 404 {object} httperr.Response
// @Router /products/{slug} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productQueries.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errs.Is(err, queries.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found")
			return
		}
		httperr.AbortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
