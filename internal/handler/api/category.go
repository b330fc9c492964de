package api

import (
	"net/http"

	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryQueries queries.CategoryQueries
}

func NewCategoryHandler(categoryQueries queries.CategoryQueries) *CategoryHandler {
	return &CategoryHandler{categoryQueries: categoryQueries}
}

// @Summary List categories
// @Description All categories by name with their product count
// @Tags categories
// @Produce json
// @Success 200 {array} queries.CategoryView
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}
