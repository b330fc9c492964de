package api

import (
	"net/http"

	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/handler/middleware"
	"gin-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderQueries queries.OrderQueries
}

func NewOrderHandler(orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{orderQueries: orderQueries}
}

// @Summary List my orders
// @Description Orders of the signed-in user, newest first
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.OrderView
// @Failure 401 {object} httperr.Response
// @Router /user/orders [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Error: middleware.MsgUnauthorized})
		return
	}

	orders, err := h.orderQueries.ListForUser(c.Request.Context(), identity.ID)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
