package api

import (
	"net/http"

	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponQueries queries.CouponQueries
}

func NewCouponHandler(couponQueries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{couponQueries: couponQueries}
}

// @Summary Validate coupon
// @Description Check whether a coupon code is active and unexpired
// @Tags coupons
// @Produce json
// @Param code query string true "Coupon code (case-insensitive)"
// @Success 200 {object} queries.CouponView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons [get]
func (h *CouponHandler) Validate(c *gin.Context) {
	view, err := h.couponQueries.Validate(c.Request.Context(), c.Query("code"))
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrCouponCodeRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon code is required")
		case errs.Is(err, queries.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found")
		case errs.Is(err, queries.ErrCouponInactive):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon is not active")
		case errs.Is(err, queries.ErrCouponExpired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon has expired")
		default:
			httperr.AbortInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
