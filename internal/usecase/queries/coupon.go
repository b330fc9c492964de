package queries

import (
	"context"

	"gin-storefront/internal/domain/coupon"
	"gin-storefront/internal/pkg/clock"
	"gin-storefront/internal/pkg/errs"
)

var (
	ErrCouponCodeRequired = coupon.ErrCouponCodeRequired
	ErrCouponNotFound     = errs.New("coupon not found")
	ErrCouponInactive     = coupon.ErrCouponInactive
	ErrCouponExpired      = coupon.ErrCouponExpired
)

type CouponReadStore interface {
	FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
}

type CouponQueries interface {
	Validate(ctx context.Context, rawCode string) (*CouponView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
	clock     clock.Clock
}

func NewCouponQueries(readStore CouponReadStore, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{
		readStore: readStore,
		clock:     clk,
	}
}

func (q *couponQueriesImpl) Validate(ctx context.Context, rawCode string) (*CouponView, error) {
	code, err := coupon.NormalizeCode(rawCode)
	if err != nil {
		return nil, err
	}

	c, err := q.readStore.FindByCode(ctx, code)
	if err != nil {
		return nil, notFoundAs(err, ErrCouponNotFound)
	}

	if err := c.ValidateUsage(q.clock.Now()); err != nil {
		return nil, err
	}

	return &CouponView{
		Code:            c.Code().String(),
		DiscountPercent: c.DiscountPercent().Int(),
	}, nil
}
