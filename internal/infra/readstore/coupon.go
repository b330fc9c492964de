package readstore

import (
	"context"

	"gorm.io/gorm"

	"gin-storefront/internal/domain/coupon"
	"gin-storefront/internal/infra"
	"gin-storefront/internal/infra/model"
)

type CouponReadStore struct {
	db *gorm.DB
}

func NewCouponReadStore(db *gorm.DB) *CouponReadStore {
	return &CouponReadStore{db: db}
}

// FindByCode expects a normalized code; rows are stored upper-case.
func (r *CouponReadStore) FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	var row model.Coupon
	err := r.db.WithContext(ctx).Where("code = ?", code.String()).First(&row).Error
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	return coupon.Reconstruct(row.ID, row.Code, row.DiscountPercent, row.IsActive, row.ExpiresAt), nil
}
