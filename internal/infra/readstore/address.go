package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"gin-storefront/internal/infra"
	"gin-storefront/internal/infra/model"
	"gin-storefront/internal/usecase/queries"
)

type AddressReadStore struct {
	db *gorm.DB
}

func NewAddressReadStore(db *gorm.DB) *AddressReadStore {
	return &AddressReadStore{db: db}
}

// ListByUser returns the default address first, then by label.
func (r *AddressReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.AddressView, error) {
	var rows []model.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC").
		Order("label ASC").
		Find(&rows).Error
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list addresses by user", err)
	}

	views := make([]queries.AddressView, 0, len(rows))
	if err := copier.Copy(&views, &rows); err != nil {
		return nil, infra.WrapRepoErr("failed to map addresses", err)
	}
	return views, nil
}
