package readstore

import (
	"context"

	"gorm.io/gorm"

	"gin-storefront/internal/infra"
	"gin-storefront/internal/infra/model"
	"gin-storefront/internal/usecase/queries"
)

type DashboardReadStore struct {
	db *gorm.DB
}

func NewDashboardReadStore(db *gorm.DB) *DashboardReadStore {
	return &DashboardReadStore{db: db}
}

func (r *DashboardReadStore) Counts(ctx context.Context) (*queries.DashboardView, error) {
	var v queries.DashboardView
	counts := []struct {
		table any
		dst   *int64
	}{
		{&model.User{}, &v.Users},
		{&model.Category{}, &v.Categories},
		{&model.Product{}, &v.Products},
		{&model.Order{}, &v.Orders},
	}

	db := r.db.WithContext(ctx)
	for _, c := range counts {
		if err := db.Model(c.table).Count(c.dst).Error; err != nil {
			return nil, infra.WrapRepoErr("failed to count rows", err)
		}
	}
	return &v, nil
}
