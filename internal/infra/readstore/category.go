package readstore

import (
	"context"

	"gorm.io/gorm"

	"gin-storefront/internal/infra"
	"gin-storefront/internal/infra/model"
	"gin-storefront/internal/usecase/queries"
)

type CategoryReadStore struct {
	db *gorm.DB
}

func NewCategoryReadStore(db *gorm.DB) *CategoryReadStore {
	return &CategoryReadStore{db: db}
}

func (r *CategoryReadStore) ListWithCounts(ctx context.Context) ([]queries.CategoryView, error) {
	var rows []queries.CategoryView
	err := r.withCounts(ctx).
		Order("categories.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	return rows, nil
}

func (r *CategoryReadStore) FindBySlug(ctx context.Context, slug string) (*queries.CategoryView, error) {
	var rows []queries.CategoryView
	err := r.withCounts(ctx).
		Where("categories.slug = ?", slug).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find category by slug", err)
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr("category not found", gorm.ErrRecordNotFound, infra.KindNotFound)
	}
	return &rows[0], nil
}

func (r *CategoryReadStore) withCounts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Category{}).
		Select("categories.id, categories.slug, categories.name, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.category_id = categories.id").
		Group("categories.id, categories.slug, categories.name")
}
