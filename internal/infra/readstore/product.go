package readstore

import (
	"context"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"gin-storefront/internal/infra"
	"gin-storefront/internal/infra/model"
	"gin-storefront/internal/usecase/queries"
)

type ProductReadStore struct {
	db *gorm.DB
}

func NewProductReadStore(db *gorm.DB) *ProductReadStore {
	return &ProductReadStore{db: db}
}

func (r *ProductReadStore) List(ctx context.Context, categorySlug string) ([]queries.ProductView, error) {
	session := r.db.WithContext(ctx)
	q := session.
		Preload("Category").
		Order("products.created_at DESC")

	if categorySlug != "" {
		q = q.Where("products.category_id IN (?)",
			session.Model(&model.Category{}).Select("id").Where("slug = ?", categorySlug))
	}

	var rows []model.Product
	if err := q.Find(&rows).Error; err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}

	views := make([]queries.ProductView, 0, len(rows))
	for i := range rows {
		v, err := toProductView(&rows[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (r *ProductReadStore) FindBySlug(ctx context.Context, slug string) (*queries.ProductView, error) {
	var row model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("products.slug = ?", slug).
		First(&row).Error
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find product by slug", err)
	}
	return toProductView(&row)
}

func toProductView(row *model.Product) (*queries.ProductView, error) {
	var v queries.ProductView
	if err := copier.Copy(&v, row); err != nil {
		return nil, infra.WrapRepoErr("failed to map product", err)
	}
	return &v, nil
}
