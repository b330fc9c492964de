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

type OrderReadStore struct {
	db *gorm.DB
}

func NewOrderReadStore(db *gorm.DB) *OrderReadStore {
	return &OrderReadStore{db: db}
}

func (r *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.OrderView, error) {
	var rows []model.Order
	err := r.db.WithContext(ctx).
		Where("orders.user_id = ?", userID).
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_items.line_no ASC")
		}).
		Preload("Items.Product").
		Order("orders.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}

	views := make([]queries.OrderView, 0, len(rows))
	for _, o := range rows {
		items := make([]queries.OrderItemView, 0, len(o.Items))
		for _, it := range o.Items {
			var product queries.ProductSummaryView
			if err := copier.Copy(&product, &it.Product); err != nil {
				return nil, infra.WrapRepoErr("failed to map order item", err)
			}
			items = append(items, queries.OrderItemView{
				ID:       it.ID,
				Quantity: it.Quantity,
				Price:    it.Price,
				Product:  product,
			})
		}
		views = append(views, queries.OrderView{
			ID:        o.ID,
			Status:    o.Status,
			Total:     o.Total,
			Items:     items,
			CreatedAt: o.CreatedAt,
		})
	}
	return views, nil
}
