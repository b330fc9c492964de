//go:build unit || e2e

package builder

import (
	"time"

	"gin-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	Slug         string
	Name         string
	Price        string
	CategorySlug string
	CreatedAt    time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		Slug:         "wireless-headphones",
		Name:         "Wireless Headphones",
		Price:        "129.99",
		CategorySlug: "electronics",
		CreatedAt:    time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) BuildView() queries.ProductView {
	return queries.ProductView{
		ID:          uuid.New(),
		Slug:        p.Slug,
		Name:        p.Name,
		Description: "Description of " + p.Name,
		Price:       decimal.RequireFromString(p.Price),
		ImageURL:    "https://img.example.com/" + p.Slug + ".png",
		Category: queries.CategoryRefView{
			ID:   uuid.New(),
			Slug: p.CategorySlug,
			Name: p.CategorySlug,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.CreatedAt,
	}
}

func NewOrderView(createdAt time.Time, products ...queries.ProductView) queries.OrderView {
	total := decimal.Zero
	items := make([]queries.OrderItemView, 0, len(products))
	for _, p := range products {
		items = append(items, queries.OrderItemView{
			ID:       uuid.New(),
			Quantity: 1,
			Price:    p.Price,
			Product: queries.ProductSummaryView{
				ID:       p.ID,
				Slug:     p.Slug,
				Name:     p.Name,
				ImageURL: p.ImageURL,
			},
		})
		total = total.Add(p.Price)
	}
	return queries.OrderView{
		ID:        uuid.New(),
		Status:    "paid",
		Total:     total,
		Items:     items,
		CreatedAt: createdAt,
	}
}
