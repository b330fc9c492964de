package queries

import (
	"context"
	"strings"

	"gin-storefront/internal/pkg/errs"
)

var ErrProductNotFound = errs.New("product not found")

type ProductReadStore interface {
	// List returns products newest first; an empty categorySlug means every category.
	List(ctx context.Context, categorySlug string) ([]ProductView, error)
	FindBySlug(ctx context.Context, slug string) (*ProductView, error)
}

type ProductQueries interface {
	List(ctx context.Context, categorySlug string) ([]ProductView, error)
	GetBySlug(ctx context.Context, slug string) (*ProductView, error)
}

type productQueriesImpl struct {
	readStore ProductReadStore
}

func NewProductQueries(readStore ProductReadStore) ProductQueries {
	return &productQueriesImpl{readStore: readStore}
}

func (q *productQueriesImpl) List(ctx context.Context, categorySlug string) ([]ProductView, error) {
	products, err := q.readStore.List(ctx, strings.TrimSpace(categorySlug))
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []ProductView{}
	}
	return products, nil
}

func (q *productQueriesImpl) GetBySlug(ctx context.Context, slug string) (*ProductView, error) {
	p, err := q.readStore.FindBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundAs(err, ErrProductNotFound)
	}
	return p, nil
}
