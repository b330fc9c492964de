package queries

import (
	"context"

	"gin-storefront/internal/pkg/errs"
)

var ErrCategoryNotFound = errs.New("category not found")

type CategoryReadStore interface {
	ListWithCounts(ctx context.Context) ([]CategoryView, error)
	FindBySlug(ctx context.Context, slug string) (*CategoryView, error)
}

type CategoryQueries interface {
	List(ctx context.Context) ([]CategoryView, error)
	GetBySlug(ctx context.Context, slug string) (*CategoryView, error)
}

type categoryQueriesImpl struct {
	readStore CategoryReadStore
}

func NewCategoryQueries(readStore CategoryReadStore) CategoryQueries {
	return &categoryQueriesImpl{readStore: readStore}
}

func (q *categoryQueriesImpl) List(ctx context.Context) ([]CategoryView, error) {
	categories, err := q.readStore.ListWithCounts(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []CategoryView{}
	}
	return categories, nil
}

func (q *categoryQueriesImpl) GetBySlug(ctx context.Context, slug string) (*CategoryView, error) {
	c, err := q.readStore.FindBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundAs(err, ErrCategoryNotFound)
	}
	return c, nil
}
