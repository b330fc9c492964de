package queries

import (
	"context"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	// ListByUser must filter by owner in the query itself.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
}

type OrderQueries interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error) {
	orders, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []OrderView{}
	}
	return orders, nil
}
