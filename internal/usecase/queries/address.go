package queries

import (
	"context"

	"github.com/google/uuid"
)

type AddressReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]AddressView, error)
}

type AddressQueries interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]AddressView, error)
}

type addressQueriesImpl struct {
	readStore AddressReadStore
}

func NewAddressQueries(readStore AddressReadStore) AddressQueries {
	return &addressQueriesImpl{readStore: readStore}
}

func (q *addressQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]AddressView, error) {
	addresses, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if addresses == nil {
		addresses = []AddressView{}
	}
	return addresses, nil
}
