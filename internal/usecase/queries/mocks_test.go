//go:build unit

package queries_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gin-storefront/internal/domain/coupon"
	"gin-storefront/internal/usecase/queries"
)

type MockCouponReadStore struct {
	mock.Mock
}

func (m *MockCouponReadStore) FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(*coupon.Coupon)
	return c, args.Error(1)
}

type MockProductReadStore struct {
	mock.Mock
}

func (m *MockProductReadStore) List(ctx context.Context, categorySlug string) ([]queries.ProductView, error) {
	args := m.Called(ctx, categorySlug)
	v, _ := args.Get(0).([]queries.ProductView)
	return v, args.Error(1)
}

func (m *MockProductReadStore) FindBySlug(ctx context.Context, slug string) (*queries.ProductView, error) {
	args := m.Called(ctx, slug)
	v, _ := args.Get(0).(*queries.ProductView)
	return v, args.Error(1)
}

type MockOrderReadStore struct {
	mock.Mock
}

func (m *MockOrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.OrderView, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]queries.OrderView)
	return v, args.Error(1)
}

type MockUserReadStore struct {
	mock.Mock
}

func (m *MockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.AuthorizedUserView)
	return v, args.Error(1)
}

func (m *MockUserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	args := m.Called(ctx, email)
	v, _ := args.Get(0).(*queries.AuthorizedUserView)
	return v, args.String(1), args.Error(2)
}
