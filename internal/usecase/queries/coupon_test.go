//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gin-storefront/internal/domain/coupon"
	"gin-storefront/internal/infra"
	"gin-storefront/internal/pkg/clock"
	"gin-storefront/internal/usecase/queries"
)

func TestCouponQueries_Validate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		rawCode   string
		lookup    coupon.Code
		stored    *coupon.Coupon
		storeErr  error
		wantErr   error
		wantView  *queries.CouponView
		skipStore bool
	}{
		{
			name:     "valid coupon, code is normalized",
			rawCode:  "  save10 ",
			lookup:   "SAVE10",
			stored:   coupon.Reconstruct(uuid.New(), "SAVE10", 10, true, now.Add(time.Hour)),
			wantView: &queries.CouponView{Code: "SAVE10", DiscountPercent: 10},
		},
		{
			name:     "expiry equal to now is still valid",
			rawCode:  "EDGE",
			lookup:   "EDGE",
			stored:   coupon.Reconstruct(uuid.New(), "EDGE", 5, true, now),
			wantView: &queries.CouponView{Code: "EDGE", DiscountPercent: 5},
		},
		{
			name:      "missing code",
			rawCode:   "   ",
			skipStore: true,
			wantErr:   queries.ErrCouponCodeRequired,
		},
		{
			name:     "not found",
			rawCode:  "MISSING",
			lookup:   "MISSING",
			storeErr: infra.WrapRepoErr("coupon not found", errors.New("no rows"), infra.KindNotFound),
			wantErr:  queries.ErrCouponNotFound,
		},
		{
			name:    "inactive",
			rawCode: "OFF",
			lookup:  "OFF",
			stored:  coupon.Reconstruct(uuid.New(), "OFF", 20, false, now.Add(time.Hour)),
			wantErr: queries.ErrCouponInactive,
		},
		{
			name:    "expired yesterday",
			rawCode: "EXPIRED1",
			lookup:  "EXPIRED1",
			stored:  coupon.Reconstruct(uuid.New(), "EXPIRED1", 15, true, now.Add(-24*time.Hour)),
			wantErr: queries.ErrCouponExpired,
		},
		{
			name:    "inactive wins over expired",
			rawCode: "BOTH",
			lookup:  "BOTH",
			stored:  coupon.Reconstruct(uuid.New(), "BOTH", 15, false, now.Add(-24*time.Hour)),
			wantErr: queries.ErrCouponInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockCouponReadStore)
			if !tt.skipStore {
				store.On("FindByCode", mock.Anything, tt.lookup).Return(tt.stored, tt.storeErr)
			}
			q := queries.NewCouponQueries(store, clock.NewMockClock(now))

			got, err := q.Validate(context.Background(), tt.rawCode)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantView, got)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestCouponQueries_Validate_StoreFailure(t *testing.T) {
	store := new(MockCouponReadStore)
	dbErr := infra.WrapRepoErr("failed", errors.New("connection refused"))
	store.On("FindByCode", mock.Anything, coupon.Code("ANY")).Return(nil, dbErr)
	q := queries.NewCouponQueries(store, clock.NewMockClock(time.Now()))

	_, err := q.Validate(context.Background(), "any")

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.NotErrorIs(t, err, queries.ErrCouponNotFound)
}
