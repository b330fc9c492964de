//go:build unit

package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gin-storefront/internal/infra/db"
	"gin-storefront/internal/infra/model"
	"gin-storefront/tests/common/dbtest"
)

func TestSeedIdempotent(t *testing.T) {
	gdb := dbtest.NewSQLite(t)

	require.NoError(t, db.Seed(gdb))
	require.NoError(t, db.Seed(gdb))

	var categories, products, coupons int64
	gdb.Model(&model.Category{}).Count(&categories)
	gdb.Model(&model.Product{}).Count(&products)
	gdb.Model(&model.Coupon{}).Count(&coupons)

	assert.Equal(t, int64(3), categories)
	assert.Equal(t, int64(4), products)
	assert.Equal(t, int64(3), coupons)

	var disabled model.Coupon
	require.NoError(t, gdb.Where("code = ?", "DISABLED").First(&disabled).Error)
	assert.False(t, disabled.IsActive)
}
