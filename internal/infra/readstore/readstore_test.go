//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gin-storefront/internal/domain/coupon"
	"gin-storefront/internal/infra"
	"gin-storefront/tests/common/dbtest"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestCouponReadStore_FindByCode(t *testing.T) {
	db := dbtest.NewSQLite(t)
	dbtest.CreateCoupon(t, db, "SAVE10", 10, true, baseTime.Add(24*time.Hour))
	store := NewCouponReadStore(db)

	t.Run("found", func(t *testing.T) {
		code, err := coupon.NormalizeCode(" save10 ")
		require.NoError(t, err)

		c, err := store.FindByCode(context.Background(), code)

		require.NoError(t, err)
		assert.Equal(t, "SAVE10", c.Code().String())
		assert.Equal(t, 10, c.DiscountPercent().Int())
		assert.True(t, c.IsActive())
	})

	t.Run("not found", func(t *testing.T) {
		c, err := store.FindByCode(context.Background(), coupon.Code("MISSING"))

		assert.Nil(t, c)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestProductReadStore_List(t *testing.T) {
	db := dbtest.NewSQLite(t)
	books := dbtest.CreateCategory(t, db, "books", "Books")
	games := dbtest.CreateCategory(t, db, "games", "Games")
	dbtest.CreateProduct(t, db, books.ID, "old-book", "10.00", baseTime)
	dbtest.CreateProduct(t, db, books.ID, "new-book", "12.50", baseTime.Add(time.Hour))
	dbtest.CreateProduct(t, db, games.ID, "chess", "30.00", baseTime.Add(30*time.Minute))
	store := NewProductReadStore(db)

	t.Run("no filter returns everything newest first", func(t *testing.T) {
		got, err := store.List(context.Background(), "")

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"new-book", "chess", "old-book"}, slugs(got))
		assert.Equal(t, "books", got[0].Category.Slug)
		assert.Equal(t, "12.5", got[0].Price.String())
	})

	t.Run("category filter is a subset of the unfiltered list", func(t *testing.T) {
		all, err := store.List(context.Background(), "")
		require.NoError(t, err)

		got, err := store.List(context.Background(), "books")

		require.NoError(t, err)
		assert.Equal(t, []string{"new-book", "old-book"}, slugs(got))
		assert.Subset(t, slugs(all), slugs(got))
		for _, p := range got {
			assert.Equal(t, books.ID, p.Category.ID)
		}
	})

	t.Run("unknown category yields empty list", func(t *testing.T) {
		got, err := store.List(context.Background(), "nope")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("filtered list honors request cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got, err := store.List(ctx, "books")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, context.Canceled)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestProductReadStore_FindBySlug(t *testing.T) {
	db := dbtest.NewSQLite(t)
	books := dbtest.CreateCategory(t, db, "books", "Books")
	dbtest.CreateProduct(t, db, books.ID, "go-book", "44.00", baseTime)
	store := NewProductReadStore(db)

	got, err := store.FindBySlug(context.Background(), "go-book")
	require.NoError(t, err)
	assert.Equal(t, "go-book", got.Slug)
	assert.Equal(t, "Books", got.Category.Name)
	assert.Equal(t, "https://img.example.com/go-book.png", got.ImageURL)

	_, err = store.FindBySlug(context.Background(), "missing")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestCategoryReadStore(t *testing.T) {
	db := dbtest.NewSQLite(t)
	books := dbtest.CreateCategory(t, db, "books", "Books")
	dbtest.CreateCategory(t, db, "art", "Art")
	dbtest.CreateProduct(t, db, books.ID, "a", "1.00", baseTime)
	dbtest.CreateProduct(t, db, books.ID, "b", "2.00", baseTime)
	store := NewCategoryReadStore(db)

	t.Run("list is ordered by name with counts", func(t *testing.T) {
		got, err := store.ListWithCounts(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "art", got[0].Slug)
		assert.Equal(t, int64(0), got[0].ProductCount)
		assert.Equal(t, "books", got[1].Slug)
		assert.Equal(t, int64(2), got[1].ProductCount)
		assert.Equal(t, books.ID, got[1].ID)
	})

	t.Run("find by slug", func(t *testing.T) {
		got, err := store.FindBySlug(context.Background(), "books")

		require.NoError(t, err)
		assert.Equal(t, int64(2), got.ProductCount)

		_, err = store.FindBySlug(context.Background(), "missing")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestOrderReadStore_ListByUser(t *testing.T) {
	db := dbtest.NewSQLite(t)
	alice := dbtest.CreateUser(t, db, "alice@example.com", "user")
	bob := dbtest.CreateUser(t, db, "bob@example.com", "user")
	cat := dbtest.CreateCategory(t, db, "books", "Books")
	p1 := dbtest.CreateProduct(t, db, cat.ID, "p1", "5.00", baseTime)
	p2 := dbtest.CreateProduct(t, db, cat.ID, "p2", "7.25", baseTime)

	older := dbtest.CreateOrder(t, db, alice.ID, baseTime, p2, p1)
	newer := dbtest.CreateOrder(t, db, alice.ID, baseTime.Add(time.Hour), p1)
	dbtest.CreateOrder(t, db, bob.ID, baseTime.Add(2*time.Hour), p1, p2)
	store := NewOrderReadStore(db)

	t.Run("only the owner's orders newest first", func(t *testing.T) {
		got, err := store.ListByUser(context.Background(), alice.ID)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, newer.ID, got[0].ID)
		assert.Equal(t, older.ID, got[1].ID)
		assert.Equal(t, "12.25", got[1].Total.String())
	})

	t.Run("items keep insertion order with product embedded", func(t *testing.T) {
		got, err := store.ListByUser(context.Background(), alice.ID)

		require.NoError(t, err)
		items := got[1].Items
		require.Len(t, items, 2)
		assert.Equal(t, "p2", items[0].Product.Slug)
		assert.Equal(t, "p1", items[1].Product.Slug)
		assert.Equal(t, 1, items[0].Quantity)
	})

	t.Run("user without orders", func(t *testing.T) {
		got, err := store.ListByUser(context.Background(), uuid.New())

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestAddressReadStore_ListByUser(t *testing.T) {
	db := dbtest.NewSQLite(t)
	alice := dbtest.CreateUser(t, db, "alice@example.com", "user")
	bob := dbtest.CreateUser(t, db, "bob@example.com", "user")
	dbtest.CreateAddress(t, db, alice.ID, "Work", false)
	dbtest.CreateAddress(t, db, alice.ID, "Home", true)
	dbtest.CreateAddress(t, db, bob.ID, "Bob", true)
	store := NewAddressReadStore(db)

	got, err := store.ListByUser(context.Background(), alice.ID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Home", got[0].Label)
	assert.True(t, got[0].IsDefault)
	assert.Equal(t, "Work", got[1].Label)
	assert.Equal(t, "Springfield", got[1].City)
}

func TestDashboardReadStore_Counts(t *testing.T) {
	db := dbtest.NewSQLite(t)
	u := dbtest.CreateUser(t, db, "alice@example.com", "user")
	cat := dbtest.CreateCategory(t, db, "books", "Books")
	p := dbtest.CreateProduct(t, db, cat.ID, "p1", "5.00", baseTime)
	dbtest.CreateOrder(t, db, u.ID, baseTime, p)

	got, err := NewDashboardReadStore(db).Counts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Users)
	assert.Equal(t, int64(1), got.Categories)
	assert.Equal(t, int64(1), got.Products)
	assert.Equal(t, int64(1), got.Orders)
}

func TestUserReadStore(t *testing.T) {
	db := dbtest.NewSQLite(t)
	u := dbtest.CreateUser(t, db, "alice@example.com", "admin")
	store := NewUserReadStore(db)

	t.Run("find by email returns hash", func(t *testing.T) {
		got, hash, err := store.FindByEmail(context.Background(), "alice@example.com")

		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, "admin", got.Role)
		assert.True(t, got.IsActive)
		assert.Equal(t, u.PasswordHash, hash)
	})

	t.Run("find by id", func(t *testing.T) {
		got, err := store.FindByID(context.Background(), u.ID)

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", got.Email)
	})

	t.Run("not found", func(t *testing.T) {
		_, hash, err := store.FindByEmail(context.Background(), "nobody@example.com")

		assert.Empty(t, hash)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
