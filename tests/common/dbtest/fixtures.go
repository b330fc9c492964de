//go:build unit || e2e

package dbtest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gin-storefront/internal/infra/model"
)

const TestPassword = "password123"

func CreateUser(t *testing.T, db *gorm.DB, email, role string) model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	require.NoError(t, err)

	u := model.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func CreateCategory(t *testing.T, db *gorm.DB, slug, name string) model.Category {
	t.Helper()

	c := model.Category{Slug: slug, Name: name}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func CreateProduct(t *testing.T, db *gorm.DB, categoryID uuid.UUID, slug, price string, createdAt time.Time) model.Product {
	t.Helper()

	p := model.Product{
		Base:        model.Base{CreatedAt: createdAt, UpdatedAt: createdAt},
		Slug:        slug,
		Name:        "Product " + slug,
		Description: "Description of " + slug,
		Price:       decimal.RequireFromString(price),
		ImageURL:    "https://img.example.com/" + slug + ".png",
		CategoryID:  categoryID,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func CreateCoupon(t *testing.T, db *gorm.DB, code string, percent int, active bool, expiresAt time.Time) model.Coupon {
	t.Helper()

	c := model.Coupon{
		Code:            code,
		DiscountPercent: percent,
		IsActive:        active,
		ExpiresAt:       expiresAt,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

// CreateOrder stores one line per product, each with quantity 1 at the product price.
func CreateOrder(t *testing.T, db *gorm.DB, userID uuid.UUID, createdAt time.Time, products ...model.Product) model.Order {
	t.Helper()

	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(products))
	for i, p := range products {
		items = append(items, model.OrderItem{
			LineNo:    i + 1,
			ProductID: p.ID,
			Quantity:  1,
			Price:     p.Price,
		})
		total = total.Add(p.Price)
	}

	o := model.Order{
		Base:   model.Base{CreatedAt: createdAt, UpdatedAt: createdAt},
		UserID: userID,
		Status: "paid",
		Total:  total,
		Items:  items,
	}
	require.NoError(t, db.Create(&o).Error)
	return o
}

func CreateAddress(t *testing.T, db *gorm.DB, userID uuid.UUID, label string, isDefault bool) model.Address {
	t.Helper()

	a := model.Address{
		UserID:     userID,
		Label:      label,
		Line1:      "1 Main Street",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "US",
		IsDefault:  isDefault,
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}
