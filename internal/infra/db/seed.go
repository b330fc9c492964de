package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gin-storefront/internal/infra/model"
)

type seedProduct struct {
	slug, name, description, price, category string
}

var (
	seedCategories = []model.Category{
		{Slug: "electronics", Name: "Electronics"},
		{Slug: "books", Name: "Books"},
		{Slug: "home", Name: "Home & Kitchen"},
	}

	seedProducts = []seedProduct{
		{"wireless-headphones", "Wireless Headphones", "Over-ear, noise cancelling.", "129.99", "electronics"},
		{"usb-c-hub", "USB-C Hub", "7-in-1 adapter.", "39.50", "electronics"},
		{"go-in-practice", "Go in Practice", "Techniques for real-world Go.", "44.00", "books"},
		{"pour-over-kettle", "Pour-over Kettle", "Gooseneck, 1L.", "59.00", "home"},
	}
)

// Seed inserts a demo catalog and coupons. It is idempotent on slug and code.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		categoryIDs := make(map[string]model.Category, len(seedCategories))
		for _, c := range seedCategories {
			category := c
			if err := firstOrCreate(tx, &category, "slug = ?", c.Slug); err != nil {
				return err
			}
			categoryIDs[c.Slug] = category
		}

		for _, p := range seedProducts {
			product := model.Product{
				Slug:        p.slug,
				Name:        p.name,
				Description: p.description,
				Price:       decimal.RequireFromString(p.price),
				CategoryID:  categoryIDs[p.category].ID,
			}
			if err := firstOrCreate(tx, &product, "slug = ?", p.slug); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		coupons := []model.Coupon{
			{Code: "WELCOME10", DiscountPercent: 10, IsActive: true, ExpiresAt: now.AddDate(1, 0, 0)},
			{Code: "EXPIRED1", DiscountPercent: 15, IsActive: true, ExpiresAt: now.AddDate(0, 0, -1)},
			{Code: "DISABLED", DiscountPercent: 20, IsActive: false, ExpiresAt: now.AddDate(1, 0, 0)},
		}
		for _, c := range coupons {
			coupon := c
			if err := firstOrCreate(tx, &coupon, "code = ?", c.Code); err != nil {
				return err
			}
		}
		return nil
	})
}

func firstOrCreate[T any](tx *gorm.DB, row *T, query string, arg any) error {
	err := tx.Where(query, arg).First(row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := tx.Create(row).Error; err != nil {
			return fmt.Errorf("seed %T: %w", row, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed lookup %T: %w", row, err)
	}
	return nil
}
