// Package model holds the gorm table mappings.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// bool columns carry no gorm default: a default would override an explicit false on insert.

type User struct {
	Base
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	Name         string `gorm:"size:100;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"size:20;not null"`
	IsActive     bool   `gorm:"not null"`
	LastLogin    *time.Time
}

type Coupon struct {
	Base
	Code            string    `gorm:"size:32;not null;uniqueIndex"` // stored upper-case
	DiscountPercent int       `gorm:"not null"`
	IsActive        bool      `gorm:"not null"`
	ExpiresAt       time.Time `gorm:"not null"`
}

type Category struct {
	Base
	Slug     string `gorm:"size:100;not null;uniqueIndex"`
	Name     string `gorm:"size:100;not null"`
	Products []Product
}

type Product struct {
	Base
	Slug        string          `gorm:"size:150;not null;uniqueIndex"`
	Name        string          `gorm:"size:200;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageURL    string          `gorm:"size:500"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category    Category
}

type Order struct {
	Base
	UserID uuid.UUID       `gorm:"type:uuid;not null;index"`
	User   User            `gorm:"constraint:OnDelete:CASCADE"`
	Status string          `gorm:"size:20;not null"`
	Total  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Items  []OrderItem     `gorm:"constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	Base
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	LineNo    int             `gorm:"not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Product   Product
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

type Address struct {
	Base
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	User       User      `gorm:"constraint:OnDelete:CASCADE"`
	Label      string    `gorm:"size:50;not null"`
	Line1      string    `gorm:"size:200;not null"`
	Line2      string    `gorm:"size:200"`
	City       string    `gorm:"size:100;not null"`
	PostalCode string    `gorm:"size:20;not null"`
	Country    string    `gorm:"size:2;not null"`
	IsDefault  bool      `gorm:"not null"`
}

// All returns every table in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Coupon{},
		&Category{},
		&Product{},
		&Order{},
		&OrderItem{},
		&Address{},
	}
}
