package queries

//go:generate mockgen -destination=../../../tests/mock/queries/queries.go -package=queriesmock gin-storefront/internal/usecase/queries AddressQueries,CategoryQueries,CouponQueries,DashboardQueries,OrderQueries,ProductQueries,UserQueries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponView is the public result of a successful coupon check
type CouponView struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
}

// CategoryView carries the number of products filed under the category
type CategoryView struct {
	ID           uuid.UUID `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	ProductCount int64     `json:"productCount"`
}

type CategoryRefView struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`
}

type ProductView struct {
	ID          uuid.UUID       `json:"id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Category    CategoryRefView `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type ProductSummaryView struct {
	ID       uuid.UUID `json:"id"`
	Slug     string    `json:"slug"`
	Name     string    `json:"name"`
	ImageURL string    `json:"imageUrl"`
}

type OrderItemView struct {
	ID       uuid.UUID          `json:"id"`
	Quantity int                `json:"quantity"`
	Price    decimal.Decimal    `json:"price"`
	Product  ProductSummaryView `json:"product"`
}

type OrderView struct {
	ID        uuid.UUID       `json:"id"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	Items     []OrderItemView `json:"items"`
	CreatedAt time.Time       `json:"createdAt"`
}

type AddressView struct {
	ID         uuid.UUID `json:"id"`
	Label      string    `json:"label"`
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2,omitempty"`
	City       string    `json:"city"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	IsDefault  bool      `json:"isDefault"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type DashboardView struct {
	Users      int64 `json:"users"`
	Categories int64 `json:"categories"`
	Products   int64 `json:"products"`
	Orders     int64 `json:"orders"`
}
