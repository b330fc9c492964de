package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponInactive = errors.New("coupon is not active")
	ErrCouponExpired  = errors.New("coupon has expired")
)

type Coupon struct {
	id              uuid.UUID
	code            Code
	discountPercent DiscountPercent
	isActive        bool
	expiresAt       time.Time
}

func NewCoupon(id uuid.UUID, code string, discountPercent int, isActive bool, expiresAt time.Time) (*Coupon, error) {
	couponCode, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}

	percent, err := NewDiscountPercent(discountPercent)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:              id,
		code:            couponCode,
		discountPercent: percent,
		isActive:        isActive,
		expiresAt:       expiresAt,
	}, nil
}

// Reconstruct rebuilds a stored coupon without re-running creation rules.
func Reconstruct(id uuid.UUID, code string, discountPercent int, isActive bool, expiresAt time.Time) *Coupon {
	return &Coupon{
		id:              id,
		code:            Code(code),
		discountPercent: DiscountPercent(discountPercent),
		isActive:        isActive,
		expiresAt:       expiresAt,
	}
}

// IsValidAt is inclusive at the expiry instant.
func (c *Coupon) IsValidAt(t time.Time) bool {
	return c.isActive && !t.After(c.expiresAt)
}

func (c *Coupon) ValidateUsage(t time.Time) error {
	if !c.isActive {
		return ErrCouponInactive
	}
	if t.After(c.expiresAt) {
		return ErrCouponExpired
	}
	return nil
}

func (c *Coupon) ID() uuid.UUID                    { return c.id }
func (c *Coupon) Code() Code                       { return c.code }
func (c *Coupon) DiscountPercent() DiscountPercent { return c.discountPercent }
func (c *Coupon) IsActive() bool                   { return c.isActive }
func (c *Coupon) ExpiresAt() time.Time             { return c.expiresAt }
