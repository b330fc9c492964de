package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrCouponCodeRequired     = errors.New("coupon code is required")
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountPercent = errors.New("discount percent must be between 1 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

// Code is always upper case; lookups and storage go through NormalizeCode.
type Code string

// NormalizeCode only trims and upper-cases. Lookups should not reject a code
// for its shape; an unknown code is simply not found.
func NormalizeCode(raw string) (Code, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return "", ErrCouponCodeRequired
	}
	return Code(code), nil
}

// NewCouponCode is the strict form used when a coupon is created.
func NewCouponCode(raw string) (Code, error) {
	code, err := NormalizeCode(raw)
	if err != nil {
		return "", err
	}
	if !couponCodeRegex.MatchString(code.String()) {
		return "", ErrInvalidCouponCode
	}
	return code, nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountPercent int

func NewDiscountPercent(p int) (DiscountPercent, error) {
	if p < 1 || p > 100 {
		return 0, ErrInvalidDiscountPercent
	}
	return DiscountPercent(p), nil
}

func (d DiscountPercent) Int() int {
	return int(d)
}
