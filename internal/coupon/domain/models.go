package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/pricingkit/internal/money"
)

type CouponType string

const (
	CouponTypeFixed      CouponType = "fixed"
	CouponTypePercentage CouponType = "percentage"
)

// CouponCadence controls how many billing periods a coupon keeps applying to.
type CouponCadence string

const (
	CadenceOnce     CouponCadence = "once"
	CadenceRepeated CouponCadence = "repeated"
	CadenceForever  CouponCadence = "forever"
)

// Coupon is a discount definition. Invariant: RedeemAfter < RedeemBefore when
// both are set. MaxRedemptions bookkeeping is enforced upstream; the engine
// only computes discount magnitude.
type Coupon struct {
	ID                string        `json:"id"`
	Name              string        `json:"name,omitempty"`
	Type              CouponType    `json:"type"`
	AmountOff         *money.Amount `json:"amount_off,omitempty"`
	PercentageOff     *decimal.Decimal `json:"percentage_off,omitempty"`
	Cadence           CouponCadence `json:"cadence"`
	DurationInPeriods *int          `json:"duration_in_periods,omitempty"`
	RedeemAfter       *time.Time    `json:"redeem_after,omitempty"`
	RedeemBefore      *time.Time    `json:"redeem_before,omitempty"`
	MaxRedemptions    *int          `json:"max_redemptions,omitempty"`
}

// Validate checks the coupon's discount configuration.
func (c Coupon) Validate() error {
	switch c.Type {
	case CouponTypeFixed:
		if c.AmountOff == nil {
			return fmt.Errorf("coupon %s: %w: fixed coupon missing amount_off", c.ID, ErrInvalidCouponConfig)
		}
		if c.AmountOff.IsNegative() {
			return fmt.Errorf("coupon %s: %w: negative amount_off", c.ID, ErrInvalidCouponConfig)
		}
	case CouponTypePercentage:
		if c.PercentageOff == nil {
			return fmt.Errorf("coupon %s: %w: percentage coupon missing percentage_off", c.ID, ErrInvalidCouponConfig)
		}
		if c.PercentageOff.IsNegative() || c.PercentageOff.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("coupon %s: %w: percentage_off %s outside [0,100]", c.ID, ErrInvalidCouponConfig, c.PercentageOff)
		}
	default:
		return fmt.Errorf("coupon %s: %w: unknown type %q", c.ID, ErrInvalidCouponConfig, c.Type)
	}

	if c.RedeemAfter != nil && c.RedeemBefore != nil && !c.RedeemAfter.Before(*c.RedeemBefore) {
		return fmt.Errorf("coupon %s: %w: redeem_after not before redeem_before", c.ID, ErrInvalidCouponConfig)
	}
	if c.Cadence == CadenceRepeated && (c.DurationInPeriods == nil || *c.DurationInPeriods < 1) {
		return fmt.Errorf("coupon %s: %w: repeated cadence requires duration_in_periods >= 1", c.ID, ErrInvalidCouponConfig)
	}
	return nil
}

// Catalog is the pre-fetched coupon collection supplied by the caller.
type Catalog interface {
	GetCoupon(ctx context.Context, id string) (Coupon, error)
}

// Service computes discount magnitudes. It never tracks redemption counts.
type Service interface {
	// DiscountFor computes the discount one coupon contributes against a base
	// amount. The result is always within [0, baseAmount].
	DiscountFor(coupon Coupon, baseAmount money.Amount) (money.Amount, error)

	// TotalDiscount stacks coupons additively against the same base amount.
	TotalDiscount(coupons []Coupon, baseAmount money.Amount) (money.Amount, error)

	// IsActive reports whether the coupon's validity window contains asOf.
	IsActive(coupon Coupon, asOf time.Time) bool

	// AppliesToPeriod reports whether the coupon's cadence still discounts
	// the invoice at the given zero-based billing period index.
	AppliesToPeriod(coupon Coupon, periodIndex int) bool
}
