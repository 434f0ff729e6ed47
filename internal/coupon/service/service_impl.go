package service

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/pricingkit/internal/coupon/domain"
	"github.com/smallbiznis/pricingkit/internal/money"
	"go.uber.org/zap"
)

var oneHundred = decimal.NewFromInt(100)

type Service struct {
	log *zap.Logger
}

func New(log *zap.Logger) domain.Service {
	return &Service{log: log.Named("coupon.service")}
}

// DiscountFor computes the discount one coupon contributes. Fixed coupons are
// capped at the base amount so a discount never pushes a line below zero;
// percentage coupons take percentage_off of the base.
func (s *Service) DiscountFor(coupon domain.Coupon, baseAmount money.Amount) (money.Amount, error) {
	if err := coupon.Validate(); err != nil {
		return money.Zero(), err
	}
	if baseAmount.IsNegative() || baseAmount.IsZero() {
		return money.Zero(), nil
	}

	switch coupon.Type {
	case domain.CouponTypeFixed:
		return money.Min(*coupon.AmountOff, baseAmount), nil
	default:
		return baseAmount.Mul(coupon.PercentageOff.Div(oneHundred)), nil
	}
}

// TotalDiscount stacks coupons additively: each coupon is computed against
// the same base amount, not against the running residual. The caller clamps
// the final payable at zero.
func (s *Service) TotalDiscount(coupons []domain.Coupon, baseAmount money.Amount) (money.Amount, error) {
	total := money.Zero()
	for _, coupon := range coupons {
		discount, err := s.DiscountFor(coupon, baseAmount)
		if err != nil {
			return money.Zero(), err
		}
		total = total.Add(discount)
	}
	return total, nil
}

// IsActive checks the redemption window. Open-ended sides always pass.
// Redemption-count limits are enforced upstream, not here.
func (s *Service) IsActive(coupon domain.Coupon, asOf time.Time) bool {
	if coupon.RedeemAfter != nil && asOf.Before(*coupon.RedeemAfter) {
		return false
	}
	if coupon.RedeemBefore != nil && asOf.After(*coupon.RedeemBefore) {
		return false
	}
	return true
}

// AppliesToPeriod maps cadence onto a zero-based billing period index:
// once discounts only the first invoice, repeated the first
// duration_in_periods invoices, forever all of them.
func (s *Service) AppliesToPeriod(coupon domain.Coupon, periodIndex int) bool {
	switch coupon.Cadence {
	case domain.CadenceOnce:
		return periodIndex == 0
	case domain.CadenceRepeated:
		return coupon.DurationInPeriods != nil && periodIndex < *coupon.DurationInPeriods
	case domain.CadenceForever:
		return true
	default:
		// Unset cadence behaves like once, the most conservative reading.
		return periodIndex == 0
	}
}
