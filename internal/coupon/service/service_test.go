package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/pricingkit/internal/coupon/domain"
	"github.com/smallbiznis/pricingkit/internal/money"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newService() *Service {
	return &Service{log: zap.NewNop()}
}

func fixedCoupon(id string, amountOff int64) domain.Coupon {
	return domain.Coupon{
		ID:        id,
		Type:      domain.CouponTypeFixed,
		AmountOff: lo.ToPtr(money.FromInt(amountOff)),
		Cadence:   domain.CadenceOnce,
	}
}

func percentageCoupon(id string, pct int64) domain.Coupon {
	return domain.Coupon{
		ID:            id,
		Type:          domain.CouponTypePercentage,
		PercentageOff: lo.ToPtr(decimal.NewFromInt(pct)),
		Cadence:       domain.CadenceOnce,
	}
}

func TestDiscountFor_Fixed(t *testing.T) {
	svc := newService()

	discount, err := svc.DiscountFor(fixedCoupon("c1", 20), money.FromInt(100))
	assert.NoError(t, err)
	assert.True(t, money.FromInt(20).Equal(discount), "got %s", discount)
}

func TestDiscountFor_FixedCappedAtBase(t *testing.T) {
	svc := newService()

	discount, err := svc.DiscountFor(fixedCoupon("c1", 500), money.FromInt(100))
	assert.NoError(t, err)
	assert.True(t, money.FromInt(100).Equal(discount))
}

func TestDiscountFor_Percentage(t *testing.T) {
	svc := newService()

	discount, err := svc.DiscountFor(percentageCoupon("c2", 15), money.FromInt(200))
	assert.NoError(t, err)
	assert.True(t, money.FromInt(30).Equal(discount), "got %s", discount)
}

func TestDiscountFor_ZeroBase(t *testing.T) {
	svc := newService()

	discount, err := svc.DiscountFor(percentageCoupon("c2", 50), money.Zero())
	assert.NoError(t, err)
	assert.True(t, discount.IsZero())
}

func TestDiscountFor_InvalidConfigs(t *testing.T) {
	svc := newService()
	base := money.FromInt(100)
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	cases := []domain.Coupon{
		{ID: "missing-amount", Type: domain.CouponTypeFixed},
		{ID: "negative-amount", Type: domain.CouponTypeFixed, AmountOff: lo.ToPtr(money.FromInt(-5))},
		{ID: "missing-pct", Type: domain.CouponTypePercentage},
		{ID: "pct-over-100", Type: domain.CouponTypePercentage, PercentageOff: lo.ToPtr(decimal.NewFromInt(120))},
		{ID: "unknown-type", Type: "bogus"},
		{
			ID: "repeated-no-duration", Type: domain.CouponTypeFixed,
			AmountOff: lo.ToPtr(money.FromInt(5)), Cadence: domain.CadenceRepeated,
		},
		{
			ID: "inverted-window", Type: domain.CouponTypeFixed,
			AmountOff:   lo.ToPtr(money.FromInt(5)),
			RedeemAfter: lo.ToPtr(now), RedeemBefore: lo.ToPtr(now),
		},
	}
	for _, c := range cases {
		_, err := svc.DiscountFor(c, base)
		assert.ErrorIs(t, err, domain.ErrInvalidCouponConfig, c.ID)
	}
}

func TestTotalDiscount_AdditiveStacking(t *testing.T) {
	svc := newService()
	base := money.FromInt(100)

	// Both coupons apply against the same base: 20 + 15 = 35.
	coupons := []domain.Coupon{fixedCoupon("c1", 20), percentageCoupon("c2", 15)}
	total, err := svc.TotalDiscount(coupons, base)
	assert.NoError(t, err)
	assert.True(t, money.FromInt(35).Equal(total), "got %s", total)

	// Order does not matter.
	reversed, err := svc.TotalDiscount([]domain.Coupon{coupons[1], coupons[0]}, base)
	assert.NoError(t, err)
	assert.True(t, total.Equal(reversed))
}

func TestTotalDiscount_CanExceedBase(t *testing.T) {
	svc := newService()

	// Stacking may exceed the base; the invoice builder clamps at zero.
	total, err := svc.TotalDiscount([]domain.Coupon{
		fixedCoupon("c1", 80), percentageCoupon("c2", 50),
	}, money.FromInt(100))
	assert.NoError(t, err)
	assert.True(t, money.FromInt(130).Equal(total))
}

func TestIsActive(t *testing.T) {
	svc := newService()
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	open := fixedCoupon("open", 10)
	assert.True(t, svc.IsActive(open, now))

	windowed := fixedCoupon("windowed", 10)
	windowed.RedeemAfter = lo.ToPtr(now.AddDate(0, -1, 0))
	windowed.RedeemBefore = lo.ToPtr(now.AddDate(0, 1, 0))
	assert.True(t, svc.IsActive(windowed, now))
	assert.False(t, svc.IsActive(windowed, now.AddDate(0, -2, 0)))
	assert.False(t, svc.IsActive(windowed, now.AddDate(0, 2, 0)))
}

func TestAppliesToPeriod(t *testing.T) {
	svc := newService()

	once := fixedCoupon("once", 10)
	assert.True(t, svc.AppliesToPeriod(once, 0))
	assert.False(t, svc.AppliesToPeriod(once, 1))

	repeated := fixedCoupon("repeated", 10)
	repeated.Cadence = domain.CadenceRepeated
	repeated.DurationInPeriods = lo.ToPtr(3)
	assert.True(t, svc.AppliesToPeriod(repeated, 0))
	assert.True(t, svc.AppliesToPeriod(repeated, 2))
	assert.False(t, svc.AppliesToPeriod(repeated, 3))

	forever := fixedCoupon("forever", 10)
	forever.Cadence = domain.CadenceForever
	assert.True(t, svc.AppliesToPeriod(forever, 41))
}
