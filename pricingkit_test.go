package pricingkit_test

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/pricingkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Everything a consuming module needs is reachable from the root package:
// the catalog, every service constructor and every domain type.
func TestConsumerFacade(t *testing.T) {
	cat, err := pricingkit.NewCatalog()
	require.NoError(t, err)

	price := cat.AddPrice(pricingkit.Price{
		DisplayName:    "Pro Plan",
		Amount:         pricingkit.AmountFromInt(100),
		Currency:       "usd",
		Type:           pricingkit.PriceTypeFixed,
		BillingModel:   pricingkit.BillingModelFlatFee,
		BillingPeriod:  pricingkit.BillingPeriodMonthly,
		InvoiceCadence: pricingkit.InvoiceCadenceAdvance,
	})
	coupon := cat.AddCoupon(pricingkit.Coupon{
		Name:      "Welcome",
		Type:      pricingkit.CouponTypeFixed,
		AmountOff: lo.ToPtr(pricingkit.AmountFromInt(20)),
		Cadence:   pricingkit.CadenceOnce,
	})
	cat.AddTaxRate(pricingkit.TaxRate{Code: "vat", Name: "VAT", Percentage: decimal.NewFromInt(10)})
	cat.AddTaxOverride(pricingkit.TaxRateOverride{TaxRateCode: "vat", Currency: "usd", AutoApply: true})

	log := zap.NewNop()
	cfg := pricingkit.NewStaticConfigHolder(pricingkit.DefaultEngineConfig())
	prices := pricingkit.NewPriceService(log)
	coupons := pricingkit.NewCouponService(log)
	addons := pricingkit.NewAddonService(log, cat, cat)
	taxes := pricingkit.NewTaxService(log, cat, cfg)
	cycles := pricingkit.NewBillingCycleService(log)
	previews := pricingkit.NewPreviewService(log, cfg, cat, cat, cat, prices, coupons, addons, taxes, cycles)

	start := time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC)
	timeline, err := previews.BuildPreview(context.Background(), pricingkit.PreviewRequest{
		Currency:      "usd",
		BillingPeriod: pricingkit.BillingPeriodMonthly,
		BillingCycle:  pricingkit.BillingCycleCalendar,
		LineItems: []pricingkit.LineItem{
			{PriceID: price.ID, Quantity: decimal.NewFromInt(1)},
		},
		Phases: []pricingkit.Phase{
			{StartDate: start, CouponIDs: []string{coupon.ID}},
		},
	})
	require.NoError(t, err)
	require.Len(t, timeline.Entries, 2)
	assert.Equal(t, pricingkit.EntryInvoicePreview, timeline.Entries[1].Kind)

	invoice := timeline.Entries[1].Invoice
	require.NotNil(t, invoice)

	// 100 plan - 20 coupon = 80, plus 10% tax = 88.
	assert.True(t, pricingkit.AmountFromInt(88).Equal(invoice.NetPayable), "got %s", invoice.NetPayable)
	assert.Equal(t, "88.00", invoice.DisplayNetPayable)
}

// The component services are importable independently of the preview builder.
func TestStandaloneComponents(t *testing.T) {
	log := zap.NewNop()

	prices := pricingkit.NewPriceService(log)
	charge, err := prices.ResolveTierCharge(pricingkit.TierModeSlab, []pricingkit.PriceTier{
		{UpTo: lo.ToPtr(uint64(10)), UnitAmount: pricingkit.AmountFromInt(5)},
		{UnitAmount: pricingkit.AmountFromInt(3)},
	}, decimal.NewFromInt(15))
	require.NoError(t, err)
	assert.True(t, pricingkit.AmountFromInt(65).Equal(charge))

	_, err = prices.ResolveTierCharge(pricingkit.TierModeVolume, nil, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, pricingkit.ErrInvalidTierConfig)

	coupons := pricingkit.NewCouponService(log)
	discount, err := coupons.DiscountFor(pricingkit.Coupon{
		ID:            "c1",
		Type:          pricingkit.CouponTypePercentage,
		PercentageOff: lo.ToPtr(decimal.NewFromInt(15)),
	}, pricingkit.AmountFromInt(200))
	require.NoError(t, err)
	assert.True(t, pricingkit.AmountFromInt(30).Equal(discount))

	cycles := pricingkit.NewBillingCycleService(log)
	first, err := cycles.FirstInvoiceDate(
		time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC),
		pricingkit.BillingPeriodMonthly, pricingkit.BillingCycleCalendar)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), first)
}

// Module's provided types are nameable by an fx consumer.
func TestModuleWiring(t *testing.T) {
	var (
		cat      *pricingkit.Catalog
		previews pricingkit.PreviewService
	)
	app := fx.New(
		pricingkit.Module,
		fx.NopLogger,
		fx.Populate(&cat, &previews),
	)
	require.NoError(t, app.Err())
	require.NotNil(t, cat)
	require.NotNil(t, previews)
}
