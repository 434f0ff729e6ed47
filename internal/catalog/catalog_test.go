package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	addondomain "github.com/smallbiznis/pricingkit/internal/addon/domain"
	coupondomain "github.com/smallbiznis/pricingkit/internal/coupon/domain"
	"github.com/smallbiznis/pricingkit/internal/money"
	pricedomain "github.com/smallbiznis/pricingkit/internal/price/domain"
	taxdomain "github.com/smallbiznis/pricingkit/internal/tax/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedIDs(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)
	ctx := context.Background()

	price := cat.AddPrice(pricedomain.Price{Amount: money.FromInt(10), Currency: "usd"})
	assert.Contains(t, price.ID, "price_")

	got, err := cat.GetPrice(ctx, price.ID)
	assert.NoError(t, err)
	assert.True(t, price.Amount.Equal(got.Amount))

	coupon := cat.AddCoupon(coupondomain.Coupon{Type: coupondomain.CouponTypeFixed})
	assert.Contains(t, coupon.ID, "coupon_")
}

func TestAddonCodeSlugified(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	addon := cat.AddAddon(addondomain.Addon{Name: "Priority Support"})
	assert.Equal(t, "priority-support", addon.Code)
	assert.Contains(t, addon.ID, "addon_")
}

func TestAddonPriceLinkage(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)
	ctx := context.Background()

	addon := cat.AddAddon(addondomain.Addon{Name: "Storage"},
		pricedomain.Price{Amount: money.FromInt(10), Currency: "usd"},
		pricedomain.Price{Amount: money.FromInt(100), Currency: "usd"},
	)

	prices, err := cat.ListPricesForAddon(ctx, addon.ID)
	assert.NoError(t, err)
	assert.Len(t, prices, 2)

	prices, err = cat.ListPricesForAddon(ctx, "addon_unknown")
	assert.NoError(t, err)
	assert.Empty(t, prices)
}

func TestTaxRateCodeFromName(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)
	ctx := context.Background()

	rate := cat.AddTaxRate(taxdomain.TaxRate{Name: "City Tax", Percentage: decimal.NewFromInt(2)})
	assert.Equal(t, "city-tax", rate.Code)

	got, err := cat.GetTaxRate(ctx, "city-tax")
	assert.NoError(t, err)
	assert.Equal(t, rate.Name, got.Name)
}

func TestNotFoundErrors(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)
	ctx := context.Background()

	_, err = cat.GetPrice(ctx, "nope")
	assert.ErrorIs(t, err, pricedomain.ErrPriceNotFound)
	_, err = cat.GetAddon(ctx, "nope")
	assert.ErrorIs(t, err, addondomain.ErrAddonNotFound)
	_, err = cat.GetCoupon(ctx, "nope")
	assert.ErrorIs(t, err, coupondomain.ErrCouponNotFound)
	_, err = cat.GetTaxRate(ctx, "nope")
	assert.ErrorIs(t, err, taxdomain.ErrUnresolvableTaxRate)
}
