package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/smallbiznis/pricingkit/internal/addon/domain"
	"github.com/smallbiznis/pricingkit/internal/money"
	pricedomain "github.com/smallbiznis/pricingkit/internal/price/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type addonMap map[string]domain.Addon

func (m addonMap) GetAddon(_ context.Context, id string) (domain.Addon, error) {
	addon, ok := m[id]
	if !ok {
		return domain.Addon{}, fmt.Errorf("%w: %s", domain.ErrAddonNotFound, id)
	}
	return addon, nil
}

type priceLists map[string][]pricedomain.Price

func (m priceLists) GetPrice(_ context.Context, id string) (pricedomain.Price, error) {
	return pricedomain.Price{}, pricedomain.ErrPriceNotFound
}

func (m priceLists) ListPricesForAddon(_ context.Context, addonID string) ([]pricedomain.Price, error) {
	return m[addonID], nil
}

func newService(addons addonMap, prices priceLists) *Service {
	return &Service{log: zap.NewNop(), addons: addons, prices: prices}
}

func fixture() (addonMap, priceLists) {
	addons := addonMap{
		"ao-seats":   {ID: "ao-seats", Name: "Extra Seats"},
		"ao-storage": {ID: "ao-storage", Name: "Storage"},
		"ao-metered": {ID: "ao-metered", Name: "API Calls"},
	}
	prices := priceLists{
		"ao-seats": {
			{ID: "pr-seats-yr", Type: pricedomain.PriceTypeFixed, BillingPeriod: pricedomain.BillingPeriodAnnual, Currency: "usd", Amount: money.FromInt(300)},
			{ID: "pr-seats-mo", Type: pricedomain.PriceTypeFixed, BillingPeriod: pricedomain.BillingPeriodMonthly, Currency: "USD", Amount: money.FromInt(30)},
		},
		"ao-storage": {
			{ID: "pr-storage-mo", Type: pricedomain.PriceTypeFixed, BillingPeriod: pricedomain.BillingPeriodMonthly, Currency: "usd", Amount: money.FromInt(10)},
			{ID: "pr-storage-eur", Type: pricedomain.PriceTypeFixed, BillingPeriod: pricedomain.BillingPeriodMonthly, Currency: "eur", Amount: money.FromInt(9)},
		},
		"ao-metered": {
			{ID: "pr-metered", Type: pricedomain.PriceTypeUsage, BillingPeriod: pricedomain.BillingPeriodMonthly, Currency: "usd", Amount: money.FromInt(1)},
		},
	}
	return addons, prices
}

func TestAggregate(t *testing.T) {
	addons, prices := fixture()
	svc := newService(addons, prices)
	asOf := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	agg, err := svc.Aggregate(context.Background(), []domain.Attachment{
		{AddonID: "ao-seats"},
		{AddonID: "ao-storage"},
	}, pricedomain.BillingPeriodMonthly, "usd", asOf)
	assert.NoError(t, err)

	// 30 (seats, matched case-insensitively on USD) + 10 (storage) = 40.
	assert.True(t, money.FromInt(40).Equal(agg.Total), "got %s", agg.Total)
	assert.Len(t, agg.Breakdown, 2)
	assert.Equal(t, "pr-seats-mo", agg.Breakdown[0].PriceID)
	assert.Equal(t, "pr-storage-mo", agg.Breakdown[1].PriceID)
}

func TestAggregate_UsageOnlyAddonSkipped(t *testing.T) {
	addons, prices := fixture()
	svc := newService(addons, prices)
	asOf := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	agg, err := svc.Aggregate(context.Background(), []domain.Attachment{
		{AddonID: "ao-metered"},
	}, pricedomain.BillingPeriodMonthly, "usd", asOf)
	assert.NoError(t, err)
	assert.True(t, agg.Total.IsZero())
	assert.Empty(t, agg.Breakdown)
}

func TestAggregate_AttachmentWindow(t *testing.T) {
	addons, prices := fixture()
	svc := newService(addons, prices)
	asOf := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	agg, err := svc.Aggregate(context.Background(), []domain.Attachment{
		{AddonID: "ao-seats", StartDate: lo.ToPtr(asOf.AddDate(0, 1, 0))}, // not started
		{AddonID: "ao-storage", EndDate: lo.ToPtr(asOf.AddDate(0, -1, 0))}, // lapsed
	}, pricedomain.BillingPeriodMonthly, "usd", asOf)
	assert.NoError(t, err)
	assert.True(t, agg.Total.IsZero())
	assert.Empty(t, agg.Breakdown)
}

func TestAggregate_UnknownAddon(t *testing.T) {
	addons, prices := fixture()
	svc := newService(addons, prices)

	_, err := svc.Aggregate(context.Background(), []domain.Attachment{
		{AddonID: "ao-ghost"},
	}, pricedomain.BillingPeriodMonthly, "usd", time.Now())
	assert.ErrorIs(t, err, domain.ErrAddonNotFound)
}
