package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/smallbiznis/pricingkit/internal/addon/domain"
	"github.com/smallbiznis/pricingkit/internal/money"
	pricedomain "github.com/smallbiznis/pricingkit/internal/price/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log *zap.Logger

	addons domain.Catalog
	prices pricedomain.Catalog
}

type ServiceParam struct {
	fx.In

	Log    *zap.Logger
	Addons domain.Catalog
	Prices pricedomain.Catalog
}

func New(p ServiceParam) domain.Service {
	return &Service{
		log:    p.Log.Named("addon.service"),
		addons: p.Addons,
		prices: p.Prices,
	}
}

func (s *Service) Aggregate(
	ctx context.Context,
	attachments []domain.Attachment,
	billingPeriod pricedomain.BillingPeriod,
	currency string,
	asOf time.Time,
) (domain.Aggregation, error) {
	agg := domain.Aggregation{Total: money.Zero()}

	for _, attachment := range attachments {
		if !attachment.ActiveAt(asOf) {
			continue
		}

		addon, err := s.addons.GetAddon(ctx, attachment.AddonID)
		if err != nil {
			return agg, fmt.Errorf("addon %s: %w", attachment.AddonID, err)
		}

		prices, err := s.prices.ListPricesForAddon(ctx, addon.ID)
		if err != nil {
			return agg, fmt.Errorf("addon %s: %w", addon.ID, err)
		}

		matched, ok := matchRecurringPrice(prices, billingPeriod, currency)
		if !ok {
			// Usage-only addons have no recurring component; skipping them
			// from a recurring total is the correct outcome.
			s.log.Debug("no matching recurring price for addon",
				zap.String("addon_id", addon.ID),
				zap.String("billing_period", string(billingPeriod)),
				zap.String("currency", currency),
			)
			continue
		}

		agg.Total = agg.Total.Add(matched.Amount)
		agg.Breakdown = append(agg.Breakdown, domain.BreakdownLine{
			AddonID:   addon.ID,
			AddonName: addon.Name,
			PriceID:   matched.ID,
			Amount:    matched.Amount,
		})
	}

	return agg, nil
}

// matchRecurringPrice finds the addon's FIXED price whose billing period and
// currency match the subscription's, case-insensitively on currency.
func matchRecurringPrice(prices []pricedomain.Price, billingPeriod pricedomain.BillingPeriod, currency string) (pricedomain.Price, bool) {
	for _, p := range prices {
		if p.Type != pricedomain.PriceTypeFixed {
			continue
		}
		if p.BillingPeriod != billingPeriod {
			continue
		}
		if !strings.EqualFold(p.Currency, currency) {
			continue
		}
		return p, true
	}
	return pricedomain.Price{}, false
}
