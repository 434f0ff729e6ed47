package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/pricingkit/internal/config"
	"github.com/smallbiznis/pricingkit/internal/money"
	"github.com/smallbiznis/pricingkit/internal/tax/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var oneHundred = decimal.NewFromInt(100)

type Service struct {
	log   *zap.Logger
	rates domain.Catalog
	cfg   *config.Holder
}

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	Rates domain.Catalog
	Cfg   *config.Holder
}

func New(p ServiceParam) domain.Service {
	return &Service{
		log:   p.Log.Named("tax.service"),
		rates: p.Rates,
		cfg:   p.Cfg,
	}
}

func (s *Service) TaxFor(ctx context.Context, subtotal money.Amount, overrides []domain.TaxRateOverride, currency string) (domain.Result, error) {
	result := domain.Result{Total: money.Zero()}
	if subtotal.IsZero() || subtotal.IsNegative() {
		return result, nil
	}

	applicable := lo.Filter(overrides, func(o domain.TaxRateOverride, _ int) bool {
		return o.AutoApply && strings.EqualFold(o.Currency, currency)
	})
	if len(applicable) == 0 {
		return result, nil
	}

	if s.cfg.Current().TaxCombinationMode == config.TaxCombinationPriority {
		// Lowest priority number wins; code breaks ties deterministically.
		sort.SliceStable(applicable, func(i, j int) bool {
			if applicable[i].Priority != applicable[j].Priority {
				return applicable[i].Priority < applicable[j].Priority
			}
			return applicable[i].TaxRateCode < applicable[j].TaxRateCode
		})
		applicable = applicable[:1]
	}

	for _, override := range applicable {
		rate, err := s.rates.GetTaxRate(ctx, override.TaxRateCode)
		if err != nil {
			return domain.Result{Total: money.Zero()}, fmt.Errorf("tax rate %s: %w", override.TaxRateCode, domain.ErrUnresolvableTaxRate)
		}
		if err := rate.Validate(); err != nil {
			return domain.Result{Total: money.Zero()}, fmt.Errorf("tax rate %s: %w", override.TaxRateCode, err)
		}

		amount := subtotal.Mul(rate.Percentage.Div(oneHundred))
		result.Total = result.Total.Add(amount)
		result.Lines = append(result.Lines, domain.TaxLine{
			Code:       rate.Code,
			Name:       rate.Name,
			Percentage: rate.Percentage,
			Amount:     amount,
		})
	}

	return result, nil
}
