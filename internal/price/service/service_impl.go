package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/pricingkit/internal/money"
	"github.com/smallbiznis/pricingkit/internal/price/domain"
	"go.uber.org/zap"
)

type Service struct {
	log *zap.Logger
}

func New(log *zap.Logger) domain.Service {
	return &Service{log: log.Named("price.service")}
}

// CalculateCost computes the cost of a quantity under the price's billing
// model. Quantity zero always costs zero.
func (s *Service) CalculateCost(price domain.Price, quantity decimal.Decimal) (money.Amount, error) {
	breakup, err := s.CalculateCostWithBreakup(price, quantity)
	if err != nil {
		return money.Zero(), err
	}
	return breakup.FinalCost, nil
}

func (s *Service) CalculateCostWithBreakup(price domain.Price, quantity decimal.Decimal) (domain.CostBreakup, error) {
	breakup := domain.CostBreakup{
		EffectiveUnitCost: money.Zero(),
		TierUnitAmount:    money.Zero(),
		FinalCost:         money.Zero(),
		SelectedTierIndex: -1,
	}

	if quantity.IsNegative() {
		return breakup, fmt.Errorf("price %s: %w: quantity %s", price.ID, domain.ErrInvalidQuantity, quantity)
	}
	if quantity.IsZero() {
		return breakup, nil
	}

	switch price.BillingModel {
	case domain.BillingModelFlatFee:
		breakup.FinalCost = price.Amount.Mul(quantity)
		breakup.EffectiveUnitCost = price.Amount
		breakup.TierUnitAmount = price.Amount

	case domain.BillingModelPackage:
		divideBy := decimal.NewFromInt(1)
		round := domain.RoundUp
		if price.TransformQuantity != nil {
			if price.TransformQuantity.DivideBy > 0 {
				divideBy = decimal.NewFromInt(price.TransformQuantity.DivideBy)
			}
			if price.TransformQuantity.Round != "" {
				round = price.TransformQuantity.Round
			}
		}

		packages := quantity.Div(divideBy)
		if round == domain.RoundDown {
			packages = packages.Floor()
		} else {
			packages = packages.Ceil()
		}

		breakup.FinalCost = price.Amount.Mul(packages)
		breakup.EffectiveUnitCost = breakup.FinalCost.Div(quantity)
		breakup.TierUnitAmount = price.Amount.Div(divideBy)

	case domain.BillingModelTiered:
		charge, index, err := s.resolveTiered(price.TierMode, price.Tiers, quantity)
		if err != nil {
			return breakup, fmt.Errorf("price %s: %w", price.ID, err)
		}
		breakup.FinalCost = charge
		breakup.EffectiveUnitCost = charge.Div(quantity)
		breakup.TierUnitAmount = price.Tiers[index].UnitAmount
		breakup.SelectedTierIndex = index

	default:
		return breakup, fmt.Errorf("price %s: %w: %s", price.ID, domain.ErrInvalidBillingModel, price.BillingModel)
	}

	return breakup, nil
}
