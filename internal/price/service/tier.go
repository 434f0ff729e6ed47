package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/pricingkit/internal/money"
	"github.com/smallbiznis/pricingkit/internal/price/domain"
)

// ResolveTierCharge computes the charge for a quantity against a tier table.
// VOLUME bills the whole quantity at the single tier it lands in; SLAB walks
// every tier up to and including the one containing the quantity, billing the
// final tier only for the consumed portion.
func (s *Service) ResolveTierCharge(mode domain.TierMode, tiers []domain.PriceTier, quantity decimal.Decimal) (money.Amount, error) {
	charge, _, err := s.resolveTiered(mode, tiers, quantity)
	return charge, err
}

// FirstTierUnitAmount returns the first tier's unit amount for "starting at"
// summaries in list views.
func (s *Service) FirstTierUnitAmount(tiers []domain.PriceTier) (money.Amount, error) {
	if err := validateTiers(tiers); err != nil {
		return money.Zero(), err
	}
	return tiers[0].UnitAmount, nil
}

// resolveTiered returns the charge and the index of the last tier consumed.
func (s *Service) resolveTiered(mode domain.TierMode, tiers []domain.PriceTier, quantity decimal.Decimal) (money.Amount, int, error) {
	if err := validateTiers(tiers); err != nil {
		return money.Zero(), -1, err
	}
	if quantity.IsNegative() {
		return money.Zero(), -1, fmt.Errorf("%w: negative quantity %s", domain.ErrInvalidTierConfig, quantity)
	}
	if quantity.IsZero() {
		return money.Zero(), -1, nil
	}

	switch mode {
	case domain.TierModeVolume:
		return volumeCharge(tiers, quantity)
	case domain.TierModeSlab:
		return slabCharge(tiers, quantity)
	default:
		return money.Zero(), -1, fmt.Errorf("%w: %q", domain.ErrInvalidTierMode, mode)
	}
}

// volumeCharge bills the entire quantity at the rate of the tier whose range
// contains it. The first tier starts at zero; subsequent tiers start at the
// previous tier's upper bound.
func volumeCharge(tiers []domain.PriceTier, quantity decimal.Decimal) (money.Amount, int, error) {
	for i, tier := range tiers {
		if tier.UpTo == nil || quantity.LessThanOrEqual(decimal.NewFromUint64(*tier.UpTo)) {
			charge := tier.UnitAmount.Mul(quantity).Add(tier.FlatAmount)
			return charge, i, nil
		}
	}
	// Unreachable with a valid table: the unbounded tier catches the rest and
	// a fully bounded table rejects quantities past its last bound.
	last := tiers[len(tiers)-1]
	return money.Zero(), -1, fmt.Errorf("%w: quantity %s exceeds last tier bound %d",
		domain.ErrInvalidTierConfig, quantity, *last.UpTo)
}

// slabCharge bills progressively across every tier the quantity spans.
func slabCharge(tiers []domain.PriceTier, quantity decimal.Decimal) (money.Amount, int, error) {
	total := money.Zero()
	from := decimal.Zero
	for i, tier := range tiers {
		var width decimal.Decimal
		if tier.UpTo == nil {
			width = quantity.Sub(from)
		} else {
			upTo := decimal.NewFromUint64(*tier.UpTo)
			width = decimal.Min(quantity, upTo).Sub(from)
			from = upTo
		}
		if width.IsPositive() {
			total = total.Add(tier.UnitAmount.Mul(width)).Add(tier.FlatAmount)
		}
		if tier.UpTo == nil || quantity.LessThanOrEqual(decimal.NewFromUint64(*tier.UpTo)) {
			return total, i, nil
		}
	}
	last := tiers[len(tiers)-1]
	return money.Zero(), -1, fmt.Errorf("%w: quantity %s exceeds last tier bound %d",
		domain.ErrInvalidTierConfig, quantity, *last.UpTo)
}

// validateTiers enforces the tier table invariant: non-empty, strictly
// increasing bounds, and at most one unbounded tier in last position.
func validateTiers(tiers []domain.PriceTier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%w: empty tier table", domain.ErrInvalidTierConfig)
	}

	var prev *uint64
	for i, tier := range tiers {
		if tier.UpTo == nil {
			if i != len(tiers)-1 {
				return fmt.Errorf("%w: unbounded tier at position %d must be last", domain.ErrInvalidTierConfig, i)
			}
			continue
		}
		if *tier.UpTo == 0 {
			return fmt.Errorf("%w: tier %d has zero upper bound", domain.ErrInvalidTierConfig, i)
		}
		if prev != nil && *tier.UpTo <= *prev {
			return fmt.Errorf("%w: tier bounds not increasing at position %d", domain.ErrInvalidTierConfig, i)
		}
		prev = tier.UpTo
	}
	return nil
}
