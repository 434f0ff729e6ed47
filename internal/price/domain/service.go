package domain

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/pricingkit/internal/money"
)

// Catalog is the pre-fetched price collection supplied by the caller.
type Catalog interface {
	GetPrice(ctx context.Context, id string) (Price, error)
	ListPricesForAddon(ctx context.Context, addonID string) ([]Price, error)
}

// Service resolves tier charges, per-model costs and price overrides.
type Service interface {
	// ResolveTierCharge computes the charge for a quantity against a tier
	// table in the given mode.
	ResolveTierCharge(mode TierMode, tiers []PriceTier, quantity decimal.Decimal) (money.Amount, error)

	// FirstTierUnitAmount exposes the first tier's unit amount for
	// "starting at" list displays, without requiring a quantity.
	FirstTierUnitAmount(tiers []PriceTier) (money.Amount, error)

	// CalculateCost computes the cost of a quantity under any billing model.
	CalculateCost(price Price, quantity decimal.Decimal) (money.Amount, error)

	// CalculateCostWithBreakup additionally returns the effective unit cost
	// and the selected tier for display widgets.
	CalculateCostWithBreakup(price Price, quantity decimal.Decimal) (CostBreakup, error)

	// MergeOverride derives the effective price from a base price and an
	// optional partial override.
	MergeOverride(base Price, override *PriceOverride) (EffectivePrice, error)

	// HasChanges reports whether the override semantically changes the base
	// price. Restating the base configuration, including SLAB_TIERED over an
	// already slab-tiered base, is not a change.
	HasChanges(base Price, override *PriceOverride) (bool, error)
}
