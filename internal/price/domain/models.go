package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/pricingkit/internal/money"
)

// PriceType distinguishes recurring fixed charges from metered usage charges.
type PriceType string

const (
	PriceTypeFixed PriceType = "FIXED"
	PriceTypeUsage PriceType = "USAGE"
)

// BillingModel is the charge-calculation strategy for a price.
type BillingModel string

const (
	BillingModelFlatFee BillingModel = "FLAT_FEE"
	BillingModelPackage BillingModel = "PACKAGE"
	BillingModelTiered  BillingModel = "TIERED"

	// BillingModelSlabTiered is a virtual tag accepted only on overrides;
	// the merger normalizes it to TIERED with TierModeSlab.
	BillingModelSlabTiered BillingModel = "SLAB_TIERED"
)

// TierMode selects how a TIERED price walks its tier table.
type TierMode string

const (
	TierModeVolume TierMode = "VOLUME"
	TierModeSlab   TierMode = "SLAB"
)

// InvoiceCadence controls whether a charge is invoiced up front or in arrears.
type InvoiceCadence string

const (
	InvoiceCadenceAdvance InvoiceCadence = "ADVANCE"
	InvoiceCadenceArrears InvoiceCadence = "ARREARS"
)

// BillingPeriod is the recurring interval of a price.
type BillingPeriod string

const (
	BillingPeriodDaily      BillingPeriod = "DAILY"
	BillingPeriodWeekly     BillingPeriod = "WEEKLY"
	BillingPeriodMonthly    BillingPeriod = "MONTHLY"
	BillingPeriodQuarterly  BillingPeriod = "QUARTERLY"
	BillingPeriodHalfYearly BillingPeriod = "HALF_YEARLY"
	BillingPeriodAnnual     BillingPeriod = "ANNUAL"
)

// RoundingMode is the package-count rounding direction for transform-quantity.
type RoundingMode string

const (
	RoundUp   RoundingMode = "up"
	RoundDown RoundingMode = "down"
)

// PriceTier is one row of a tier table. A nil UpTo marks the unbounded last
// tier. FlatAmount is an optional per-tier surcharge, defaulting to zero.
type PriceTier struct {
	UpTo       *uint64      `json:"up_to,omitempty"`
	UnitAmount money.Amount `json:"unit_amount"`
	FlatAmount money.Amount `json:"flat_amount"`
}

// TransformQuantity reshapes a raw quantity into billable packages.
// Meaningful only for the PACKAGE billing model.
type TransformQuantity struct {
	DivideBy int64        `json:"divide_by"`
	Round    RoundingMode `json:"round"`
}

// Price is an immutable price definition.
// Invariant: tiers are contiguous and monotonically increasing in UpTo; at
// most one tier may be unbounded and it must be last.
type Price struct {
	ID                string             `json:"id"`
	DisplayName       string             `json:"display_name,omitempty"`
	Amount            money.Amount       `json:"amount"`
	Currency          string             `json:"currency"`
	Type              PriceType          `json:"type"`
	BillingModel      BillingModel       `json:"billing_model"`
	TierMode          TierMode           `json:"tier_mode,omitempty"`
	Tiers             []PriceTier        `json:"tiers,omitempty"`
	TransformQuantity *TransformQuantity `json:"transform_quantity,omitempty"`
	BillingPeriod     BillingPeriod      `json:"billing_period"`
	InvoiceCadence    InvoiceCadence     `json:"invoice_cadence"`
}

// IsTiered reports whether the price bills through its tier table.
func (p Price) IsTiered() bool { return p.BillingModel == BillingModelTiered }

// PriceOverride is a partial patch over a base price, keyed by price id.
// Absent fields fall back to the base definition.
type PriceOverride struct {
	PriceID           string             `json:"price_id"`
	Amount            *money.Amount      `json:"amount,omitempty"`
	BillingModel      *BillingModel      `json:"billing_model,omitempty"`
	TierMode          *TierMode          `json:"tier_mode,omitempty"`
	Tiers             []PriceTier        `json:"tiers,omitempty"`
	TransformQuantity *TransformQuantity `json:"transform_quantity,omitempty"`
	Quantity          *decimal.Decimal   `json:"quantity,omitempty"`
	EffectiveFrom     *time.Time         `json:"effective_from,omitempty"`
}

// FieldChange is one entry of a human-readable override diff.
type FieldChange struct {
	Field string `json:"field"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// EffectivePrice is the price definition actually used for calculation after
// merging a base price with an optional override.
type EffectivePrice struct {
	Price

	IsOverridden  bool             `json:"is_overridden"`
	Quantity      *decimal.Decimal `json:"quantity,omitempty"`
	EffectiveFrom *time.Time       `json:"effective_from,omitempty"`
	ChangedFields []FieldChange    `json:"changed_fields,omitempty"`
}

// CostBreakup is the display decomposition of a single cost calculation.
// SelectedTierIndex is -1 for non-tiered models.
type CostBreakup struct {
	EffectiveUnitCost money.Amount `json:"effective_unit_cost"`
	TierUnitAmount    money.Amount `json:"tier_unit_amount"`
	FinalCost         money.Amount `json:"final_cost"`
	SelectedTierIndex int          `json:"selected_tier_index"`
}
