package pricingkit

import (
	pricedomain "github.com/smallbiznis/pricingkit/internal/price/domain"
	pricesvc "github.com/smallbiznis/pricingkit/internal/price/service"
	"go.uber.org/zap"
)

// Price domain types.
type (
	Price             = pricedomain.Price
	PriceTier         = pricedomain.PriceTier
	TransformQuantity = pricedomain.TransformQuantity
	PriceOverride     = pricedomain.PriceOverride
	EffectivePrice    = pricedomain.EffectivePrice
	FieldChange       = pricedomain.FieldChange
	CostBreakup       = pricedomain.CostBreakup

	PriceType      = pricedomain.PriceType
	BillingModel   = pricedomain.BillingModel
	TierMode       = pricedomain.TierMode
	InvoiceCadence = pricedomain.InvoiceCadence
	BillingPeriod  = pricedomain.BillingPeriod
	RoundingMode   = pricedomain.RoundingMode
)

const (
	PriceTypeFixed = pricedomain.PriceTypeFixed
	PriceTypeUsage = pricedomain.PriceTypeUsage

	BillingModelFlatFee    = pricedomain.BillingModelFlatFee
	BillingModelPackage    = pricedomain.BillingModelPackage
	BillingModelTiered     = pricedomain.BillingModelTiered
	BillingModelSlabTiered = pricedomain.BillingModelSlabTiered

	TierModeVolume = pricedomain.TierModeVolume
	TierModeSlab   = pricedomain.TierModeSlab

	InvoiceCadenceAdvance = pricedomain.InvoiceCadenceAdvance
	InvoiceCadenceArrears = pricedomain.InvoiceCadenceArrears

	BillingPeriodDaily      = pricedomain.BillingPeriodDaily
	BillingPeriodWeekly     = pricedomain.BillingPeriodWeekly
	BillingPeriodMonthly    = pricedomain.BillingPeriodMonthly
	BillingPeriodQuarterly  = pricedomain.BillingPeriodQuarterly
	BillingPeriodHalfYearly = pricedomain.BillingPeriodHalfYearly
	BillingPeriodAnnual     = pricedomain.BillingPeriodAnnual

	RoundUp   = pricedomain.RoundUp
	RoundDown = pricedomain.RoundDown
)

var (
	ErrInvalidTierConfig   = pricedomain.ErrInvalidTierConfig
	ErrInvalidQuantity     = pricedomain.ErrInvalidQuantity
	ErrInvalidOverride     = pricedomain.ErrInvalidOverride
	ErrInvalidBillingModel = pricedomain.ErrInvalidBillingModel
	ErrInvalidTierMode     = pricedomain.ErrInvalidTierMode
	ErrPriceNotFound       = pricedomain.ErrPriceNotFound
)

// PriceService resolves tier charges, per-model costs and price overrides.
type PriceService = pricedomain.Service

// PriceCatalog is the pre-fetched price collection supplied by the caller.
type PriceCatalog = pricedomain.Catalog

func NewPriceService(log *zap.Logger) PriceService {
	return pricesvc.New(log)
}
