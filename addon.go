package pricingkit

import (
	addondomain "github.com/smallbiznis/pricingkit/internal/addon/domain"
	addonsvc "github.com/smallbiznis/pricingkit/internal/addon/service"
	"go.uber.org/zap"
)

type (
	Addon              = addondomain.Addon
	AddonAttachment    = addondomain.Attachment
	AddonBreakdownLine = addondomain.BreakdownLine
	AddonAggregation   = addondomain.Aggregation
)

var (
	ErrAddonNotFound        = addondomain.ErrAddonNotFound
	ErrNoMatchingAddonPrice = addondomain.ErrNoMatchingAddonPrice
)

// AddonService sums the recurring charges of attached addons.
type AddonService = addondomain.Service

// AddonCatalog is the pre-fetched addon collection supplied by the caller.
type AddonCatalog = addondomain.Catalog

func NewAddonService(log *zap.Logger, addons AddonCatalog, prices PriceCatalog) AddonService {
	return addonsvc.New(addonsvc.ServiceParam{Log: log, Addons: addons, Prices: prices})
}
