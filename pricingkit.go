// Package pricingkit is a pure pricing-resolution and billing-preview
// calculation engine. Given a price definition, an optional override, a set
// of applicable coupons, addons and tax rates, it computes the customer's
// payable amount at each point of a multi-phase subscription lifecycle.
//
// The engine is a synchronous, side-effect-free library: it does not fetch
// data, persist results or convert currencies. Callers populate an in-memory
// catalog (or supply their own catalog implementations) and use the services
// independently, or wire everything at once through Module in an fx app.
package pricingkit

import (
	"github.com/smallbiznis/pricingkit/internal/addon"
	"github.com/smallbiznis/pricingkit/internal/billingcycle"
	"github.com/smallbiznis/pricingkit/internal/catalog"
	"github.com/smallbiznis/pricingkit/internal/config"
	"github.com/smallbiznis/pricingkit/internal/coupon"
	"github.com/smallbiznis/pricingkit/internal/logger"
	"github.com/smallbiznis/pricingkit/internal/preview"
	"github.com/smallbiznis/pricingkit/internal/price"
	"github.com/smallbiznis/pricingkit/internal/tax"
	"go.uber.org/fx"
)

// Module wires the whole engine: configuration, logging, the in-memory
// catalog and every calculation service.
var Module = fx.Options(
	config.Module,
	logger.Module,
	catalog.Module,
	price.Module,
	coupon.Module,
	addon.Module,
	tax.Module,
	billingcycle.Module,
	preview.Module,
)
