package catalog

import (
	addondomain "github.com/smallbiznis/pricingkit/internal/addon/domain"
	coupondomain "github.com/smallbiznis/pricingkit/internal/coupon/domain"
	pricedomain "github.com/smallbiznis/pricingkit/internal/price/domain"
	taxdomain "github.com/smallbiznis/pricingkit/internal/tax/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog",
	fx.Provide(
		New,
		func(c *Catalog) pricedomain.Catalog { return c },
		func(c *Catalog) coupondomain.Catalog { return c },
		func(c *Catalog) addondomain.Catalog { return c },
		func(c *Catalog) taxdomain.Catalog { return c },
	),
)
