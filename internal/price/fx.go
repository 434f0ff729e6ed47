package price

import (
	"github.com/smallbiznis/pricingkit/internal/price/service"
	"go.uber.org/fx"
)

var Module = fx.Module("price.service",
	fx.Provide(service.New),
)
