package addon

import (
	"github.com/smallbiznis/pricingkit/internal/addon/service"
	"go.uber.org/fx"
)

var Module = fx.Module("addon.service",
	fx.Provide(service.New),
)
