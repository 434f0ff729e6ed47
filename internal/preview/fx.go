package preview

import (
	"github.com/smallbiznis/pricingkit/internal/preview/service"
	"go.uber.org/fx"
)

var Module = fx.Module("preview.service",
	fx.Provide(service.New),
)
