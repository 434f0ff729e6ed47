package pricingkit

import (
	taxdomain "github.com/smallbiznis/pricingkit/internal/tax/domain"
	taxsvc "github.com/smallbiznis/pricingkit/internal/tax/service"
	"go.uber.org/zap"
)

type (
	TaxRate         = taxdomain.TaxRate
	TaxRateOverride = taxdomain.TaxRateOverride
	TaxLine         = taxdomain.TaxLine
	TaxResult       = taxdomain.Result
)

var (
	ErrInvalidTaxCode      = taxdomain.ErrInvalidTaxCode
	ErrInvalidTaxRate      = taxdomain.ErrInvalidTaxRate
	ErrUnresolvableTaxRate = taxdomain.ErrUnresolvableTaxRate
)

// TaxService applies configured tax rates to a subtotal.
type TaxService = taxdomain.Service

// TaxCatalog is the pre-fetched tax configuration supplied by the caller.
type TaxCatalog = taxdomain.Catalog

func NewTaxService(log *zap.Logger, rates TaxCatalog, cfg *ConfigHolder) TaxService {
	return taxsvc.New(taxsvc.ServiceParam{Log: log, Rates: rates, Cfg: cfg})
}
