package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/pricingkit/internal/money"
)

// TaxRate is a configured tax definition carrying its own percentage.
// Code is a stable engine-facing identifier, immutable once referenced by an
// override.
type TaxRate struct {
	Code        string          `json:"code"`
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	Percentage  decimal.Decimal `json:"percentage"`
}

func (r TaxRate) Validate() error {
	if r.Code == "" {
		return ErrInvalidTaxCode
	}
	if r.Percentage.IsNegative() {
		return ErrInvalidTaxRate
	}
	return nil
}

// TaxRateOverride attaches a configured rate to an invoicing context. Only
// auto-apply overrides matching the invoice currency contribute to tax.
type TaxRateOverride struct {
	TaxRateCode string `json:"tax_rate_code"`
	Currency    string `json:"currency"`
	AutoApply   bool   `json:"auto_apply"`
	Priority    int    `json:"priority"`
}

// TaxLine is one rate's contribution, kept for display.
type TaxLine struct {
	Code       string          `json:"code"`
	Name       string          `json:"name,omitempty"`
	Percentage decimal.Decimal `json:"percentage"`
	Amount     money.Amount    `json:"amount"`
}

// Result is the computed tax for a subtotal.
type Result struct {
	Total money.Amount `json:"total"`
	Lines []TaxLine    `json:"lines"`
}

// Catalog is the pre-fetched tax configuration supplied by the caller.
type Catalog interface {
	GetTaxRate(ctx context.Context, code string) (TaxRate, error)
	ListTaxOverrides(ctx context.Context) ([]TaxRateOverride, error)
}

// Service applies configured tax rates to a subtotal.
type Service interface {
	// TaxFor filters the overrides to auto-apply entries matching the
	// currency, resolves each to its configured rate and combines them per
	// the engine's tax combination mode.
	TaxFor(ctx context.Context, subtotal money.Amount, overrides []TaxRateOverride, currency string) (Result, error)
}

var (
	ErrInvalidTaxCode      = errors.New("invalid_tax_code")
	ErrInvalidTaxRate      = errors.New("invalid_tax_rate")
	ErrUnresolvableTaxRate = errors.New("unresolvable_tax_rate")
)
