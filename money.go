package pricingkit

import (
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/pricingkit/internal/money"
)

// Amount is the engine's fixed-precision monetary value. Amounts cross the
// engine boundary as decimal strings, never as binary floating point.
type Amount = money.Amount

// NewAmount parses a decimal string (e.g. "100", "19.99").
func NewAmount(value string) (Amount, error) { return money.FromString(value) }

// MustAmount is NewAmount for trusted literals.
func MustAmount(value string) Amount { return money.MustFromString(value) }

// AmountFromInt builds an amount from whole units.
func AmountFromInt(value int64) Amount { return money.FromInt(value) }

// AmountFromDecimal wraps an existing decimal.
func AmountFromDecimal(dec decimal.Decimal) Amount { return money.FromDecimal(dec) }

// ZeroAmount returns a zero amount.
func ZeroAmount() Amount { return money.Zero() }

// DisplayPrecision returns the number of decimal places used when rendering
// an amount in the given currency.
func DisplayPrecision(currency string) int32 { return money.DisplayPrecision(currency) }
