package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a fixed-precision monetary value. Amounts cross the engine
// boundary as decimal strings and never as binary floating point.
type Amount struct {
	dec decimal.Decimal
}

// Zero returns a zero amount.
func Zero() Amount { return Amount{dec: decimal.Zero} }

// FromString parses a decimal string (e.g. "100", "19.99").
func FromString(value string) (Amount, error) {
	dec, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return Amount{dec: dec}, nil
}

// MustFromString is FromString for trusted literals, mostly tests and seeds.
func MustFromString(value string) Amount {
	amount, err := FromString(value)
	if err != nil {
		panic(err)
	}
	return amount
}

// FromInt builds an amount from whole units.
func FromInt(value int64) Amount { return Amount{dec: decimal.NewFromInt(value)} }

// FromDecimal wraps an existing decimal.
func FromDecimal(dec decimal.Decimal) Amount { return Amount{dec: dec} }

// Decimal exposes the underlying decimal for quantity math at call sites
// that already operate on decimals.
func (a Amount) Decimal() decimal.Decimal { return a.dec }

func (a Amount) Add(b Amount) Amount { return Amount{dec: a.dec.Add(b.dec)} }
func (a Amount) Sub(b Amount) Amount { return Amount{dec: a.dec.Sub(b.dec)} }
func (a Amount) Neg() Amount         { return Amount{dec: a.dec.Neg()} }

// Mul multiplies by a dimensionless decimal (a quantity, rate or factor).
func (a Amount) Mul(factor decimal.Decimal) Amount { return Amount{dec: a.dec.Mul(factor)} }

// Div divides by a dimensionless decimal. Division by zero panics upstream in
// shopspring/decimal; callers guard quantity zero before unit-cost math.
func (a Amount) Div(divisor decimal.Decimal) Amount { return Amount{dec: a.dec.Div(divisor)} }

func (a Amount) IsZero() bool           { return a.dec.IsZero() }
func (a Amount) IsNegative() bool       { return a.dec.IsNegative() }
func (a Amount) Equal(b Amount) bool    { return a.dec.Equal(b.dec) }
func (a Amount) LessThan(b Amount) bool { return a.dec.LessThan(b.dec) }
func (a Amount) GreaterThan(b Amount) bool {
	return a.dec.GreaterThan(b.dec)
}

// ClampZero floors the amount at zero. Discount passes use it so a stack of
// coupons never produces a negative payable.
func (a Amount) ClampZero() Amount {
	if a.dec.IsNegative() {
		return Zero()
	}
	return a
}

func Min(a, b Amount) Amount {
	if a.dec.LessThan(b.dec) {
		return a
	}
	return b
}

func Max(a, b Amount) Amount {
	if a.dec.GreaterThan(b.dec) {
		return a
	}
	return b
}

// Sum folds a slice of amounts.
func Sum(amounts []Amount) Amount {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Round rounds half away from zero to the given number of decimal places.
func (a Amount) Round(places int32) Amount { return Amount{dec: a.dec.Round(places)} }

func (a Amount) String() string { return a.dec.String() }

// zeroDecimalCurrencies are ISO currencies with no minor unit.
var zeroDecimalCurrencies = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {}, "kmf": {},
	"krw": {}, "mga": {}, "pyg": {}, "rwf": {}, "vnd": {}, "vuv": {}, "xaf": {},
	"xof": {}, "xpf": {},
}

// DisplayPrecision returns the number of decimal places used when rendering
// an amount in the given currency.
func DisplayPrecision(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[strings.ToLower(currency)]; ok {
		return 0
	}
	return 2
}

// Display renders the amount at the currency's display precision without a
// symbol, e.g. "80.00" for usd, "500" for jpy.
func (a Amount) Display(currency string) string {
	return a.dec.StringFixed(DisplayPrecision(currency))
}

// DisplayFixed renders the amount at an explicit precision, for callers with
// a configured precision policy.
func (a Amount) DisplayFixed(precision int32) string {
	return a.dec.StringFixed(precision)
}

// MarshalJSON encodes the amount as a decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.dec.String() + `"`), nil
}

// UnmarshalJSON accepts either a JSON string or a bare number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	dec, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	a.dec = dec
	return nil
}
