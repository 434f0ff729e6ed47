package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	amount, err := FromString(" 19.99 ")
	assert.NoError(t, err)
	assert.Equal(t, "19.99", amount.String())

	_, err = FromString("not-a-number")
	assert.Error(t, err)
}

func TestArithmetic(t *testing.T) {
	a := FromInt(100)
	b := MustFromString("0.1")

	assert.Equal(t, "100.1", a.Add(b).String())
	assert.Equal(t, "99.9", a.Sub(b).String())
	assert.Equal(t, "250", a.Mul(decimal.NewFromFloat(2.5)).String())
	assert.Equal(t, "-100", a.Neg().String())
}

func TestNoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 is exactly 0.3 in decimal arithmetic.
	sum := MustFromString("0.1").Add(MustFromString("0.2"))
	assert.True(t, MustFromString("0.3").Equal(sum))
}

func TestClampZero(t *testing.T) {
	assert.True(t, FromInt(-5).ClampZero().IsZero())
	assert.True(t, FromInt(5).ClampZero().Equal(FromInt(5)))
}

func TestMinMaxSum(t *testing.T) {
	a, b := FromInt(3), FromInt(7)
	assert.True(t, Min(a, b).Equal(a))
	assert.True(t, Max(a, b).Equal(b))
	assert.True(t, Sum([]Amount{a, b, FromInt(10)}).Equal(FromInt(20)))
	assert.True(t, Sum(nil).IsZero())
}

func TestDisplay(t *testing.T) {
	amount := MustFromString("121")
	assert.Equal(t, "121.00", amount.Display("usd"))
	assert.Equal(t, "121", amount.Display("jpy"))
	assert.Equal(t, "121", amount.Display("JPY"))

	assert.Equal(t, "121.000", amount.DisplayFixed(3))
	assert.Equal(t, "121", amount.DisplayFixed(0))

	assert.Equal(t, int32(2), DisplayPrecision("eur"))
	assert.Equal(t, int32(0), DisplayPrecision("krw"))
}

func TestJSONRoundTrip(t *testing.T) {
	payload, err := json.Marshal(MustFromString("19.99"))
	assert.NoError(t, err)
	assert.Equal(t, `"19.99"`, string(payload))

	var amount Amount
	assert.NoError(t, json.Unmarshal([]byte(`"42.5"`), &amount))
	assert.True(t, MustFromString("42.5").Equal(amount))

	assert.NoError(t, json.Unmarshal([]byte(`7`), &amount))
	assert.True(t, FromInt(7).Equal(amount))

	assert.Error(t, json.Unmarshal([]byte(`"oops"`), &amount))
}
