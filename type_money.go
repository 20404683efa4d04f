package propfolio

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// reportingCurrency is the single currency the engine computes in. Currency
// conversion is out of scope; every Money in a calculation shares it.
const reportingCurrency = money.USD

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value as an exact decimal amount in the
// reporting currency. The zero value is $0.00 and ready to use.
type Money struct {
	value decimal.Decimal
}

// M creates a Money from any numeric value without going through binary
// floating point representation issues for integral types.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney creates a Money from its decimal string representation
// (e.g. "1013.37"). The string form preserves every digit exactly.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// MulF scales the amount by a plain scalar (e.g. a number of months).
func (m Money) MulF(x float64) Money { return Money{value: m.value.Mul(decimal.NewFromFloat(x))} }

// DivF divides the amount by a plain scalar. Dividing by zero is a caller
// contract violation, exactly like dividing an int by zero.
func (m Money) DivF(x float64) Money { return Money{value: m.value.Div(decimal.NewFromFloat(x))} }

// Div divides one amount by another, yielding a scalar ratio. The divisor
// must be non-zero; callers guard it explicitly.
func (m Money) Div(n Money) float64 { return m.value.Div(n.value).InexactFloat64() }

// MulPercent applies a rate to the amount, e.g. rent times a vacancy rate.
// An infinite rate has no meaningful money product and yields zero.
func (m Money) MulPercent(p Percent) Money {
	if p.IsInfinite() {
		return Money{}
	}
	return Money{value: m.value.Mul(decimal.NewFromFloat(p.Fraction()))}
}

// Min returns the smaller of the two amounts.
func (m Money) Min(n Money) Money {
	if m.LessThan(n) {
		return m
	}
	return n
}

// Round returns the amount rounded to whole cents.
func (m Money) Round() Money { return Money{value: m.value.Round(2)} }

// AsFloat converts the amount to float64 for ratio-style metrics that are
// plain floats (DSCR, GRM). Monetary arithmetic stays in decimal.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// Decimal exposes the underlying exact value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// currency returns the reporting currency metadata.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, reportingCurrency).Currency()
}

// String returns the two-decimal currency representation, e.g. "$1,013.37".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON renders the amount rounded to cents as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.Round(2).MarshalJSON()
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}
