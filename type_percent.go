package propfolio

import (
	"encoding/json"
	"fmt"
	"math"
)

// Percent is a rate expressed in percentage units (5 means 5%, not 0.05).
//
// A Percent may be infinite: rate-of-return metrics computed against a zero
// investment yield Infinite rather than an error. Infinity propagates through
// ordinary float arithmetic and compares greater than any finite rate.
type Percent float64

// Infinite is the sentinel returned by rate metrics whose denominator is a
// zero investment.
var Infinite = Percent(math.Inf(1))

// PercentOf returns part as a percentage of whole. A zero whole yields
// Infinite, the documented outcome for rate metrics against zero capital.
func PercentOf(part, whole Money) Percent {
	if whole.IsZero() {
		return Infinite
	}
	return Percent(part.Div(whole) * 100)
}

// FromFraction converts a decimal fraction (0.05) into a Percent (5%).
func FromFraction(f float64) Percent { return Percent(f * 100) }

// Fraction returns the decimal-fraction view of the rate (5% -> 0.05), the
// form used to multiply against Money.
func (p Percent) Fraction() float64 { return float64(p) / 100 }

// IsInfinite reports whether p is the infinite sentinel.
func (p Percent) IsInfinite() bool { return math.IsInf(float64(p), 1) }

func (p Percent) Equal(q Percent) bool {
	if p.IsInfinite() || q.IsInfinite() {
		return p.IsInfinite() && q.IsInfinite()
	}
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// MarshalJSON renders the rate as a bare number. The infinite sentinel has
// no JSON number form and encodes as null.
func (p Percent) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(p), 0) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(p))
}

func (p Percent) String() string {
	if p.IsInfinite() {
		return "∞"
	}
	return fmt.Sprintf("%.3f%%", float64(p))
}

func (p Percent) SignedString() string {
	if p.IsInfinite() {
		return "+∞"
	}
	res := fmt.Sprintf("%+.3f%%", float64(p))
	if res == "+0.000%" {
		return "-"
	}
	return res
}
