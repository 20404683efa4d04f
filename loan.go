package propfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Loan term and rate bounds enforced at construction. These are contract
// checks on the caller, not user-input validation: violating them fails the
// constructing call.
const (
	maxLoanRate Percent = 30
	minLoanTerm         = 1
	maxLoanTerm         = 360
)

// LoanDetails models a single fixed-rate loan. Immutable once constructed;
// whichever analysis or calculator builds it owns it.
type LoanDetails struct {
	amount       Money
	rate         Percent // annual rate in percentage units
	termMonths   int
	interestOnly bool
	name         string
}

// LoanPayment is the monthly payment split into its components.
// Principal + Interest == Total within rounding.
type LoanPayment struct {
	Total     Money `json:"total"`
	Principal Money `json:"principal"`
	Interest  Money `json:"interest"`
}

// AmortizationEntry is one period of an amortization schedule.
type AmortizationEntry struct {
	Period           int   `json:"period"`
	Payment          Money `json:"payment"`
	Principal        Money `json:"principal"`
	Interest         Money `json:"interest"`
	RemainingBalance Money `json:"remainingBalance"`
}

// NewLoan creates a LoanDetails, enforcing the construction invariants:
// a strictly positive amount, an annual rate within [0%, 30%], and a term
// within [1, 360] months.
func NewLoan(amount Money, rate Percent, termMonths int, interestOnly bool, name string) (LoanDetails, error) {
	if !amount.IsPositive() {
		return LoanDetails{}, fmt.Errorf("loan amount must be positive, got %s", amount)
	}
	if rate.IsInfinite() || rate < 0 || rate > maxLoanRate {
		return LoanDetails{}, fmt.Errorf("loan interest rate must be between 0%% and %s, got %s", maxLoanRate, rate)
	}
	if termMonths < minLoanTerm || termMonths > maxLoanTerm {
		return LoanDetails{}, fmt.Errorf("loan term must be between %d and %d months, got %d", minLoanTerm, maxLoanTerm, termMonths)
	}
	return LoanDetails{
		amount:       amount,
		rate:         rate,
		termMonths:   termMonths,
		interestOnly: interestOnly,
		name:         name,
	}, nil
}

func (l LoanDetails) Amount() Money        { return l.amount }
func (l LoanDetails) Rate() Percent        { return l.rate }
func (l LoanDetails) TermMonths() int      { return l.termMonths }
func (l LoanDetails) IsInterestOnly() bool { return l.interestOnly }
func (l LoanDetails) Name() string         { return l.name }

// IsZero reports whether l is the zero LoanDetails (no loan).
func (l LoanDetails) IsZero() bool { return l.amount.IsZero() && l.termMonths == 0 }

// monthlyRate returns the monthly rate as an exact decimal fraction.
func (l LoanDetails) monthlyRate() decimal.Decimal {
	return decimal.NewFromFloat(l.rate.Fraction()).Div(decimal.NewFromInt(12))
}

// compound returns (1+r)^periods for the monthly rate.
func (l LoanDetails) compound(periods int) decimal.Decimal {
	onePlusR := decimal.NewFromInt(1).Add(l.monthlyRate())
	d, err := onePlusR.PowInt32(int32(periods))
	if err != nil {
		// onePlusR >= 1 and periods >= 0, so PowInt32 cannot fail here.
		panic(err)
	}
	return d
}

// Payment computes the monthly payment split into principal and interest.
//
// Three disjoint regimes apply, in priority order:
//  1. zero rate: the principal is divided linearly over the term, even for
//     loans marked interest-only (there is no interest to isolate);
//  2. interest-only: payment is amount times the monthly rate, no principal;
//  3. amortizing: payment = P * r(1+r)^n / ((1+r)^n - 1).
func (l LoanDetails) Payment() LoanPayment {
	n := decimal.NewFromInt(int64(l.termMonths))
	switch {
	case l.rate == 0:
		principal := Money{value: l.amount.value.Div(n)}
		return LoanPayment{Total: principal, Principal: principal}
	case l.interestOnly:
		interest := Money{value: l.amount.value.Mul(l.monthlyRate())}
		return LoanPayment{Total: interest, Interest: interest}
	default:
		r := l.monthlyRate()
		fn := l.compound(l.termMonths)
		payment := Money{value: l.amount.value.Mul(r).Mul(fn).Div(fn.Sub(decimal.NewFromInt(1)))}
		interest := Money{value: l.amount.value.Mul(r)}
		return LoanPayment{Total: payment, Interest: interest, Principal: payment.Sub(interest)}
	}
}

// RemainingBalance returns the principal still owed after paymentsMade
// monthly payments. A negative paymentsMade is a usage error. Once the term
// has elapsed the loan is retired and the balance is zero. Interest-only
// loans owe the full principal until the final payment; zero-rate loans
// reduce linearly; amortizing loans follow the actuarial formula
// B = P * ((1+r)^n - (1+r)^p) / ((1+r)^n - 1).
func (l LoanDetails) RemainingBalance(paymentsMade int) (Money, error) {
	if paymentsMade < 0 {
		return Money{}, fmt.Errorf("payments made must not be negative, got %d", paymentsMade)
	}
	if paymentsMade >= l.termMonths {
		return Money{}, nil
	}
	if paymentsMade == 0 {
		return l.amount, nil
	}
	switch {
	case l.interestOnly:
		return l.amount, nil
	case l.rate == 0:
		n := decimal.NewFromInt(int64(l.termMonths))
		left := decimal.NewFromInt(int64(l.termMonths - paymentsMade))
		return Money{value: l.amount.value.Mul(left).Div(n)}, nil
	default:
		one := decimal.NewFromInt(1)
		fn := l.compound(l.termMonths)
		fp := l.compound(paymentsMade)
		return Money{value: l.amount.value.Mul(fn.Sub(fp)).Div(fn.Sub(one))}, nil
	}
}

// BalloonBalance is the lump remaining balance due when the loan is paid off
// at atMonth, before full amortization.
func (l LoanDetails) BalloonBalance(atMonth int) (Money, error) {
	return l.RemainingBalance(atMonth)
}

// AmortizationSchedule generates the per-period breakdown of the loan. A
// maxPeriods of zero or less (or beyond the term) yields the full schedule.
//
// Interest-only loans carry zero principal in every period before the term;
// the final period, present only when the schedule reaches the full term,
// carries the entire principal plus that period's interest. In all regimes
// the final full-term period forces principal = remaining balance, so
// rounding drift is absorbed rather than accumulated.
func (l LoanDetails) AmortizationSchedule(maxPeriods int) []AmortizationEntry {
	periods := l.termMonths
	if maxPeriods > 0 && maxPeriods < periods {
		periods = maxPeriods
	}

	payment := l.Payment()
	r := l.monthlyRate()
	remaining := l.amount
	schedule := make([]AmortizationEntry, 0, periods)

	for period := 1; period <= periods; period++ {
		interest := Money{value: remaining.value.Mul(r)}.Round()
		var principal Money
		switch {
		case l.rate == 0:
			interest = Money{}
			principal = payment.Principal.Round()
		case l.interestOnly:
			principal = Money{}
		default:
			principal = payment.Total.Round().Sub(interest)
		}

		// Last period of the full term: retire whatever is left.
		if period == l.termMonths {
			principal = remaining
		}

		remaining = remaining.Sub(principal)
		if remaining.IsNegative() {
			remaining = Money{}
		}

		schedule = append(schedule, AmortizationEntry{
			Period:           period,
			Payment:          principal.Add(interest),
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: remaining,
		})
	}
	return schedule
}

// AnnuityPresentValue returns the loan principal a fixed monthly payment can
// support at the given annual rate over termMonths, the inverse of the
// amortizing payment formula: L = pmt * ((1+r)^n - 1) / (r * (1+r)^n).
// A zero rate degenerates to payment times term.
func AnnuityPresentValue(payment Money, rate Percent, termMonths int) Money {
	if !payment.IsPositive() || termMonths <= 0 {
		return Money{}
	}
	if rate == 0 {
		return payment.MulF(float64(termMonths))
	}
	r := decimal.NewFromFloat(rate.Fraction()).Div(decimal.NewFromInt(12))
	one := decimal.NewFromInt(1)
	fn, err := one.Add(r).PowInt32(int32(termMonths))
	if err != nil {
		return Money{}
	}
	return Money{value: payment.value.Mul(fn.Sub(one)).Div(r.Mul(fn))}
}

func (l LoanDetails) String() string {
	kind := "amortizing"
	if l.interestOnly {
		kind = "interest-only"
	}
	if l.rate == 0 {
		kind = "zero-interest"
	}
	if l.name != "" {
		return fmt.Sprintf("%s: %s at %s over %d months (%s)", l.name, l.amount, l.rate, l.termMonths, kind)
	}
	return fmt.Sprintf("%s at %s over %d months (%s)", l.amount, l.rate, l.termMonths, kind)
}

// MarshalJSON implements the json.Marshaler interface for LoanDetails.
func (l LoanDetails) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("name", l.name)
	w.Append("amount", l.amount)
	w.Append("interestRate", float64(l.rate))
	w.Append("termMonths", l.termMonths)
	w.Optional("interestOnly", l.interestOnly)
	return w.MarshalJSON()
}
