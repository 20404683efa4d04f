package propfolio

import (
	"github.com/shopspring/decimal"
)

// EquityProjectionInput gathers everything needed to project equity growth.
//
// CurrentValue defaults to the purchase price when zero. When no loan is
// supplied the balance falls back to the down-payment-implied loan
// (purchase price minus down payment); absent both, the property is treated
// as fully owned.
type EquityProjectionInput struct {
	PurchasePrice    Money
	CurrentValue     Money
	Loan             LoanDetails
	DownPayment      Money
	AppreciationRate Percent // annual
	Years            int
	PaymentsMade     int // payments already made before year 1
}

// EquityProjection captures the equity position at the end of the projection
// horizon, with the total gain partitioned into what appreciation produced
// and what principal paydown produced.
type EquityProjection struct {
	Years                  int   `json:"years"`
	FutureValue            Money `json:"futureValue"`
	FutureLoanBalance      Money `json:"futureLoanBalance"`
	InitialEquity          Money `json:"initialEquity"`
	TotalEquity            Money `json:"totalEquity"`
	TotalEquityGain        Money `json:"totalEquityGain"`
	EquityFromAppreciation Money `json:"equityFromAppreciation"`
	EquityFromPrincipal    Money `json:"equityFromPrincipal"`
}

// YearlyProjection is the equity position at the end of one projection year,
// with cumulative appreciation and principal components.
type YearlyProjection struct {
	Year                   int   `json:"year"`
	PropertyValue          Money `json:"propertyValue"`
	LoanBalance            Money `json:"loanBalance"`
	Equity                 Money `json:"equity"`
	EquityFromAppreciation Money `json:"equityFromAppreciation"`
	EquityFromPrincipal    Money `json:"equityFromPrincipal"`
}

// startingValue resolves the value the projection compounds from.
func (in EquityProjectionInput) startingValue() Money {
	if !in.CurrentValue.IsZero() {
		return in.CurrentValue
	}
	return in.PurchasePrice
}

// balanceAt resolves the loan balance after the given number of payments,
// applying the no-loan fallbacks.
func (in EquityProjectionInput) balanceAt(payments int) Money {
	if !in.Loan.IsZero() {
		// RemainingBalance clamps retired loans to zero; a negative payments
		// count cannot happen here.
		b, err := in.Loan.RemainingBalance(payments)
		if err != nil {
			return Money{}
		}
		return b
	}
	if !in.DownPayment.IsZero() {
		balance := in.PurchasePrice.Sub(in.DownPayment)
		if balance.IsNegative() {
			return Money{}
		}
		return balance
	}
	return Money{} // fully owned
}

// appreciate compounds a value by the annual appreciation rate over years.
func appreciate(value Money, rate Percent, years int) Money {
	if years <= 0 || rate.IsInfinite() {
		return value
	}
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(rate.Fraction()))
	f, err := factor.PowInt32(int32(years))
	if err != nil {
		return value
	}
	return Money{value: value.value.Mul(f)}
}

// ProjectEquity computes the terminal equity position after Years of
// compound appreciation and loan paydown.
func ProjectEquity(in EquityProjectionInput) EquityProjection {
	start := in.startingValue()
	futureValue := appreciate(start, in.AppreciationRate, in.Years)

	initialBalance := in.balanceAt(in.PaymentsMade)
	futureBalance := in.balanceAt(in.PaymentsMade + 12*in.Years)
	if in.Loan.IsZero() {
		// Without a loan there is no paydown; the implied balance stands.
		futureBalance = initialBalance
	}

	fromAppreciation := futureValue.Sub(start)
	fromPrincipal := initialBalance.Sub(futureBalance)

	return EquityProjection{
		Years:                  in.Years,
		FutureValue:            futureValue,
		FutureLoanBalance:      futureBalance,
		InitialEquity:          start.Sub(initialBalance),
		TotalEquity:            futureValue.Sub(futureBalance),
		TotalEquityGain:        fromAppreciation.Add(fromPrincipal),
		EquityFromAppreciation: fromAppreciation,
		EquityFromPrincipal:    fromPrincipal,
	}
}

// YearlyEquityProjections computes one projection per year 1..Years. Values
// are compounded iteratively year over year, each year's property value
// building on the previous year's, so the sequence matches what an investor
// sees annually rather than a closed-form jump to the horizon.
func YearlyEquityProjections(in EquityProjectionInput) []YearlyProjection {
	if in.Years <= 0 {
		return nil
	}
	start := in.startingValue()
	initialBalance := in.balanceAt(in.PaymentsMade)

	projections := make([]YearlyProjection, 0, in.Years)
	value := start
	for year := 1; year <= in.Years; year++ {
		value = appreciate(value, in.AppreciationRate, 1)

		balance := initialBalance
		if !in.Loan.IsZero() {
			balance = in.balanceAt(in.PaymentsMade + 12*year)
		}

		projections = append(projections, YearlyProjection{
			Year:                   year,
			PropertyValue:          value,
			LoanBalance:            balance,
			Equity:                 value.Sub(balance),
			EquityFromAppreciation: value.Sub(start),
			EquityFromPrincipal:    initialBalance.Sub(balance),
		})
	}
	return projections
}
