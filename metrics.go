package propfolio

import (
	"math"
)

// Investment metric functions. Each is a pure function of its inputs and
// total over its domain: degenerate input (zero denominators, empty
// collections) yields the documented default instead of an error, because a
// partially filled record must still produce every metric it can.

// ROI returns the return on investment as a Percent. With years greater than
// one the simple return is annualized geometrically:
// (1 + simple)^(1/years) - 1. A zero initial investment yields Infinite.
func ROI(initialInvestment, totalReturn Money, years int) Percent {
	simple := PercentOf(totalReturn, initialInvestment)
	if years <= 1 || simple.IsInfinite() {
		return simple
	}
	annualized := math.Pow(1+simple.Fraction(), 1/float64(years)) - 1
	return FromFraction(annualized)
}

// CapRate returns annual net operating income over property value.
// A zero property value yields 0: there is no meaningful yield on nothing.
func CapRate(annualNOI, propertyValue Money) Percent {
	if propertyValue.IsZero() {
		return 0
	}
	return PercentOf(annualNOI, propertyValue)
}

// CashOnCashReturn returns annual pre-tax cash flow over total cash
// invested. A zero investment yields Infinite.
func CashOnCashReturn(annualCashFlow, totalInvestment Money) Percent {
	return PercentOf(annualCashFlow, totalInvestment)
}

// ExpenseRatio returns annual operating expenses over annual gross income.
// Zero income yields 0.
func ExpenseRatio(annualExpenses, annualIncome Money) Percent {
	if annualIncome.IsZero() {
		return 0
	}
	return PercentOf(annualExpenses, annualIncome)
}

// DebtServiceCoverageRatio returns annual NOI over annual debt service, as a
// plain float the way lenders quote it. Zero debt service yields +Inf: a
// property with no debt covers it infinitely well.
func DebtServiceCoverageRatio(annualNOI, annualDebtService Money) float64 {
	if annualDebtService.IsZero() {
		return math.Inf(1)
	}
	return annualNOI.Div(annualDebtService)
}

// GrossRentMultiplier returns purchase price over annual gross rent.
// Zero rent yields 0.
func GrossRentMultiplier(price, annualRent Money) float64 {
	if annualRent.IsZero() {
		return 0
	}
	return price.Div(annualRent)
}

// PricePerUnit returns price divided by unit count, zero when there are no
// units.
func PricePerUnit(price Money, units int) Money {
	if units <= 0 {
		return Money{}
	}
	return price.DivF(float64(units))
}

// BreakevenOccupancy returns the share of potential income needed to cover
// operating expenses and debt service, capped at 100%. Zero potential income
// yields the 100% cap: such a property can never break even.
func BreakevenOccupancy(monthlyExpenses, monthlyDebtService, monthlyPotentialIncome Money) Percent {
	if !monthlyPotentialIncome.IsPositive() {
		return 100
	}
	p := PercentOf(monthlyExpenses.Add(monthlyDebtService), monthlyPotentialIncome)
	if p > 100 {
		return 100
	}
	return p
}
