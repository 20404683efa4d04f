package propfolio

import (
	"fmt"
	"math"
)

// Composite calculators built from the loan and metric layers. Each returns
// a fixed-shape record meant for serialization or rendering by an outer
// presentation layer.

// ExpenseLine is one itemized monthly operating expense.
type ExpenseLine struct {
	Name    string `json:"name"`
	Monthly Money  `json:"monthly"`
}

// NamedPayment ties a loan's monthly payment to the loan it belongs to.
type NamedPayment struct {
	Name    string      `json:"name"`
	Payment LoanPayment `json:"payment"`
}

// CashFlowInput describes a property's monthly economics. Percentage rates
// apply to the gross monthly rent.
type CashFlowInput struct {
	MonthlyRent        Money
	OtherMonthlyIncome Money

	VacancyRate    Percent
	ManagementRate Percent
	CapExRate      Percent
	RepairsRate    Percent

	AnnualTaxes          Money
	AnnualInsurance      Money
	MonthlyHOA           Money
	MonthlyUtilities     Money
	OtherMonthlyExpenses []ExpenseLine

	Loans []LoanDetails
}

// CashFlowBreakdown itemizes where every monthly dollar goes.
type CashFlowBreakdown struct {
	GrossMonthlyIncome   Money          `json:"grossMonthlyIncome"`
	ExpenseLines         []ExpenseLine  `json:"expenseLines"`
	TotalMonthlyExpenses Money          `json:"totalMonthlyExpenses"`
	MonthlyNOI           Money          `json:"monthlyNoi"`
	LoanPayments         []NamedPayment `json:"loanPayments"`
	TotalDebtService     Money          `json:"totalDebtService"`
	MonthlyCashFlow      Money          `json:"monthlyCashFlow"`
	AnnualCashFlow       Money          `json:"annualCashFlow"`
}

// CashFlow computes the detailed monthly cash-flow breakdown.
func CashFlow(in CashFlowInput) CashFlowBreakdown {
	income := in.MonthlyRent.Add(in.OtherMonthlyIncome)

	var lines []ExpenseLine
	addRate := func(name string, rate Percent) {
		if rate != 0 {
			lines = append(lines, ExpenseLine{Name: name, Monthly: in.MonthlyRent.MulPercent(rate)})
		}
	}
	addFlat := func(name string, amount Money) {
		if !amount.IsZero() {
			lines = append(lines, ExpenseLine{Name: name, Monthly: amount})
		}
	}
	addRate("vacancy", in.VacancyRate)
	addRate("management", in.ManagementRate)
	addRate("capex", in.CapExRate)
	addRate("repairs", in.RepairsRate)
	addFlat("taxes", in.AnnualTaxes.DivF(12))
	addFlat("insurance", in.AnnualInsurance.DivF(12))
	addFlat("hoa", in.MonthlyHOA)
	addFlat("utilities", in.MonthlyUtilities)
	lines = append(lines, in.OtherMonthlyExpenses...)

	var expenses Money
	for _, l := range lines {
		expenses = expenses.Add(l.Monthly)
	}

	payments := make([]NamedPayment, 0, len(in.Loans))
	var debtService Money
	for i, loan := range in.Loans {
		p := loan.Payment()
		name := loan.Name()
		if name == "" {
			name = fmt.Sprintf("loan %d", i+1)
		}
		payments = append(payments, NamedPayment{Name: name, Payment: p})
		debtService = debtService.Add(p.Total)
	}

	noi := income.Sub(expenses)
	cashFlow := noi.Sub(debtService)
	return CashFlowBreakdown{
		GrossMonthlyIncome:   income,
		ExpenseLines:         lines,
		TotalMonthlyExpenses: expenses,
		MonthlyNOI:           noi,
		LoanPayments:         payments,
		TotalDebtService:     debtService,
		MonthlyCashFlow:      cashFlow,
		AnnualCashFlow:       cashFlow.MulF(12),
	}
}

// BalloonAnalysis summarizes paying a loan until a balloon month and settling
// the remaining balance as a lump sum.
type BalloonAnalysis struct {
	LoanName       string      `json:"loanName,omitempty"`
	BalloonMonth   int         `json:"balloonMonth"`
	MonthlyPayment LoanPayment `json:"monthlyPayment"`
	BalloonBalance Money       `json:"balloonBalance"`
	PrincipalPaid  Money       `json:"principalPaid"`
	InterestPaid   Money       `json:"interestPaid"`
	TotalPaid      Money       `json:"totalPaid"`
}

// AnalyzeBalloon computes the cost of carrying a loan to a balloon month.
// The balloon month must fall within the loan term.
func AnalyzeBalloon(loan LoanDetails, balloonMonth int) (BalloonAnalysis, error) {
	if balloonMonth <= 0 || balloonMonth > loan.TermMonths() {
		return BalloonAnalysis{}, fmt.Errorf("balloon month must be within the loan term [1, %d], got %d", loan.TermMonths(), balloonMonth)
	}
	balance, err := loan.BalloonBalance(balloonMonth)
	if err != nil {
		return BalloonAnalysis{}, err
	}
	payment := loan.Payment()
	paid := payment.Total.MulF(float64(balloonMonth))
	principalPaid := loan.Amount().Sub(balance)
	return BalloonAnalysis{
		LoanName:       loan.Name(),
		BalloonMonth:   balloonMonth,
		MonthlyPayment: payment,
		BalloonBalance: balance,
		PrincipalPaid:  principalPaid,
		InterestPaid:   paid.Sub(principalPaid),
		TotalPaid:      paid,
	}, nil
}

// LeaseOptionInput describes a lease with an option to purchase at the
// strike price. The option fee is paid up front and credited toward the
// purchase. MonthlyRentCredit takes precedence; when zero, RentCreditRate
// applied to the monthly rent supplies the credit.
type LeaseOptionInput struct {
	StrikePrice       Money
	OptionFee         Money
	OptionTermMonths  int
	MonthlyRent       Money
	MonthlyRentCredit Money
	RentCreditRate    Percent
}

// LeaseOptionCalculation is the economics of a lease option over its term.
type LeaseOptionCalculation struct {
	StrikePrice            Money `json:"strikePrice"`
	OptionFee              Money `json:"optionFee"`
	OptionTermMonths       int   `json:"optionTermMonths"`
	CreditPerMonth         Money `json:"creditPerMonth"`
	TotalRentCredits       Money `json:"totalRentCredits"`
	EffectivePurchasePrice Money `json:"effectivePurchasePrice"`
}

// CalculateLeaseOption accumulates rent credits over the option term and
// nets them, along with the option fee, out of the strike price.
func CalculateLeaseOption(in LeaseOptionInput) LeaseOptionCalculation {
	credit := in.MonthlyRentCredit
	if credit.IsZero() && in.RentCreditRate != 0 {
		credit = in.MonthlyRent.MulPercent(in.RentCreditRate)
	}
	total := credit.MulF(float64(in.OptionTermMonths))
	return LeaseOptionCalculation{
		StrikePrice:            in.StrikePrice,
		OptionFee:              in.OptionFee,
		OptionTermMonths:       in.OptionTermMonths,
		CreditPerMonth:         credit,
		TotalRentCredits:       total,
		EffectivePurchasePrice: in.StrikePrice.Sub(total).Sub(in.OptionFee),
	}
}

// RefinanceInput describes replacing a current loan with a new one.
type RefinanceInput struct {
	CurrentLoan  LoanDetails
	PaymentsMade int
	NewLoan      LoanDetails
	ClosingCosts Money
	MonthlyNOI   Money
}

// RefinanceImpactAnalysis compares the economics before and after a
// refinance. MonthlySavings is negative when the new payment is higher, and
// BreakEvenMonths counts the months of savings needed to recoup the closing
// costs.
type RefinanceImpactAnalysis struct {
	OldPayment         LoanPayment `json:"oldPayment"`
	NewPayment         LoanPayment `json:"newPayment"`
	MonthlySavings     Money       `json:"monthlySavings"`
	PayoffBalance      Money       `json:"payoffBalance"`
	CashOut            Money       `json:"cashOut"`
	NewMonthlyCashFlow Money       `json:"newMonthlyCashFlow"`
	BreakEvenMonths    float64     `json:"breakEvenMonths"`
}

// AnalyzeRefinanceImpact computes payment delta, cash pulled out, and how
// long the closing costs take to recoup out of monthly savings. When the
// refinance does not lower the payment the break-even is +Inf.
func AnalyzeRefinanceImpact(in RefinanceInput) (RefinanceImpactAnalysis, error) {
	payoff, err := in.CurrentLoan.RemainingBalance(in.PaymentsMade)
	if err != nil {
		return RefinanceImpactAnalysis{}, fmt.Errorf("refinance payoff balance: %w", err)
	}
	oldPayment := in.CurrentLoan.Payment()
	newPayment := in.NewLoan.Payment()
	savings := oldPayment.Total.Sub(newPayment.Total)

	breakEven := math.Inf(1)
	if savings.IsPositive() {
		breakEven = in.ClosingCosts.Div(savings)
	}

	return RefinanceImpactAnalysis{
		OldPayment:      oldPayment,
		NewPayment:      newPayment,
		MonthlySavings:  savings,
		PayoffBalance:   payoff,
		CashOut:         in.NewLoan.Amount().Sub(payoff).Sub(in.ClosingCosts),
		NewMonthlyCashFlow: in.MonthlyNOI.Sub(newPayment.Total),
		BreakEvenMonths: breakEven,
	}, nil
}
