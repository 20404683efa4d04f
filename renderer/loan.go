package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/propfolio/propfolio"
)

// Schedule renders an amortization schedule as a markdown table.
func Schedule(loan propfolio.LoanDetails, entries []propfolio.AmortizationEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Amortization Schedule\n\n")
	fmt.Fprintf(&b, "*%s*\n\n", loan)

	if len(entries) == 0 {
		fmt.Fprintln(&b, "No periods to display.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Period | Payment | Principal | Interest | Remaining Balance |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|")
	var principal, interest propfolio.Money
	for _, e := range entries {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			e.Period, e.Payment, e.Principal, e.Interest, e.RemainingBalance)
		principal = principal.Add(e.Principal)
		interest = interest.Add(e.Interest)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | **%s** | |\n",
		principal.Add(interest), principal, interest)
	fmt.Fprintln(&b)
	return b.String()
}

// Balloon renders a balloon payment analysis.
func Balloon(a *propfolio.BalloonAnalysis) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# Balloon Payment")
	fmt.Fprintln(&b)
	if a.LoanName != "" {
		fmt.Fprintf(&b, "*%s*\n\n", a.LoanName)
	}
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Balloon Month | %d |\n", a.BalloonMonth)
	fmt.Fprintf(&b, "| Monthly Payment | %s |\n", a.MonthlyPayment.Total)
	fmt.Fprintf(&b, "| Total Paid to Balloon | %s |\n", a.TotalPaid)
	fmt.Fprintf(&b, "| Principal Paid | %s |\n", a.PrincipalPaid)
	fmt.Fprintf(&b, "| Interest Paid | %s |\n", a.InterestPaid)
	fmt.Fprintf(&b, "| **Balloon Balance Due** | **%s** |\n", a.BalloonBalance)
	fmt.Fprintln(&b)
	return b.String()
}

// Refinance renders a refinance impact analysis.
func Refinance(a *propfolio.RefinanceImpactAnalysis) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# Refinance Impact")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| | Current | New |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	fmt.Fprintf(&b, "| Monthly Payment | %s | %s |\n", a.OldPayment.Total, a.NewPayment.Total)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Monthly Savings | %s |\n", a.MonthlySavings.SignedString())
	fmt.Fprintf(&b, "| Payoff Balance | %s |\n", a.PayoffBalance)
	fmt.Fprintf(&b, "| Cash Out | %s |\n", a.CashOut.SignedString())
	if math.IsInf(a.BreakEvenMonths, 1) {
		fmt.Fprintln(&b, "| Break-Even | never |")
	} else {
		fmt.Fprintf(&b, "| Break-Even | %.1f months |\n", a.BreakEvenMonths)
	}
	fmt.Fprintln(&b)
	return b.String()
}

// LeaseOptionTerms renders the option-side economics of a lease option.
func LeaseOptionTerms(c *propfolio.LeaseOptionCalculation) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# Lease Option Terms")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Strike Price | %s |\n", c.StrikePrice)
	fmt.Fprintf(&b, "| Option Fee | %s |\n", c.OptionFee)
	fmt.Fprintf(&b, "| Option Term | %d months |\n", c.OptionTermMonths)
	fmt.Fprintf(&b, "| Rent Credit per Month | %s |\n", c.CreditPerMonth)
	fmt.Fprintf(&b, "| Total Rent Credits | %s |\n", c.TotalRentCredits)
	fmt.Fprintf(&b, "| **Effective Purchase Price** | **%s** |\n", c.EffectivePurchasePrice)
	fmt.Fprintln(&b)
	return b.String()
}
