package renderer

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/propfolio/propfolio"
)

// Analysis renders a full markdown report for one analysis result: the
// headline numbers, the monthly cash-flow breakdown, the return metrics,
// and the equity projection.
func Analysis(r *propfolio.AnalysisResult) string {
	var b strings.Builder

	name := r.Name
	if name == "" {
		name = "Property Analysis"
	}
	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "*%s · computed %s*\n\n", r.Type.DisplayName(), r.ComputedAt.Format("2006-01-02"))

	warnings := Header(func(w io.Writer) {
		fmt.Fprintln(w, "## ⚠ Validation")
		fmt.Fprintln(w)
	}).Footer(func(w io.Writer) {
		fmt.Fprintln(w)
	})
	if r.Validation != nil {
		for _, e := range r.Validation.Errors() {
			warnings.PrintHeader(&b)
			fmt.Fprintf(&b, "- **%s**: %s\n", e.Field, e.Message)
		}
	}
	warnings.PrintFooter(&b)

	fmt.Fprintln(&b, "## Monthly Cash Flow")
	fmt.Fprintln(&b)
	writeCashFlow(&b, &r.CashFlow)

	fmt.Fprintln(&b, "## Returns")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Investment | %s |\n", r.TotalInvestment)
	fmt.Fprintf(&b, "| Cash-on-Cash Return | %s |\n", r.CashOnCash)
	fmt.Fprintf(&b, "| Cap Rate | %s |\n", r.CapRate)
	fmt.Fprintf(&b, "| ROI (annualized) | %s |\n", r.ROI)
	fmt.Fprintf(&b, "| Expense Ratio | %s |\n", r.ExpenseRatio)
	fmt.Fprintf(&b, "| Breakeven Occupancy | %s |\n", r.BreakevenOccupancy)
	fmt.Fprintf(&b, "| DSCR | %s |\n", ratio(r.DSCR))
	fmt.Fprintf(&b, "| Gross Rent Multiplier | %s |\n", ratio(r.GRM))
	if !r.PricePerUnit.IsZero() {
		fmt.Fprintf(&b, "| Price per Unit | %s |\n", r.PricePerUnit)
	}
	if !r.MAO.IsZero() {
		fmt.Fprintf(&b, "| Maximum Allowable Offer | %s |\n", r.MAO)
	}
	fmt.Fprintln(&b)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(r.YearlyEquity) == 0 {
			return false
		}
		fmt.Fprintf(w, "## Equity Projection (%d years)\n\n", r.Equity.Years)
		fmt.Fprintln(w, "| Year | Property Value | Loan Balance | Equity | From Appreciation | From Principal |")
		fmt.Fprintln(w, "|---:|---:|---:|---:|---:|---:|")
		for _, y := range r.YearlyEquity {
			fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %s |\n",
				y.Year, y.PropertyValue, y.LoanBalance, y.Equity,
				y.EquityFromAppreciation.SignedString(), y.EquityFromPrincipal.SignedString())
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Total equity gain over the horizon: **%s**.\n\n", r.Equity.TotalEquityGain.SignedString())
		return true
	})

	return b.String()
}

// writeCashFlow prints the income, expense, and debt-service tables of a
// cash-flow breakdown.
func writeCashFlow(w io.Writer, cf *propfolio.CashFlowBreakdown) {
	fmt.Fprintln(w, "| Line | Monthly |")
	fmt.Fprintln(w, "|:---|---:|")
	fmt.Fprintf(w, "| Gross Income | %s |\n", cf.GrossMonthlyIncome)
	for _, line := range cf.ExpenseLines {
		fmt.Fprintf(w, "| %s | %s |\n", title(line.Name), line.Monthly.Neg().SignedString())
	}
	fmt.Fprintf(w, "| **Net Operating Income** | **%s** |\n", cf.MonthlyNOI)
	for _, p := range cf.LoanPayments {
		name := p.Name
		if name == "" {
			name = "Loan Payment"
		}
		fmt.Fprintf(w, "| %s | %s |\n", name, p.Payment.Total.Neg().SignedString())
	}
	fmt.Fprintf(w, "| **Monthly Cash Flow** | **%s** |\n", cf.MonthlyCashFlow.SignedString())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Annual cash flow: **%s**.\n\n", cf.AnnualCashFlow.SignedString())
}

// ratio formats a bare ratio metric, keeping +Inf readable.
func ratio(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2f", v)
}

// title upper-cases the first letter of an expense line name.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
