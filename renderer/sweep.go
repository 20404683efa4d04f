package renderer

import (
	"fmt"
	"strings"

	"github.com/propfolio/propfolio"
)

// Sweep renders a purchase-price sensitivity report.
func Sweep(r *propfolio.SweepReport) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# Price Sensitivity")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "*%s · %d prices*\n\n", r.Type.DisplayName(), len(r.Points))

	fmt.Fprintln(&b, "| Purchase Price | Monthly Cash Flow | Cash-on-Cash | Cap Rate | MAO |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|")
	for _, p := range r.Points {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			p.PurchasePrice, p.MonthlyCashFlow.SignedString(), p.CashOnCash, p.CapRate, p.MAO)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "| Statistic | Monthly Cash Flow | Cash-on-Cash |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	fmt.Fprintf(&b, "| Mean | $%.2f | %.3f%% |\n", r.CashFlowStats.Mean, r.CashOnCashStats.Mean)
	fmt.Fprintf(&b, "| Median | $%.2f | %.3f%% |\n", r.CashFlowStats.Median, r.CashOnCashStats.Median)
	fmt.Fprintf(&b, "| Std Dev | $%.2f | %.3f%% |\n", r.CashFlowStats.StdDev, r.CashOnCashStats.StdDev)
	fmt.Fprintf(&b, "| Min | $%.2f | %.3f%% |\n", r.CashFlowStats.Min, r.CashOnCashStats.Min)
	fmt.Fprintf(&b, "| Max | $%.2f | %.3f%% |\n", r.CashFlowStats.Max, r.CashOnCashStats.Max)
	fmt.Fprintln(&b)

	if r.BreakevenPrice.IsZero() {
		fmt.Fprintln(&b, "No swept price produced a non-negative monthly cash flow.")
	} else {
		fmt.Fprintf(&b, "Highest price that still breaks even: **%s**.\n", r.BreakevenPrice)
	}
	fmt.Fprintln(&b)
	return b.String()
}
