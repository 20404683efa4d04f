package propfolio

import (
	"fmt"
	"maps"

	"github.com/montanaflynn/stats"
)

// SweepPoint is one candidate purchase price and the headline metrics the
// analysis produced for it.
type SweepPoint struct {
	PurchasePrice   Money   `json:"purchasePrice"`
	MonthlyCashFlow Money   `json:"monthlyCashFlow"`
	CashOnCash      Percent `json:"cashOnCash"`
	CapRate         Percent `json:"capRate"`
	MAO             Money   `json:"mao"`
}

// SweepStats summarizes one metric across the swept prices.
type SweepStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// SweepReport is the outcome of re-running an analysis across a grid of
// candidate purchase prices.
type SweepReport struct {
	Type            AnalysisType `json:"analysisType"`
	Points          []SweepPoint `json:"points"`
	CashFlowStats   SweepStats   `json:"cashFlowStats"`
	CashOnCashStats SweepStats   `json:"cashOnCashStats"`
	// BreakevenPrice is the highest swept price with non-negative monthly
	// cash flow; zero when no price breaks even.
	BreakevenPrice Money `json:"breakevenPrice"`
}

func summarize(values []float64) (SweepStats, error) {
	if len(values) == 0 {
		return SweepStats{}, fmt.Errorf("no values to summarize")
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return SweepStats{}, err
	}
	median, err := stats.Median(values)
	if err != nil {
		return SweepStats{}, err
	}
	sd, err := stats.StandardDeviation(values)
	if err != nil {
		return SweepStats{}, err
	}
	min, err := stats.Min(values)
	if err != nil {
		return SweepStats{}, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return SweepStats{}, err
	}
	return SweepStats{Mean: mean, Median: median, StdDev: sd, Min: min, Max: max}, nil
}

// PriceSweep re-runs the record's analysis for every purchase price from
// `from` to `to` in increments of `step`. Financing scales with the price:
// the initial loan and down payment keep the proportion they have to the
// record's own purchase price, so each candidate is financed at the same
// LTV. It reports per-price metrics, summary statistics, and the highest
// price that still breaks even on monthly cash flow.
func PriceSweep(rec Record, from, to, step Money, opts ...Option) (*SweepReport, error) {
	if !step.IsPositive() {
		return nil, fmt.Errorf("sweep step must be positive, got %s", step)
	}
	if to.LessThan(from) {
		return nil, fmt.Errorf("sweep range is empty: from %s to %s", from, to)
	}

	report := &SweepReport{}
	cashFlows := make([]float64, 0)
	cocs := make([]float64, 0)

	basePrice := rec.MoneyOr("purchase_price", Money{})
	baseLoan := rec.MoneyOr("initial_loan_amount", Money{})
	baseDown := rec.MoneyOr("down_payment", Money{})

	for price := from; price.LessThanOrEqual(to); price = price.Add(step) {
		candidate := Record(maps.Clone(map[string]any(rec)))
		candidate["purchase_price"] = price.AsFloat()
		if basePrice.IsPositive() {
			ratio := price.Div(basePrice)
			if !baseLoan.IsZero() {
				candidate["initial_loan_amount"] = baseLoan.MulF(ratio).AsFloat()
			}
			if !baseDown.IsZero() {
				candidate["down_payment"] = baseDown.MulF(ratio).AsFloat()
			}
		}

		a, err := NewAnalysis(candidate, opts...)
		if err != nil {
			return nil, fmt.Errorf("sweep at %s: %w", price, err)
		}
		result := a.Analyze()
		report.Type = result.Type

		report.Points = append(report.Points, SweepPoint{
			PurchasePrice:   price,
			MonthlyCashFlow: result.MonthlyCashFlow,
			CashOnCash:      result.CashOnCash,
			CapRate:         result.CapRate,
			MAO:             result.MAO,
		})
		cashFlows = append(cashFlows, result.MonthlyCashFlow.AsFloat())
		if !result.CashOnCash.IsInfinite() {
			cocs = append(cocs, float64(result.CashOnCash))
		}
		if !result.MonthlyCashFlow.IsNegative() {
			report.BreakevenPrice = price
		}
	}

	var err error
	if report.CashFlowStats, err = summarize(cashFlows); err != nil {
		return nil, fmt.Errorf("cash flow statistics: %w", err)
	}
	if len(cocs) > 0 {
		if report.CashOnCashStats, err = summarize(cocs); err != nil {
			return nil, fmt.Errorf("cash-on-cash statistics: %w", err)
		}
	}
	return report, nil
}
