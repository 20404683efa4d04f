package propfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceSweep(t *testing.T) {
	report, err := PriceSweep(ltrRecord(), M(180000), M(220000), M(20000))
	require.NoError(t, err)

	assert.Equal(t, LongTermRental, report.Type)
	require.Len(t, report.Points, 3)

	assert.Equal(t, "$180,000.00", report.Points[0].PurchasePrice.String())
	assert.Equal(t, "$125.37", report.Points[0].MonthlyCashFlow.String())
	assert.Equal(t, "$44.30", report.Points[1].MonthlyCashFlow.String())
	assert.Equal(t, "-$36.77", report.Points[2].MonthlyCashFlow.String())

	// the middle price is the last one that still cash-flows
	assert.Equal(t, "$200,000.00", report.BreakevenPrice.String())

	s := report.CashFlowStats
	assert.InDelta(t, 44.30, s.Mean, 0.01)
	assert.InDelta(t, 44.30, s.Median, 0.01)
	assert.InDelta(t, -36.77, s.Min, 0.01)
	assert.InDelta(t, 125.37, s.Max, 0.01)
	assert.True(t, s.Min <= s.Mean && s.Mean <= s.Max)

	assert.True(t, report.CashOnCashStats.Max > report.CashOnCashStats.Min)
}

func TestPriceSweepScalesFinancing(t *testing.T) {
	report, err := PriceSweep(ltrRecord(), M(180000), M(180000), M(5000))
	require.NoError(t, err)
	require.Len(t, report.Points, 1)

	// at 90% of the record's price the loan is 90% of $160,000, so the cap
	// rate improves while the loan-to-value ratio holds
	assert.True(t, report.Points[0].CapRate > Percent(5.13))
}

func TestPriceSweepRejectsBadRange(t *testing.T) {
	_, err := PriceSweep(ltrRecord(), M(180000), M(220000), Money{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step")

	_, err = PriceSweep(ltrRecord(), M(220000), M(180000), M(5000))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "range")
}
