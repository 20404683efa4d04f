package propfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func padSplitRecord() Record {
	return Record{
		"analysis_type":              "padsplit",
		"purchase_price":             180000.0,
		"monthly_rent":               3600.0,
		"platform_fee_rate":          12.0,
		"furnishing_costs":           15000.0,
		"annual_taxes":               2400.0,
		"annual_insurance":           1200.0,
		"down_payment":               36000.0,
		"closing_costs":              4000.0,
		"initial_loan_amount":        144000.0,
		"initial_loan_interest_rate": 6.0,
		"initial_loan_term":          360.0,
	}
}

func TestPadSplitValidate(t *testing.T) {
	a, err := NewAnalysis(padSplitRecord())
	require.NoError(t, err)
	v := a.Validate()
	assert.True(t, v.IsValid(), "unexpected errors: %s", v.Error())

	rec := padSplitRecord()
	delete(rec, "platform_fee_rate")
	rec["furnishing_costs"] = -1.0
	a, err = NewAnalysis(rec)
	require.NoError(t, err)
	msgs := a.Validate().ErrorMessages()
	assert.Contains(t, msgs, "platform_fee_rate")
	assert.Contains(t, msgs, "furnishing_costs")
}

func TestPadSplitPlatformFee(t *testing.T) {
	a, err := NewAnalysis(padSplitRecord())
	require.NoError(t, err)
	result := a.Analyze()

	var fee string
	for _, l := range result.CashFlow.ExpenseLines {
		if l.Name == "platform fee" {
			fee = l.Monthly.String()
		}
	}
	// 12% of the $3,600 collected from the rooms
	assert.Equal(t, "$432.00", fee)
	assert.Equal(t, "$732.00", result.MonthlyExpenses.String())
	assert.Equal(t, "$2,868.00", result.MonthlyNOI.String())
	assert.Equal(t, "$2,004.65", result.MonthlyCashFlow.String())
}

func TestPadSplitTotalInvestment(t *testing.T) {
	a, err := NewAnalysis(padSplitRecord())
	require.NoError(t, err)

	// down payment, closing costs and furnishing every room
	assert.Equal(t, "$55,000.00", a.TotalInvestment().String())
}

func TestPadSplitZeroFeeRateDropsLine(t *testing.T) {
	rec := padSplitRecord()
	rec["platform_fee_rate"] = 0.0
	a, err := NewAnalysis(rec)
	require.NoError(t, err)
	result := a.Analyze()

	for _, l := range result.CashFlow.ExpenseLines {
		assert.NotEqual(t, "platform fee", l.Name)
	}
	assert.Equal(t, "$300.00", result.MonthlyExpenses.String())
}
