package propfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multiFamilyRecord() Record {
	return Record{
		"analysis_type":              "multi_family",
		"purchase_price":             500000.0,
		"total_units":                10.0,
		"occupied_units":             9.0,
		"average_monthly_rent":       800.0,
		"ancillary_monthly_income":   300.0,
		"management_rate":            8.0,
		"annual_taxes":               6000.0,
		"annual_insurance":           2400.0,
		"common_area_maintenance":    250.0,
		"staff_payroll":              400.0,
		"down_payment":               100000.0,
		"closing_costs":              8000.0,
		"initial_loan_amount":        400000.0,
		"initial_loan_interest_rate": 5.5,
		"initial_loan_term":          360.0,
	}
}

func TestMultiFamilyValidate(t *testing.T) {
	a, err := NewAnalysis(multiFamilyRecord())
	require.NoError(t, err)
	v := a.Validate()
	assert.True(t, v.IsValid(), "unexpected errors: %s", v.Error())

	rec := multiFamilyRecord()
	rec["occupied_units"] = 12.0
	a, err = NewAnalysis(rec)
	require.NoError(t, err)
	assert.Contains(t, a.Validate().ErrorMessages(), "occupied_units")

	rec = multiFamilyRecord()
	delete(rec, "total_units")
	delete(rec, "average_monthly_rent")
	a, err = NewAnalysis(rec)
	require.NoError(t, err)
	msgs := a.Validate().ErrorMessages()
	assert.Contains(t, msgs, "total_units")
	assert.Contains(t, msgs, "average_monthly_rent")
}

func TestMultiFamilyFallsBackToMonthlyRent(t *testing.T) {
	rec := multiFamilyRecord()
	delete(rec, "average_monthly_rent")
	rec["monthly_rent"] = 800.0
	a, err := NewAnalysis(rec)
	require.NoError(t, err)

	assert.True(t, a.Validate().IsValid())
	assert.Equal(t, "$7,500.00", a.MonthlyIncome().String())
}

func TestMultiFamilyIncome(t *testing.T) {
	a, err := NewAnalysis(multiFamilyRecord())
	require.NoError(t, err)

	// 9 occupied units at $800 plus $300 laundry and parking
	assert.Equal(t, "$7,500.00", a.MonthlyIncome().String())
}

func TestMultiFamilyPricePerUnit(t *testing.T) {
	a, err := NewAnalysis(multiFamilyRecord())
	require.NoError(t, err)
	mf, ok := a.(*MultiFamilyAnalysis)
	require.True(t, ok)

	assert.Equal(t, "$50,000.00", mf.PricePerUnit().String())
}

func TestMultiFamilyAnalyze(t *testing.T) {
	a, err := NewAnalysis(multiFamilyRecord())
	require.NoError(t, err)
	result := a.Analyze()

	assert.Equal(t, MultiFamily, result.Type)
	assert.Equal(t, "$50,000.00", result.PricePerUnit.String())

	// management is 8% of the $7,200 rent roll, then taxes, insurance and
	// the building lines
	byName := map[string]string{}
	for _, l := range result.CashFlow.ExpenseLines {
		byName[l.Name] = l.Monthly.String()
	}
	assert.Equal(t, "$576.00", byName["management"])
	assert.Equal(t, "$250.00", byName["common area maintenance"])
	assert.Equal(t, "$400.00", byName["staff payroll"])
	assert.NotContains(t, byName, "elevator maintenance")

	assert.Equal(t, "$1,926.00", result.MonthlyExpenses.String())
	assert.Equal(t, "$5,574.00", result.MonthlyNOI.String())
	assert.Equal(t, "$3,302.84", result.MonthlyCashFlow.String())

	// price over the $86,400 annual rent roll, ancillary income excluded
	assert.InDelta(t, 5.787, result.GRM, 0.001)
}
