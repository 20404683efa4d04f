package propfolio

// PadSplitAnalysis is the room-by-room rental strategy run through the
// PadSplit platform: the platform takes a percentage of collected income,
// and furnishing the rooms is part of the up-front investment.
type PadSplitAnalysis struct {
	baseAnalysis

	platformFeeRate Percent
	furnishingCosts Money
}

func newPadSplitAnalysis(rec Record, opts []Option) *PadSplitAnalysis {
	return &PadSplitAnalysis{
		baseAnalysis:    newBase(rec, opts),
		platformFeeRate: rec.PercentOr("platform_fee_rate", 0),
		furnishingCosts: rec.MoneyOr("furnishing_costs", Money{}),
	}
}

func (t *PadSplitAnalysis) Type() AnalysisType { return PadSplit }

func (t *PadSplitAnalysis) Validate() *ValidationResult {
	v := NewValidationResult()
	t.validateCommon(v)
	t.validateRent(v)
	if v.Required(t.rec, "platform_fee_rate") {
		v.Percentage(t.rec, "platform_fee_rate", 0, 100)
	}
	if t.rec.Has("furnishing_costs") {
		v.PositiveNumber(t.rec, "furnishing_costs")
	}
	return v
}

// cashFlowInput adds the platform's cut of collected income as an expense
// line.
func (t *PadSplitAnalysis) cashFlowInput() CashFlowInput {
	in := t.baseAnalysis.cashFlowInput()
	if t.platformFeeRate != 0 {
		income := t.in.MonthlyRent.Add(t.in.OtherIncome)
		in.OtherMonthlyExpenses = append(in.OtherMonthlyExpenses, ExpenseLine{
			Name:    "platform fee",
			Monthly: income.MulPercent(t.platformFeeRate),
		})
	}
	return in
}

func (t *PadSplitAnalysis) MonthlyExpenses() Money {
	return CashFlow(t.cashFlowInput()).TotalMonthlyExpenses
}

// TotalInvestment includes furnishing every room before the first tenant.
func (t *PadSplitAnalysis) TotalInvestment() Money {
	return t.baseAnalysis.TotalInvestment().Add(t.furnishingCosts)
}

func (t *PadSplitAnalysis) Analyze() *AnalysisResult { return t.analyze(t) }
