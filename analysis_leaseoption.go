package propfolio

// LeaseOptionAnalysis is the rent-with-option-to-buy strategy. The tenant
// pays rent plus a credit premium, and the collected option fee offsets the
// cash invested. There is no offer ceiling: the strike price is negotiated,
// not derived.
type LeaseOptionAnalysis struct {
	baseAnalysis

	opt LeaseOptionInput
}

func newLeaseOptionAnalysis(rec Record, opts []Option) *LeaseOptionAnalysis {
	t := &LeaseOptionAnalysis{baseAnalysis: newBase(rec, opts)}
	t.opt = LeaseOptionInput{
		StrikePrice:       rec.MoneyOr("strike_price", t.in.PurchasePrice),
		OptionFee:         rec.MoneyOr("option_fee", Money{}),
		OptionTermMonths:  rec.IntOr("option_term_months", 0),
		MonthlyRent:       t.in.MonthlyRent,
		MonthlyRentCredit: rec.MoneyOr("monthly_rent_credit", Money{}),
		RentCreditRate:    rec.PercentOr("rent_credit_rate", 0),
	}
	return t
}

func (t *LeaseOptionAnalysis) Type() AnalysisType { return LeaseOption }

func (t *LeaseOptionAnalysis) Validate() *ValidationResult {
	v := NewValidationResult()
	t.validateCommon(v)
	t.validateRent(v)
	if v.Required(t.rec, "option_fee") {
		v.PositiveNumber(t.rec, "option_fee")
	}
	if v.Required(t.rec, "option_term_months") {
		v.Range(t.rec, "option_term_months", 1, 120)
	}
	v.Percentage(t.rec, "rent_credit_rate", 0, 100)
	return v
}

// Calculation resolves the lease-option economics over the option term.
func (t *LeaseOptionAnalysis) Calculation() LeaseOptionCalculation {
	return CalculateLeaseOption(t.opt)
}

// EffectivePurchasePrice is the strike price net of accumulated rent credits
// and the option fee.
func (t *LeaseOptionAnalysis) EffectivePurchasePrice() Money {
	return t.Calculation().EffectivePurchasePrice
}

// TotalRentCredits is the credit accumulated over the full option term.
func (t *LeaseOptionAnalysis) TotalRentCredits() Money {
	return t.Calculation().TotalRentCredits
}

// MonthlyIncome includes the rent-credit premium the tenant pays on top of
// market rent.
func (t *LeaseOptionAnalysis) MonthlyIncome() Money {
	return t.baseAnalysis.MonthlyIncome().Add(t.Calculation().CreditPerMonth)
}

// cashFlowInput carries the credit premium into the breakdown so its income
// matches MonthlyIncome.
func (t *LeaseOptionAnalysis) cashFlowInput() CashFlowInput {
	in := t.baseAnalysis.cashFlowInput()
	in.OtherMonthlyIncome = in.OtherMonthlyIncome.Add(t.Calculation().CreditPerMonth)
	return in
}

// TotalInvestment is reduced by the option fee collected up front.
func (t *LeaseOptionAnalysis) TotalInvestment() Money {
	return t.baseAnalysis.TotalInvestment().Sub(t.opt.OptionFee)
}

func (t *LeaseOptionAnalysis) Analyze() *AnalysisResult { return t.analyze(t) }
