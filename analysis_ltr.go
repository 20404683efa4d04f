package propfolio

// Long-term rental MAO defaults, overridable through the input record.
const (
	defaultMaxLTV          Percent = 75
	defaultMinimumCapRate  Percent = 8
	defaultDesiredCashFlow float64 = 100 // monthly, in dollars
)

// LTRAnalysis is the buy-and-hold single-family rental strategy. It keeps
// every default behavior and overrides only the maximum allowable offer.
type LTRAnalysis struct {
	baseAnalysis

	maxLTV          Percent
	minimumCapRate  Percent
	desiredCashFlow Money
}

func newLTRAnalysis(rec Record, opts []Option) *LTRAnalysis {
	return &LTRAnalysis{
		baseAnalysis:    newBase(rec, opts),
		maxLTV:          rec.PercentOr("max_ltv", defaultMaxLTV),
		minimumCapRate:  rec.PercentOr("minimum_cap_rate", defaultMinimumCapRate),
		desiredCashFlow: rec.MoneyOr("desired_monthly_cash_flow", M(defaultDesiredCashFlow)),
	}
}

func (t *LTRAnalysis) Type() AnalysisType { return LongTermRental }

func (t *LTRAnalysis) Validate() *ValidationResult {
	v := NewValidationResult()
	t.validateCommon(v)
	t.validateRent(v)
	v.Percentage(t.rec, "max_ltv", 1, 100)
	v.Percentage(t.rec, "minimum_cap_rate", 0, 100)
	v.Range(t.rec, "desired_monthly_cash_flow", 0, 1e6)
	return v
}

// MAO is the highest price at which the deal still clears both return
// hurdles: the loan that monthly NOI (minus the desired cash flow) can
// service, and the loan implied by valuing NOI at the minimum cap rate.
// The smaller supportable loan, grossed up by the LTV, is the offer ceiling.
func (t *LTRAnalysis) MAO() Money {
	if t.maxLTV <= 0 {
		return Money{}
	}
	noi := t.MonthlyIncome().Sub(t.MonthlyExpenses())
	paymentCapacity := noi.Sub(t.desiredCashFlow)
	if !paymentCapacity.IsPositive() {
		return Money{}
	}

	rate := Percent(7)
	term := maxLoanTerm
	if len(t.in.Loans) > 0 {
		rate = t.in.Loans[0].Rate()
		term = t.in.Loans[0].TermMonths()
	}
	loanFromCashFlow := AnnuityPresentValue(paymentCapacity, rate, term)

	supportable := loanFromCashFlow
	if t.minimumCapRate > 0 {
		valueFromCapRate := noi.MulF(12).DivF(t.minimumCapRate.Fraction())
		loanFromCapRate := valueFromCapRate.MulPercent(t.maxLTV)
		supportable = supportable.Min(loanFromCapRate)
	}
	return supportable.DivF(t.maxLTV.Fraction())
}

func (t *LTRAnalysis) Analyze() *AnalysisResult { return t.analyze(t) }
