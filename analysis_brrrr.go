package propfolio

// BRRRR defaults, overridable through the input record.
const (
	defaultRefinanceLTV Percent = 75
	defaultMaxCashLeft  float64 = 10000
)

// BRRRRAnalysis is the buy-rehab-rent-refinance-repeat strategy. The offer
// ceiling works backwards from the after-repair value, and the refinance
// cash-out reduces the cash left in the deal.
type BRRRRAnalysis struct {
	baseAnalysis

	arv          Money
	refinanceLTV Percent
	holdingCosts Money
	maxCashLeft  Money
	refiLoan     LoanDetails
	refiErr      error
}

func newBRRRRAnalysis(rec Record, opts []Option) *BRRRRAnalysis {
	t := &BRRRRAnalysis{
		baseAnalysis: newBase(rec, opts),
		arv:          rec.MoneyOr("after_repair_value", Money{}),
		refinanceLTV: rec.PercentOr("refinance_ltv", defaultRefinanceLTV),
		holdingCosts: rec.MoneyOr("holding_costs", Money{}),
		maxCashLeft:  rec.MoneyOr("max_cash_left", M(defaultMaxCashLeft)),
	}
	t.refiLoan, t.refiErr = loanFromRecord(rec, "refinance_loan")
	return t
}

func (t *BRRRRAnalysis) Type() AnalysisType { return BRRRR }

func (t *BRRRRAnalysis) Validate() *ValidationResult {
	v := NewValidationResult()
	t.validateCommon(v)
	t.validateRent(v)
	if v.Required(t.rec, "after_repair_value") {
		v.PositiveNumber(t.rec, "after_repair_value")
	}
	v.Required(t.rec, "renovation_costs")
	v.Percentage(t.rec, "refinance_ltv", 1, 100)
	if t.refiErr != nil {
		v.Add("refinance_loan_amount", t.refiErr.Error())
	}
	return v
}

// cashOut is the capital returned at refinance: the new loan minus the
// payoff of the acquisition loan.
func (t *BRRRRAnalysis) cashOut() Money {
	if t.refiLoan.IsZero() {
		return Money{}
	}
	var payoff Money
	if len(t.in.Loans) > 0 {
		payoff = t.in.Loans[0].Amount()
	}
	return t.refiLoan.Amount().Sub(payoff)
}

// TotalInvestment nets the refinance cash-out (when positive) out of the
// cash sunk into purchase, renovation and holding. An under-refinance does
// not inflate the investment.
func (t *BRRRRAnalysis) TotalInvestment() Money {
	invested := t.baseAnalysis.TotalInvestment().Add(t.holdingCosts)
	if out := t.cashOut(); out.IsPositive() {
		invested = invested.Sub(out)
	}
	return invested
}

// MAO works backwards from the refinance: the bank will lend ARV times the
// refinance LTV, so the offer plus renovation, closing and holding costs may
// exceed that by at most the cash the investor accepts leaving in the deal.
func (t *BRRRRAnalysis) MAO() Money {
	return t.arv.MulPercent(t.refinanceLTV).
		Sub(t.in.RenovationCosts).
		Sub(t.in.ClosingCosts).
		Sub(t.holdingCosts).
		Add(t.maxCashLeft)
}

func (t *BRRRRAnalysis) Analyze() *AnalysisResult { return t.analyze(t) }
