package propfolio

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalysisType is a typed string identifying an investment strategy.
type AnalysisType string

// Analysis strategies supported by the factory.
const (
	LongTermRental AnalysisType = "ltr"
	BRRRR          AnalysisType = "brrrr"
	LeaseOption    AnalysisType = "lease_option"
	MultiFamily    AnalysisType = "multi_family"
	PadSplit       AnalysisType = "padsplit"
)

// analysisTypeAliases maps the discriminator spellings accepted on input
// records (display names included) to their canonical type.
var analysisTypeAliases = map[string]AnalysisType{
	"ltr":              LongTermRental,
	"long-term rental": LongTermRental,
	"long_term_rental": LongTermRental,
	"long term rental": LongTermRental,
	"brrrr":            BRRRR,
	"lease_option":     LeaseOption,
	"lease option":     LeaseOption,
	"lease-option":     LeaseOption,
	"multi_family":     MultiFamily,
	"multi-family":     MultiFamily,
	"multifamily":      MultiFamily,
	"multi-family ltr": MultiFamily,
	"padsplit":         PadSplit,
	"padsplit ltr":     PadSplit,
	"room_rental":      PadSplit,
	"room rental":      PadSplit,
}

// ParseAnalysisType resolves a discriminator string to its canonical type.
func ParseAnalysisType(s string) (AnalysisType, error) {
	t, ok := analysisTypeAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unrecognized analysis type %q", s)
	}
	return t, nil
}

// DisplayName returns the human-readable name of the strategy.
func (t AnalysisType) DisplayName() string {
	switch t {
	case LongTermRental:
		return "Long-Term Rental"
	case BRRRR:
		return "BRRRR"
	case LeaseOption:
		return "Lease Option"
	case MultiFamily:
		return "Multi-Family"
	case PadSplit:
		return "PadSplit"
	}
	return string(t)
}

// Analysis is the common contract of every investment strategy. A value is
// constructed once by NewAnalysis with its variant fixed, validated and
// analyzed at will, and never re-tagged.
type Analysis interface {
	Type() AnalysisType
	// Validate runs one full validation pass over the input record,
	// accumulating every problem instead of stopping at the first.
	Validate() *ValidationResult
	MonthlyIncome() Money
	MonthlyExpenses() Money
	// LoanPayments returns the total monthly debt service.
	LoanPayments() Money
	TotalInvestment() Money
	// MAO is the strategy's maximum allowable offer; strategies without an
	// offer ceiling return zero.
	MAO() Money
	// Analyze validates and computes the full result. Validation failures do
	// not halt it: an invalid record still yields best-effort metrics, with
	// the problems attached to the result.
	Analyze() *AnalysisResult
}

// AnalysisResult aggregates every metric computed by one Analyze call.
// It is immutable and has no identity beyond the call that produced it;
// the ID exists only so downstream layers can reference the computation.
type AnalysisResult struct {
	ID         uuid.UUID
	Type       AnalysisType
	Name       string
	ComputedAt time.Time

	MonthlyIncome      Money
	MonthlyExpenses    Money
	MonthlyDebtService Money
	MonthlyNOI         Money
	MonthlyCashFlow    Money
	AnnualCashFlow     Money
	TotalInvestment    Money
	MAO                Money

	CashFlow CashFlowBreakdown

	ROI                Percent
	CapRate            Percent
	CashOnCash         Percent
	ExpenseRatio       Percent
	BreakevenOccupancy Percent
	DSCR               float64
	GRM                float64
	PricePerUnit       Money

	Equity       EquityProjection
	YearlyEquity []YearlyProjection

	Validation *ValidationResult
}

// MarshalJSON implements the json.Marshaler interface for AnalysisResult.
func (r *AnalysisResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID.String())
	w.Append("analysisType", string(r.Type))
	w.Optional("name", r.Name)
	w.Append("computedAt", r.ComputedAt.Format(time.RFC3339))
	w.Append("monthlyIncome", r.MonthlyIncome)
	w.Append("monthlyExpenses", r.MonthlyExpenses)
	w.Append("monthlyDebtService", r.MonthlyDebtService)
	w.Append("monthlyNoi", r.MonthlyNOI)
	w.Append("monthlyCashFlow", r.MonthlyCashFlow)
	w.Append("annualCashFlow", r.AnnualCashFlow)
	w.Append("totalInvestment", r.TotalInvestment)
	w.Optional("mao", r.MAO)
	w.Append("roi", r.ROI)
	w.Append("capRate", r.CapRate)
	w.Append("cashOnCash", r.CashOnCash)
	w.Append("expenseRatio", r.ExpenseRatio)
	w.Append("breakevenOccupancy", r.BreakevenOccupancy)
	w.Append("dscr", finite(r.DSCR))
	w.Append("grm", finite(r.GRM))
	w.Optional("pricePerUnit", r.PricePerUnit)
	w.Append("cashFlow", r.CashFlow)
	w.Append("equityProjection", r.Equity)
	w.Append("yearlyEquity", r.YearlyEquity)
	w.Append("validation", r.Validation)
	return w.MarshalJSON()
}

// finite keeps a bare ratio JSON-encodable; encoding/json has no
// representation for IEEE infinities, so a debt-free DSCR encodes as null.
func finite(v float64) any {
	if math.IsInf(v, 0) {
		return nil
	}
	return v
}

// commonInputs are the typed fields every strategy extracts from its record
// once, at construction, so formulas never re-read the loose map.
type commonInputs struct {
	Name          string
	PurchasePrice Money
	CurrentValue  Money
	MonthlyRent   Money
	OtherIncome   Money

	VacancyRate    Percent
	ManagementRate Percent
	CapExRate      Percent
	RepairsRate    Percent

	AnnualTaxes      Money
	AnnualInsurance  Money
	MonthlyHOA       Money
	MonthlyUtilities Money

	DownPayment     Money
	ClosingCosts    Money
	RenovationCosts Money

	AppreciationRate Percent
	ProjectionYears  int
	PaymentsMade     int

	Loans   []LoanDetails
	loanErr error // surfaced during validation, not at construction
}

// defaultProjectionYears is the equity projection horizon when the record
// does not specify one.
const defaultProjectionYears = 5

// loanFromRecord builds a loan from the prefixed field group
// (<prefix>_amount, <prefix>_interest_rate, <prefix>_term,
// <prefix>_interest_only, <prefix>_name). A missing amount means no loan.
func loanFromRecord(rec Record, prefix string) (LoanDetails, error) {
	amount, ok := rec.Money(prefix + "_amount")
	if !ok {
		return LoanDetails{}, nil
	}
	name, _ := rec.String(prefix + "_name")
	if name == "" {
		name = strings.ReplaceAll(prefix, "_", " ")
	}
	return NewLoan(
		amount,
		rec.PercentOr(prefix+"_interest_rate", 0),
		rec.IntOr(prefix+"_term", maxLoanTerm),
		rec.BoolOr(prefix+"_interest_only", false),
		name,
	)
}

func extractCommon(rec Record) commonInputs {
	in := commonInputs{
		PurchasePrice:    rec.MoneyOr("purchase_price", Money{}),
		CurrentValue:     rec.MoneyOr("current_value", Money{}),
		MonthlyRent:      rec.MoneyOr("monthly_rent", Money{}),
		OtherIncome:      rec.MoneyOr("other_monthly_income", Money{}),
		VacancyRate:      rec.PercentOr("vacancy_rate", 0),
		ManagementRate:   rec.PercentOr("management_rate", 0),
		CapExRate:        rec.PercentOr("capex_rate", 0),
		RepairsRate:      rec.PercentOr("repairs_rate", 0),
		AnnualTaxes:      rec.MoneyOr("annual_taxes", Money{}),
		AnnualInsurance:  rec.MoneyOr("annual_insurance", Money{}),
		MonthlyHOA:       rec.MoneyOr("monthly_hoa", Money{}),
		MonthlyUtilities: rec.MoneyOr("monthly_utilities", Money{}),
		DownPayment:      rec.MoneyOr("down_payment", Money{}),
		ClosingCosts:     rec.MoneyOr("closing_costs", Money{}),
		RenovationCosts:  rec.MoneyOr("renovation_costs", Money{}),
		AppreciationRate: rec.PercentOr("appreciation_rate", 0),
		ProjectionYears:  rec.IntOr("projection_years", defaultProjectionYears),
		PaymentsMade:     rec.IntOr("payments_made", 0),
	}
	in.Name, _ = rec.String("analysis_name")

	loan, err := loanFromRecord(rec, "initial_loan")
	switch {
	case err != nil:
		in.loanErr = err
	case !loan.IsZero():
		in.Loans = append(in.Loans, loan)
	}
	return in
}

// baseAnalysis carries the record, the typed common inputs, and the default
// strategy behavior. Variants embed it and override a strict subset.
type baseAnalysis struct {
	rec    Record
	in     commonInputs
	logger *zap.Logger
}

// Option configures an analysis at construction.
type Option func(*baseAnalysis)

// WithLogger sets the logger used when a metric computation is substituted
// with its default. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *baseAnalysis) { b.logger = l }
}

func newBase(rec Record, opts []Option) baseAnalysis {
	b := baseAnalysis{rec: rec, in: extractCommon(rec)}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// validateCommon runs the checks shared by every strategy.
func (b *baseAnalysis) validateCommon(v *ValidationResult) {
	if v.Required(b.rec, "purchase_price") {
		v.PositiveNumber(b.rec, "purchase_price")
	}
	v.Percentage(b.rec, "vacancy_rate", 0, 100)
	v.Percentage(b.rec, "management_rate", 0, 100)
	v.Percentage(b.rec, "capex_rate", 0, 100)
	v.Percentage(b.rec, "repairs_rate", 0, 100)
	v.Percentage(b.rec, "appreciation_rate", 0, 100)
	v.Range(b.rec, "projection_years", 1, 50)
	v.StringField(b.rec, "analysis_name", 120)
	v.DateField(b.rec, "purchase_date", "")
	if b.in.loanErr != nil {
		v.Add("initial_loan_amount", b.in.loanErr.Error())
	}
}

// validateRent is shared by the strategies whose income is a single
// property-level rent; multi-family validates per-unit rent instead.
func (b *baseAnalysis) validateRent(v *ValidationResult) {
	if v.Required(b.rec, "monthly_rent") {
		v.PositiveNumber(b.rec, "monthly_rent")
	}
}

// cashFlowInput assembles the common cash-flow description; variants with
// extra income or expense lines override it and extend the result.
func (b *baseAnalysis) cashFlowInput() CashFlowInput {
	return CashFlowInput{
		MonthlyRent:        b.in.MonthlyRent,
		OtherMonthlyIncome: b.in.OtherIncome,
		VacancyRate:        b.in.VacancyRate,
		ManagementRate:     b.in.ManagementRate,
		CapExRate:          b.in.CapExRate,
		RepairsRate:        b.in.RepairsRate,
		AnnualTaxes:        b.in.AnnualTaxes,
		AnnualInsurance:    b.in.AnnualInsurance,
		MonthlyHOA:         b.in.MonthlyHOA,
		MonthlyUtilities:   b.in.MonthlyUtilities,
		Loans:              b.in.Loans,
	}
}

// Default capability implementations, overridden per strategy.

func (b *baseAnalysis) MonthlyIncome() Money {
	return b.in.MonthlyRent.Add(b.in.OtherIncome)
}

func (b *baseAnalysis) MonthlyExpenses() Money {
	return CashFlow(b.cashFlowInput()).TotalMonthlyExpenses
}

func (b *baseAnalysis) LoanPayments() Money {
	var total Money
	for _, loan := range b.in.Loans {
		total = total.Add(loan.Payment().Total)
	}
	return total
}

func (b *baseAnalysis) TotalInvestment() Money {
	cash := b.in.DownPayment
	if len(b.in.Loans) == 0 && cash.IsZero() {
		// all-cash purchase
		cash = b.in.PurchasePrice
	}
	return cash.Add(b.in.ClosingCosts).Add(b.in.RenovationCosts)
}

func (b *baseAnalysis) MAO() Money { return Money{} }

// breakdownAssembler lets variants supply their full cash-flow description;
// the base input covers everyone else.
type breakdownAssembler interface {
	cashFlowInput() CashFlowInput
}

// unitPricer marks strategies that price by the unit.
type unitPricer interface {
	PricePerUnit() Money
}

// equityInput derives the projection input from the record.
func (b *baseAnalysis) equityInput() EquityProjectionInput {
	var loan LoanDetails
	if len(b.in.Loans) > 0 {
		loan = b.in.Loans[0]
	}
	return EquityProjectionInput{
		PurchasePrice:    b.in.PurchasePrice,
		CurrentValue:     b.in.CurrentValue,
		Loan:             loan,
		DownPayment:      b.in.DownPayment,
		AppreciationRate: b.in.AppreciationRate,
		Years:            b.in.ProjectionYears,
		PaymentsMade:     b.in.PaymentsMade,
	}
}

// analyze is the single orchestration path behind every variant's Analyze.
// Each computation goes through safeCalc so a fault in one metric leaves
// its siblings intact.
func (b *baseAnalysis) analyze(a Analysis) *AnalysisResult {
	log := b.logger
	validation := a.Validate()

	income := safeCalc(log, "monthly_income", Money{}, value(a.MonthlyIncome))
	expenses := safeCalc(log, "monthly_expenses", Money{}, value(a.MonthlyExpenses))
	debtService := safeCalc(log, "loan_payments", Money{}, value(a.LoanPayments))
	investment := safeCalc(log, "total_investment", Money{}, value(a.TotalInvestment))
	mao := safeCalc(log, "mao", Money{}, value(a.MAO))

	noi := income.Sub(expenses)
	cashFlow := noi.Sub(debtService)
	annualNOI := noi.MulF(12)
	annualCashFlow := cashFlow.MulF(12)

	cfIn := safeCalc(log, "cash_flow_input", CashFlowInput{}, value(func() CashFlowInput {
		if v, ok := a.(breakdownAssembler); ok {
			return v.cashFlowInput()
		}
		return b.cashFlowInput()
	}))
	breakdown := safeCalc(log, "cash_flow_breakdown", CashFlowBreakdown{}, value(func() CashFlowBreakdown {
		return CashFlow(cfIn)
	}))

	equity := safeCalc(log, "equity_projection", EquityProjection{}, value(func() EquityProjection {
		return ProjectEquity(b.equityInput())
	}))
	yearly := safeCalc(log, "yearly_equity_projections", nil, value(func() []YearlyProjection {
		return YearlyEquityProjections(b.equityInput())
	}))

	// First-year total return: cash flow plus the equity built that year.
	roi := safeCalc(log, "roi", Percent(0), value(func() Percent {
		totalReturn := annualCashFlow
		if len(yearly) > 0 {
			totalReturn = totalReturn.Add(yearly[0].EquityFromAppreciation).Add(yearly[0].EquityFromPrincipal)
		}
		return ROI(investment, totalReturn, 1)
	}))

	result := &AnalysisResult{
		ID:         uuid.New(),
		Type:       a.Type(),
		Name:       b.in.Name,
		ComputedAt: time.Now(),

		MonthlyIncome:      income,
		MonthlyExpenses:    expenses,
		MonthlyDebtService: debtService,
		MonthlyNOI:         noi,
		MonthlyCashFlow:    cashFlow,
		AnnualCashFlow:     annualCashFlow,
		TotalInvestment:    investment,
		MAO:                mao,

		CashFlow: breakdown,

		ROI:                roi,
		CapRate:            safeCalc(log, "cap_rate", Percent(0), value(func() Percent { return CapRate(annualNOI, b.in.PurchasePrice) })),
		CashOnCash:         safeCalc(log, "cash_on_cash", Percent(0), value(func() Percent { return CashOnCashReturn(annualCashFlow, investment) })),
		ExpenseRatio:       safeCalc(log, "expense_ratio", Percent(0), value(func() Percent { return ExpenseRatio(expenses.MulF(12), income.MulF(12)) })),
		BreakevenOccupancy: safeCalc(log, "breakeven_occupancy", Percent(0), value(func() Percent { return BreakevenOccupancy(expenses, debtService, income) })),
		DSCR:               safeCalc(log, "dscr", 0, value(func() float64 { return DebtServiceCoverageRatio(annualNOI, debtService.MulF(12)) })),
		// GRM is a gross-rent metric: ancillary income and premiums stay out.
		GRM:                safeCalc(log, "grm", 0, value(func() float64 { return GrossRentMultiplier(b.in.PurchasePrice, cfIn.MonthlyRent.MulF(12)) })),

		Equity:       equity,
		YearlyEquity: yearly,

		Validation: validation,
	}

	if u, ok := a.(unitPricer); ok {
		result.PricePerUnit = safeCalc(log, "price_per_unit", Money{}, value(u.PricePerUnit))
	}
	return result
}

// NewAnalysis constructs the strategy selected by the record's
// `analysis_type` discriminator. A missing or unrecognized discriminator is
// a construction-time error, never a silently defaulted variant.
func NewAnalysis(rec Record, opts ...Option) (Analysis, error) {
	raw, ok := rec.String("analysis_type")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("analysis record is missing the analysis_type discriminator")
	}
	t, err := ParseAnalysisType(raw)
	if err != nil {
		return nil, err
	}

	switch t {
	case LongTermRental:
		return newLTRAnalysis(rec, opts), nil
	case BRRRR:
		return newBRRRRAnalysis(rec, opts), nil
	case LeaseOption:
		return newLeaseOptionAnalysis(rec, opts), nil
	case MultiFamily:
		return newMultiFamilyAnalysis(rec, opts), nil
	case PadSplit:
		return newPadSplitAnalysis(rec, opts), nil
	default:
		// ParseAnalysisType only returns the five known types.
		return nil, fmt.Errorf("unrecognized analysis type %q", raw)
	}
}
