package propfolio

// MultiFamilyAnalysis is the apartment-building strategy: income scales with
// occupied units, expenses gain building-level lines (common areas,
// elevators, staff, security), and the property is priced by the unit.
type MultiFamilyAnalysis struct {
	baseAnalysis

	totalUnits    int
	occupiedUnits int
	unitRent      Money
	ancillary     Money
	buildingLines []ExpenseLine
}

func newMultiFamilyAnalysis(rec Record, opts []Option) *MultiFamilyAnalysis {
	t := &MultiFamilyAnalysis{baseAnalysis: newBase(rec, opts)}
	t.totalUnits = rec.IntOr("total_units", 0)
	t.occupiedUnits = rec.IntOr("occupied_units", t.totalUnits)
	t.unitRent = rec.MoneyOr("average_monthly_rent", t.in.MonthlyRent)
	t.ancillary = rec.MoneyOr("ancillary_monthly_income", Money{})

	add := func(name, field string) {
		if m, ok := rec.Money(field); ok && !m.IsZero() {
			t.buildingLines = append(t.buildingLines, ExpenseLine{Name: name, Monthly: m})
		}
	}
	add("common area maintenance", "common_area_maintenance")
	add("elevator maintenance", "elevator_maintenance")
	add("staff payroll", "staff_payroll")
	add("security", "security_costs")
	return t
}

func (t *MultiFamilyAnalysis) Type() AnalysisType { return MultiFamily }

func (t *MultiFamilyAnalysis) Validate() *ValidationResult {
	v := NewValidationResult()
	t.validateCommon(v)
	if v.Required(t.rec, "total_units") {
		v.PositiveNumber(t.rec, "total_units")
	}
	v.WithFunc("average_monthly_rent", "either average_monthly_rent or monthly_rent is required", func() bool {
		return t.rec.Has("average_monthly_rent") || t.rec.Has("monthly_rent")
	})
	v.Range(t.rec, "occupied_units", 0, 100000)
	v.WithFunc("occupied_units", "must not exceed total_units", func() bool {
		return t.occupiedUnits <= t.totalUnits
	})
	return v
}

// MonthlyIncome is occupied units times the average unit rent, plus
// ancillary building income (laundry, parking) and any other income.
func (t *MultiFamilyAnalysis) MonthlyIncome() Money {
	rentRoll := t.unitRent.MulF(float64(t.occupiedUnits))
	return rentRoll.Add(t.ancillary).Add(t.in.OtherIncome)
}

// cashFlowInput substitutes the building rent roll for the single rent and
// appends the building-level expense lines.
func (t *MultiFamilyAnalysis) cashFlowInput() CashFlowInput {
	in := t.baseAnalysis.cashFlowInput()
	in.MonthlyRent = t.unitRent.MulF(float64(t.occupiedUnits))
	in.OtherMonthlyIncome = t.ancillary.Add(t.in.OtherIncome)
	in.OtherMonthlyExpenses = append(in.OtherMonthlyExpenses, t.buildingLines...)
	return in
}

func (t *MultiFamilyAnalysis) MonthlyExpenses() Money {
	return CashFlow(t.cashFlowInput()).TotalMonthlyExpenses
}

// PricePerUnit divides the purchase price across all units, occupied or not.
func (t *MultiFamilyAnalysis) PricePerUnit() Money {
	return PricePerUnit(t.in.PurchasePrice, t.totalUnits)
}

func (t *MultiFamilyAnalysis) Analyze() *AnalysisResult { return t.analyze(t) }
