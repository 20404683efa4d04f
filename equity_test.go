package propfolio

import "testing"

func TestProjectEquity(t *testing.T) {
	loan := mustLoan(t, 160000, 4.5, 360, false)
	p := ProjectEquity(EquityProjectionInput{
		PurchasePrice:    M(200000),
		Loan:             loan,
		DownPayment:      M(40000),
		AppreciationRate: 3,
		Years:            5,
	})

	if p.Years != 5 {
		t.Errorf("Years = %d", p.Years)
	}
	if got := p.FutureValue.String(); got != "$231,854.81" {
		t.Errorf("FutureValue = %s, want $231,854.81", got)
	}
	if got := p.FutureLoanBalance.String(); got != "$145,852.67" {
		t.Errorf("FutureLoanBalance = %s, want $145,852.67", got)
	}
	if got := p.InitialEquity.String(); got != "$40,000.00" {
		t.Errorf("InitialEquity = %s, want $40,000.00", got)
	}
	if got := p.EquityFromAppreciation.String(); got != "$31,854.81" {
		t.Errorf("EquityFromAppreciation = %s, want $31,854.81", got)
	}
	if got := p.EquityFromPrincipal.String(); got != "$14,147.33" {
		t.Errorf("EquityFromPrincipal = %s, want $14,147.33", got)
	}
	if !p.TotalEquityGain.Equal(p.EquityFromAppreciation.Add(p.EquityFromPrincipal)) {
		t.Error("gain components do not sum to the total gain")
	}
	if !p.TotalEquity.Equal(p.FutureValue.Sub(p.FutureLoanBalance)) {
		t.Error("TotalEquity != FutureValue - FutureLoanBalance")
	}
}

func TestProjectEquityNoAppreciationNoLoan(t *testing.T) {
	p := ProjectEquity(EquityProjectionInput{
		PurchasePrice: M(200000),
		Years:         5,
	})
	if !p.TotalEquityGain.IsZero() {
		t.Errorf("gain = %s, want $0.00 for a fully owned flat-value property", p.TotalEquityGain)
	}
	if !p.InitialEquity.Equal(M(200000)) {
		t.Errorf("InitialEquity = %s, want $200,000.00", p.InitialEquity)
	}
}

func TestProjectEquityImpliedLoan(t *testing.T) {
	// no loan details: the balance defaults to price minus down payment and
	// stays flat, so the only gain is appreciation
	p := ProjectEquity(EquityProjectionInput{
		PurchasePrice:    M(200000),
		DownPayment:      M(40000),
		AppreciationRate: 3,
		Years:            5,
	})
	if got := p.FutureLoanBalance.String(); got != "$160,000.00" {
		t.Errorf("FutureLoanBalance = %s, want $160,000.00", got)
	}
	if !p.EquityFromPrincipal.IsZero() {
		t.Errorf("EquityFromPrincipal = %s, want $0.00 without a loan", p.EquityFromPrincipal)
	}
	if got := p.EquityFromAppreciation.String(); got != "$31,854.81" {
		t.Errorf("EquityFromAppreciation = %s, want $31,854.81", got)
	}
}

func TestProjectEquityCurrentValue(t *testing.T) {
	// an appraised current value overrides the purchase price as the
	// compounding base
	p := ProjectEquity(EquityProjectionInput{
		PurchasePrice: M(200000),
		CurrentValue:  M(220000),
		Years:         1,
	})
	if got := p.FutureValue.String(); got != "$220,000.00" {
		t.Errorf("FutureValue = %s, want $220,000.00", got)
	}
}

func TestYearlyEquityProjections(t *testing.T) {
	loan := mustLoan(t, 160000, 4.5, 360, false)
	in := EquityProjectionInput{
		PurchasePrice:    M(200000),
		Loan:             loan,
		DownPayment:      M(40000),
		AppreciationRate: 3,
		Years:            5,
	}
	years := YearlyEquityProjections(in)

	if len(years) != 5 {
		t.Fatalf("got %d years, want 5", len(years))
	}
	if got := years[0].PropertyValue.String(); got != "$206,000.00" {
		t.Errorf("year 1 value = %s, want $206,000.00", got)
	}
	for i := 1; i < len(years); i++ {
		if !years[i].Equity.GreaterThan(years[i-1].Equity) {
			t.Errorf("equity should grow year over year, year %d: %s <= %s",
				years[i].Year, years[i].Equity, years[i-1].Equity)
		}
	}

	// the final year matches the terminal projection
	terminal := ProjectEquity(in)
	last := years[len(years)-1]
	if got, want := last.PropertyValue.String(), terminal.FutureValue.String(); got != want {
		t.Errorf("final year value = %s, terminal = %s", got, want)
	}
	if got, want := last.LoanBalance.String(), terminal.FutureLoanBalance.String(); got != want {
		t.Errorf("final year balance = %s, terminal = %s", got, want)
	}

	if got := YearlyEquityProjections(EquityProjectionInput{Years: 0}); got != nil {
		t.Errorf("zero years should yield nil, got %d entries", len(got))
	}
}
