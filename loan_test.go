package propfolio

import (
	"testing"
)

func mustLoan(t *testing.T, amount float64, rate Percent, term int, interestOnly bool) LoanDetails {
	t.Helper()
	l, err := NewLoan(M(amount), rate, term, interestOnly, "")
	if err != nil {
		t.Fatalf("NewLoan: %v", err)
	}
	return l
}

func TestNewLoanInvariants(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		rate    Percent
		term    int
		wantErr bool
	}{
		{"valid", 200000, 4.5, 360, false},
		{"zero rate ok", 120000, 0, 120, false},
		{"max rate ok", 100000, 30, 360, false},
		{"zero amount", 0, 4.5, 360, true},
		{"negative amount", -1000, 4.5, 360, true},
		{"negative rate", 100000, -1, 360, true},
		{"rate above cap", 100000, 31, 360, true},
		{"zero term", 100000, 4.5, 0, true},
		{"term above cap", 100000, 4.5, 361, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoan(M(tt.amount), tt.rate, tt.term, false, "")
			if (err != nil) != tt.wantErr {
				t.Errorf("NewLoan err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if _, err := NewLoan(M(100000), Infinite, 360, false, ""); err == nil {
		t.Error("NewLoan accepted an infinite rate")
	}
}

func TestPayment(t *testing.T) {
	tests := []struct {
		name          string
		loan          LoanDetails
		wantTotal     string
		wantPrincipal string
		wantInterest  string
	}{
		{
			name:          "amortizing 30y",
			loan:          mustLoan(t, 200000, 4.5, 360, false),
			wantTotal:     "$1,013.37",
			wantPrincipal: "$263.37",
			wantInterest:  "$750.00",
		},
		{
			name:          "zero rate divides linearly",
			loan:          mustLoan(t, 120000, 0, 120, false),
			wantTotal:     "$1,000.00",
			wantPrincipal: "$1,000.00",
			wantInterest:  "$0.00",
		},
		{
			name:          "zero rate wins over interest-only",
			loan:          mustLoan(t, 120000, 0, 120, true),
			wantTotal:     "$1,000.00",
			wantPrincipal: "$1,000.00",
			wantInterest:  "$0.00",
		},
		{
			name:          "interest-only",
			loan:          mustLoan(t, 100000, 6, 360, true),
			wantTotal:     "$500.00",
			wantPrincipal: "$0.00",
			wantInterest:  "$500.00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.loan.Payment()
			if got := p.Total.String(); got != tt.wantTotal {
				t.Errorf("Total = %s, want %s", got, tt.wantTotal)
			}
			if got := p.Principal.String(); got != tt.wantPrincipal {
				t.Errorf("Principal = %s, want %s", got, tt.wantPrincipal)
			}
			if got := p.Interest.String(); got != tt.wantInterest {
				t.Errorf("Interest = %s, want %s", got, tt.wantInterest)
			}
			if !p.Principal.Add(p.Interest).Equal(p.Total) {
				t.Error("Principal + Interest != Total")
			}
		})
	}
}

func TestRemainingBalance(t *testing.T) {
	loan := mustLoan(t, 200000, 4.5, 360, false)

	tests := []struct {
		name         string
		loan         LoanDetails
		paymentsMade int
		want         string
	}{
		{"actuarial after 10 years", loan, 120, "$160,178.87"},
		{"no payments", loan, 0, "$200,000.00"},
		{"full term retired", loan, 360, "$0.00"},
		{"beyond term", loan, 400, "$0.00"},
		{"interest-only owes full principal", mustLoan(t, 100000, 6, 360, true), 120, "$100,000.00"},
		{"zero rate reduces linearly", mustLoan(t, 120000, 0, 120, false), 30, "$90,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.loan.RemainingBalance(tt.paymentsMade)
			if err != nil {
				t.Fatalf("RemainingBalance: %v", err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("RemainingBalance(%d) = %s, want %s", tt.paymentsMade, got, tt.want)
			}
		})
	}

	if _, err := loan.RemainingBalance(-1); err == nil {
		t.Error("RemainingBalance accepted a negative payment count")
	}
}

func TestAmortizationSchedule(t *testing.T) {
	loan := mustLoan(t, 10000, 6, 12, false)
	schedule := loan.AmortizationSchedule(0)

	if len(schedule) != 12 {
		t.Fatalf("schedule has %d periods, want 12", len(schedule))
	}
	if got := schedule[0].Interest.String(); got != "$50.00" {
		t.Errorf("first interest = %s, want $50.00", got)
	}

	var principal Money
	for _, e := range schedule {
		if !e.Principal.Add(e.Interest).Equal(e.Payment) {
			t.Errorf("period %d: principal + interest != payment", e.Period)
		}
		principal = principal.Add(e.Principal)
	}
	if !principal.Equal(loan.Amount()) {
		t.Errorf("total principal = %s, want %s", principal, loan.Amount())
	}
	if last := schedule[len(schedule)-1]; !last.RemainingBalance.IsZero() {
		t.Errorf("final balance = %s, want $0.00", last.RemainingBalance)
	}
}

func TestAmortizationScheduleTruncated(t *testing.T) {
	loan := mustLoan(t, 200000, 4.5, 360, false)
	schedule := loan.AmortizationSchedule(12)

	if len(schedule) != 12 {
		t.Fatalf("schedule has %d periods, want 12", len(schedule))
	}
	if last := schedule[len(schedule)-1]; !last.RemainingBalance.IsPositive() {
		t.Errorf("truncated schedule should leave a balance, got %s", last.RemainingBalance)
	}
}

func TestAmortizationScheduleInterestOnly(t *testing.T) {
	loan := mustLoan(t, 100000, 6, 12, true)
	schedule := loan.AmortizationSchedule(0)

	for _, e := range schedule[:len(schedule)-1] {
		if !e.Principal.IsZero() {
			t.Errorf("period %d carries principal %s", e.Period, e.Principal)
		}
	}
	// the final period retires the whole principal
	last := schedule[len(schedule)-1]
	if !last.Principal.Equal(loan.Amount()) {
		t.Errorf("final principal = %s, want %s", last.Principal, loan.Amount())
	}
	if !last.RemainingBalance.IsZero() {
		t.Errorf("final balance = %s, want $0.00", last.RemainingBalance)
	}
}

func TestAnnuityPresentValue(t *testing.T) {
	// the inverse of the amortizing payment formula recovers the principal
	loan := mustLoan(t, 160000, 4.5, 360, false)
	got := AnnuityPresentValue(loan.Payment().Total, 4.5, 360)
	if got.String() != "$160,000.00" {
		t.Errorf("AnnuityPresentValue = %s, want $160,000.00", got)
	}

	if got := AnnuityPresentValue(M(755), 4.5, 360); got.String() != "$149,007.68" {
		t.Errorf("AnnuityPresentValue($755, 4.5%%, 360) = %s", got)
	}
	if got := AnnuityPresentValue(M(1000), 0, 120); !got.Equal(M(120000)) {
		t.Errorf("zero-rate AnnuityPresentValue = %s, want $120,000.00", got)
	}
	if got := AnnuityPresentValue(Money{}, 4.5, 360); !got.IsZero() {
		t.Errorf("zero payment AnnuityPresentValue = %s, want $0.00", got)
	}
}
