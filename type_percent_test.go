package propfolio

import (
	"encoding/json"
	"testing"
)

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name        string
		part, whole Money
		want        Percent
	}{
		{"cap rate", M(10260), M(200000), 5.13},
		{"whole of itself", M(1500), M(1500), 100},
		{"negative part", M(-300), M(1000), -30},
		{"zero part", Money{}, M(1000), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentOf(tt.part, tt.whole); !got.Equal(tt.want) {
				t.Errorf("PercentOf(%s, %s) = %s, want %s", tt.part, tt.whole, got, tt.want)
			}
		})
	}

	got := PercentOf(M(531.64), Money{})
	if !got.IsInfinite() {
		t.Errorf("PercentOf over zero whole = %s, want Infinite", got)
	}
}

func TestPercentFractionRoundTrip(t *testing.T) {
	for _, p := range []Percent{0, 5, 4.5, 100, -30} {
		if got := FromFraction(p.Fraction()); !got.Equal(p) {
			t.Errorf("FromFraction(Fraction(%s)) = %s", p, got)
		}
	}
	if got := Percent(5).Fraction(); got != 0.05 {
		t.Errorf("Fraction(5%%) = %v, want 0.05", got)
	}
}

func TestPercentEqual(t *testing.T) {
	if !Percent(5).Equal(5.00005) {
		t.Error("5% should equal 5.00005% within precision")
	}
	if Percent(5).Equal(5.1) {
		t.Error("5% should not equal 5.1%")
	}
	if !Infinite.Equal(Infinite) {
		t.Error("Infinite should equal itself")
	}
	if Infinite.Equal(5) || Percent(5).Equal(Infinite) {
		t.Error("Infinite should not equal a finite rate")
	}
}

func TestPercentOrdering(t *testing.T) {
	// the infinite sentinel propagates through float comparison
	if !(Infinite > 1e12) {
		t.Error("Infinite should compare greater than any finite rate")
	}
}

func TestPercentString(t *testing.T) {
	tests := []struct {
		p    Percent
		want string
	}{
		{5.13, "5.130%"},
		{0, "0.000%"},
		{-2.5, "-2.500%"},
		{Infinite, "∞"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", float64(tt.p), got, tt.want)
		}
	}

	if got := Infinite.SignedString(); got != "+∞" {
		t.Errorf("SignedString(Infinite) = %q, want +∞", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
}

func TestPercentJSON(t *testing.T) {
	tests := []struct {
		name string
		p    Percent
		want string
	}{
		{"finite", 5.13, "5.13"},
		{"zero", 0, "0"},
		{"negative", -2.5, "-2.5"},
		{"infinite", Infinite, "null"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.p)
			if err != nil {
				t.Fatalf("Marshal(%v) error: %v", tc.p, err)
			}
			if string(got) != tc.want {
				t.Errorf("Marshal(%v) = %s, want %s", tc.p, got, tc.want)
			}
		})
	}
}
