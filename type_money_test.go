package propfolio

import (
	"encoding/json"
	"testing"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		name string
		m    Money
		want string
	}{
		{"zero", Money{}, "$0.00"},
		{"integral", M(200000), "$200,000.00"},
		{"cents", M(1013.37), "$1,013.37"},
		{"negative", M(-36.77), "-$36.77"},
		{"rounds display to cents", M(810.6964957), "$810.70"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := (Money{}).SignedString(); got != "-" {
		t.Errorf("zero SignedString() = %q, want %q", got, "-")
	}
	if got := M(44.30).SignedString(); got != "+$44.30" {
		t.Errorf("positive SignedString() = %q, want %q", got, "+$44.30")
	}
	if got := M(-36.77).SignedString(); got != "-$36.77" {
		t.Errorf("negative SignedString() = %q, want %q", got, "-$36.77")
	}
}

func TestMoneyArithmetic(t *testing.T) {
	tests := []struct {
		name string
		a, b Money
	}{
		{"integers", M(200000), M(40000)},
		{"cents", M(1013.37), M(810.70)},
		{"negative", M(-36.77), M(125.37)},
		{"zero", Money{}, M(1500)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// decimal arithmetic is exact: add then subtract restores the value
			if got := tt.a.Add(tt.b).Sub(tt.b); !got.Equal(tt.a) {
				t.Errorf("(%s + %s) - %s = %s, want %s", tt.a, tt.b, tt.b, got, tt.a)
			}
		})
	}

	if got := M(1500).MulPercent(5); !got.Equal(M(75)) {
		t.Errorf("$1500 * 5%% = %s, want $75.00", got)
	}
	if got := M(1500).MulPercent(Infinite); !got.IsZero() {
		t.Errorf("infinite rate product = %s, want zero", got)
	}
	if got := M(500000).DivF(10); !got.Equal(M(50000)) {
		t.Errorf("$500000 / 10 = %s, want $50,000.00", got)
	}
	if got := M(10260).Div(M(200000)); got != 0.0513 {
		t.Errorf("10260/200000 = %v, want 0.0513", got)
	}
	if got := M(100).Min(M(200)); !got.Equal(M(100)) {
		t.Errorf("Min = %s, want $100.00", got)
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("1013.37")
	if err != nil {
		t.Fatalf("ParseMoney: %v", err)
	}
	if !m.Equal(M(1013.37)) {
		t.Errorf("ParseMoney(\"1013.37\") = %s", m)
	}
	if _, err := ParseMoney("not a number"); err == nil {
		t.Error("ParseMoney accepted garbage")
	}
}

func TestMoneyJSON(t *testing.T) {
	data, err := json.Marshal(M(44.3))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "44.3" {
		t.Errorf("Marshal = %s, want 44.3", data)
	}

	// amounts are rounded to cents on the wire
	data, err = json.Marshal(M(810.6964957))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "810.7" {
		t.Errorf("Marshal = %s, want 810.7", data)
	}

	var m Money
	if err := json.Unmarshal([]byte("1013.37"), &m); err != nil {
		t.Fatal(err)
	}
	if !m.Equal(M(1013.37)) {
		t.Errorf("Unmarshal = %s", m)
	}
}
