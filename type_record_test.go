package propfolio

import (
	"strings"
	"testing"
)

func TestDecodeRecord(t *testing.T) {
	rec, err := DecodeRecord(strings.NewReader(`{
		"analysis_type": "ltr",
		"purchase_price": 200000,
		"monthly_rent": 1500.50,
		"initial_loan_term": 360,
		"initial_loan_interest_only": false
	}`))
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}

	if s, _ := rec.String("analysis_type"); s != "ltr" {
		t.Errorf("analysis_type = %q", s)
	}
	// numbers decode as json.Number, so money amounts survive exactly
	if m, ok := rec.Money("monthly_rent"); !ok || !m.Equal(M(1500.5)) {
		t.Errorf("monthly_rent = %s, ok=%v", m, ok)
	}
	if n, ok := rec.Int("initial_loan_term"); !ok || n != 360 {
		t.Errorf("initial_loan_term = %d, ok=%v", n, ok)
	}
	if b, ok := rec.Bool("initial_loan_interest_only"); !ok || b {
		t.Errorf("initial_loan_interest_only = %v, ok=%v", b, ok)
	}

	if _, err := DecodeRecord(strings.NewReader(`{broken`)); err == nil {
		t.Error("DecodeRecord accepted malformed JSON")
	}
}

func TestRecordCoercion(t *testing.T) {
	rec := Record{
		"rate_as_string":  "4.5",
		"price_as_float":  200000.0,
		"bool_as_string":  "true",
		"not_a_number":    "lots",
		"fractional_term": 12.5,
	}

	if f, ok := rec.Float("rate_as_string"); !ok || f != 4.5 {
		t.Errorf("Float(rate_as_string) = %v, ok=%v", f, ok)
	}
	if m, ok := rec.Money("price_as_float"); !ok || !m.Equal(M(200000)) {
		t.Errorf("Money(price_as_float) = %s, ok=%v", m, ok)
	}
	if b, ok := rec.Bool("bool_as_string"); !ok || !b {
		t.Errorf("Bool(bool_as_string) = %v, ok=%v", b, ok)
	}
	if _, ok := rec.Float("not_a_number"); ok {
		t.Error("Float coerced a non-numeric string")
	}
	if _, ok := rec.Int("fractional_term"); ok {
		t.Error("Int accepted a fractional value")
	}
	if _, ok := rec.Float("absent"); ok {
		t.Error("Float found an absent field")
	}

	// Or variants fall back on bad or missing fields
	if got := rec.IntOr("fractional_term", 360); got != 360 {
		t.Errorf("IntOr = %d, want 360", got)
	}
	if got := rec.PercentOr("absent", 5); got != 5 {
		t.Errorf("PercentOr = %v, want 5", got)
	}
	if got := rec.MoneyOr("not_a_number", M(1)); !got.Equal(M(1)) {
		t.Errorf("MoneyOr = %s, want $1.00", got)
	}
}

func TestExtractRecord(t *testing.T) {
	payload := `{
		"listing": {
			"price": 200000,
			"financials": {"rent": 1500, "taxes": 2400}
		},
		"meta": {"source": "mls"}
	}`
	rec, err := ExtractRecord(strings.NewReader(payload), map[string]string{
		"purchase_price": "$.listing.price",
		"monthly_rent":   "$.listing.financials.rent",
		"annual_taxes":   "$.listing.financials.taxes",
		"missing":        "$.listing.agent",
	})
	if err != nil {
		t.Fatalf("ExtractRecord: %v", err)
	}

	if m, ok := rec.Money("purchase_price"); !ok || !m.Equal(M(200000)) {
		t.Errorf("purchase_price = %s, ok=%v", m, ok)
	}
	if m, ok := rec.Money("monthly_rent"); !ok || !m.Equal(M(1500)) {
		t.Errorf("monthly_rent = %s, ok=%v", m, ok)
	}
	if rec.Has("missing") {
		t.Error("unresolvable path should leave the field absent")
	}
}
