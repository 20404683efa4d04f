package propfolio

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONWriterFieldOrder(t *testing.T) {
	var w jsonObjectWriter
	w.Append("zebra", 1).Append("apple", 2).Append("mango", 3)
	out, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"zebra":1,"apple":2,"mango":3}`
	if string(out) != want {
		t.Errorf("MarshalJSON = %s, want %s", out, want)
	}
}

func TestJSONWriterOptionalSkipsZero(t *testing.T) {
	var w jsonObjectWriter
	w.Append("price", M(100)).
		Optional("mao", Money{}).
		Optional("units", 0).
		Optional("name", "duplex")
	out, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if strings.Contains(s, "mao") || strings.Contains(s, "units") {
		t.Errorf("zero values not skipped: %s", s)
	}
	if !strings.Contains(s, `"name":"duplex"`) {
		t.Errorf("non-zero value missing: %s", s)
	}
}

func TestJSONWriterEmbed(t *testing.T) {
	var w jsonObjectWriter
	w.Append("id", 7).
		EmbedFrom(struct {
			Rent Money `json:"rent"`
		}{Rent: M(1500)}).
		Append("done", true)
	out, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("invalid JSON %s: %v", out, err)
	}
	if parsed["rent"] != 1500.0 {
		t.Errorf("rent = %v, want 1500", parsed["rent"])
	}
	if strings.Index(string(out), `"id"`) > strings.Index(string(out), `"rent"`) {
		t.Errorf("embedded fields out of order: %s", out)
	}
}

func TestJSONWriterEmptyObject(t *testing.T) {
	var w jsonObjectWriter
	out, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "{}" {
		t.Errorf("MarshalJSON = %s, want {}", out)
	}
}
