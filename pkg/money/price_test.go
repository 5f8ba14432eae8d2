package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseNumericStrings(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
		want  string
	}{
		{raw: "49.99", valid: true, want: "49.99"},
		{raw: " 200 ", valid: true, want: "200"},
		{raw: "$12.50", valid: true, want: "12.5"},
		{raw: "", valid: false},
		{raw: "free", valid: false},
	}

	for _, tt := range tests {
		price := Parse(tt.raw)
		if price.Valid() != tt.valid {
			t.Fatalf("Parse(%q) valid = %v, want %v", tt.raw, price.Valid(), tt.valid)
		}
		if tt.valid && price.Decimal().String() != tt.want {
			t.Fatalf("Parse(%q) = %s, want %s", tt.raw, price.Decimal(), tt.want)
		}
	}
}

func TestUnmarshalNumberAndString(t *testing.T) {
	var doc struct {
		Number Price `json:"number"`
		Text   Price `json:"text"`
		Bad    Price `json:"bad"`
		Empty  Price `json:"empty"`
	}

	raw := `{"number": 129.99, "text": "59.5", "bad": "n/a", "empty": null}`
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !doc.Number.Valid() || doc.Number.Decimal().String() != "129.99" {
		t.Fatalf("number price parsed as %v", doc.Number)
	}
	if !doc.Text.Valid() || doc.Text.Decimal().String() != "59.5" {
		t.Fatalf("string price parsed as %v", doc.Text)
	}
	if doc.Bad.Valid() {
		t.Fatal("expected unparsable price to be invalid")
	}
	if doc.Empty.Valid() {
		t.Fatal("expected null price to be invalid")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(FromFloat(10.5))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "10.5" {
		t.Fatalf("expected bare number, got %s", out)
	}

	out, err = json.Marshal(Parse("n/a"))
	if err != nil {
		t.Fatalf("marshal invalid: %v", err)
	}
	if string(out) != `"n/a"` {
		t.Fatalf("expected raw string, got %s", out)
	}
}

func TestMulAndFormat(t *testing.T) {
	price := Parse("10")
	if got := price.Mul(3); !got.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("expected 30, got %s", got)
	}
	if got := Parse("broken").Mul(3); !got.Equal(decimal.Zero) {
		t.Fatalf("invalid price should multiply to zero, got %s", got)
	}
	if got := FormatAmount(decimal.NewFromFloat(20)); got != "20.00" {
		t.Fatalf("expected 20.00, got %s", got)
	}
}
