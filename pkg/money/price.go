package money

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is a product price as delivered by the catalog API. The backend
// serializes prices either as JSON numbers or as numeric strings; Price keeps
// the parsed decimal together with whether parsing succeeded, so callers can
// exclude unparsable prices from numeric filters instead of treating them as
// zero.
type Price struct {
	value decimal.Decimal
	raw   string
	valid bool
}

// FromDecimal wraps an already-parsed decimal.
func FromDecimal(value decimal.Decimal) Price {
	return Price{value: value, raw: value.String(), valid: true}
}

// FromFloat wraps a float price.
func FromFloat(value float64) Price {
	return FromDecimal(decimal.NewFromFloat(value))
}

// Parse converts a raw string into a Price. Whitespace and a leading
// currency sign are tolerated; anything else unparsable yields an invalid
// Price that still remembers its raw form.
func Parse(raw string) Price {
	trimmed := strings.TrimSpace(raw)
	normalized := strings.TrimPrefix(trimmed, "$")
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return Price{raw: raw}
	}
	return Price{value: value, raw: raw, valid: true}
}

// Valid reports whether the price parsed to a number.
func (p Price) Valid() bool {
	return p.valid
}

// Decimal returns the parsed value; zero when invalid.
func (p Price) Decimal() decimal.Decimal {
	return p.value
}

// Float64 returns the closest float64 representation; zero when invalid.
func (p Price) Float64() float64 {
	if !p.valid {
		return 0
	}
	return p.value.InexactFloat64()
}

// Mul returns price times quantity; zero when invalid.
func (p Price) Mul(quantity int) decimal.Decimal {
	if !p.valid {
		return decimal.Zero
	}
	return p.value.Mul(decimal.NewFromInt(int64(quantity)))
}

// Cmp compares two prices numerically. Invalid prices compare as zero.
func (p Price) Cmp(other Price) int {
	return p.value.Cmp(other.value)
}

func (p Price) String() string {
	if !p.valid {
		return p.raw
	}
	return p.value.String()
}

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (p *Price) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*p = Price{}
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*p = Parse(raw)
		return nil
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		// Keep the raw token and mark the price invalid rather than fail
		// decoding the whole product.
		*p = Price{raw: trimmed}
		return nil
	}
	*p = Price{value: value, raw: trimmed, valid: true}
	return nil
}

// MarshalJSON writes a JSON number when the price is valid and the raw
// value as a string otherwise.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.valid {
		return json.Marshal(p.raw)
	}
	return []byte(p.value.String()), nil
}

// ParseThreshold builds a Price from an integer amount, for band bounds.
func ParseThreshold(amount int64) Price {
	return FromDecimal(decimal.NewFromInt(amount))
}

// FormatAmount renders a decimal with two fractional digits, the way the
// storefront displays totals.
func FormatAmount(value decimal.Decimal) string {
	return value.StringFixed(2)
}
