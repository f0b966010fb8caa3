package price

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// VATRate is the fixed VAT markup applied to every price.
const VATRate = 0.21

// VATPercent is VATRate expressed as a whole percentage for display.
const VATPercent = 21

var vatMultiplier = decimal.NewFromFloat(1 + VATRate)

// Parse interprets text as a decimal price.
//
// A plain dot-decimal numeral is parsed directly. Otherwise every '.' is
// dropped as a thousands separator and ',' becomes the decimal point, so
// "1.234,56" reads as 1234.56 while "1.234" stays 1.234. Only plain decimal
// numerals count: hex floats, digit underscores, NaN and infinities are not
// prices.
func Parse(text string) (float64, bool) {
	trimmed := strings.TrimSpace(text)
	if v, ok := parseFinite(trimmed); ok {
		return v, true
	}

	filtered := strings.ReplaceAll(trimmed, ".", "")
	filtered = strings.ReplaceAll(filtered, ",", ".")
	return parseFinite(filtered)
}

func parseFinite(s string) (float64, bool) {
	// ParseFloat also takes Go literal syntax; decimal does not.
	if _, err := decimal.NewFromString(s); err != nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Conversion is a price together with its VAT-inclusive total.
type Conversion struct {
	Price float64
	Total decimal.Decimal
}

// Convert applies VATRate to p.
func Convert(p float64) Conversion {
	return Conversion{
		Price: p,
		Total: decimal.NewFromFloat(p).Mul(vatMultiplier),
	}
}

// PriceText returns the price with two decimals.
func (c Conversion) PriceText() string {
	return c.signed(decimal.NewFromFloat(c.Price).StringFixed(2))
}

// TotalText returns the VAT-inclusive total with two decimals.
func (c Conversion) TotalText() string {
	return c.signed(c.Total.StringFixed(2))
}

// signed keeps the minus sign of a negative price that rounds to zero,
// e.g. -0 or -0.001 print as "-0.00". The total always has the price's sign.
func (c Conversion) signed(s string) string {
	if math.Signbit(c.Price) && !strings.HasPrefix(s, "-") {
		return "-" + s
	}
	return s
}

// Separator is the arrow shown between price and total.
func Separator() string {
	return fmt.Sprintf(" == +%d%% ==> ", VATPercent)
}

func (c Conversion) String() string {
	return c.PriceText() + Separator() + c.TotalText()
}
