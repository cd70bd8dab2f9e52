package cryptodash

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// USD is the quote currency of every asset in the catalog.
const USD = "USD"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money of the given value and currency.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// maxMinorUnits is the largest amount, in minor units, go-money can format.
var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// String returns the localized representation of the money value, rounded to
// the currency's fraction digits.
func (m Money) String() string {
	cur := m.currency()
	v := m.value.Round(int32(cur.Fraction))
	if minor := v.Shift(int32(cur.Fraction)); minor.Abs().LessThanOrEqual(maxMinorUnits) {
		return cur.Formatter().Format(minor.IntPart())
	}
	return formatLarge(cur, v)
}

// formatLarge formats amounts beyond the int64 range the way go-money does,
// grouping the digits straight from the decimal.
func formatLarge(cur money.Currency, v decimal.Decimal) string {
	digits := v.Abs().StringFixed(int32(cur.Fraction))
	integer, fraction, _ := strings.Cut(digits, ".")

	var b strings.Builder
	for i, r := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteString(cur.Thousand)
		}
		b.WriteRune(r)
	}
	if fraction != "" {
		b.WriteString(cur.Decimal)
		b.WriteString(fraction)
	}

	s := strings.Replace(cur.Template, "1", b.String(), 1)
	s = strings.Replace(s, "$", cur.Grapheme, 1)
	if v.IsNegative() {
		s = "-" + s
	}
	return s
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
