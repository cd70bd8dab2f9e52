package cryptodash

import "github.com/shopspring/decimal"

// Percent is a percentage expressed in points: 3.45 means 3.45%.
type Percent struct {
	value decimal.Decimal
}

// P returns a Percent of the given value in points.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

func (p Percent) Decimal() decimal.Decimal { return p.value }
func (p Percent) IsNegative() bool         { return p.value.IsNegative() }
func (p Percent) IsPositive() bool         { return p.value.IsPositive() }

// String returns the percentage with two fraction digits and no explicit sign.
func (p Percent) String() string { return p.value.StringFixed(2) + "%" }

// SignedString returns the percentage with two fraction digits, prefixed with
// '+' when it is not negative.
func (p Percent) SignedString() string { return signedPercent(p.value) }
