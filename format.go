package cryptodash

import (
	"math"

	"github.com/shopspring/decimal"
)

// Placeholder is rendered instead of a value that cannot be formatted.
const Placeholder = "n/a"

// volumeUnits are the suffixes used to scale volumes, in ascending order.
var volumeUnits = []struct {
	scale  decimal.Decimal
	suffix string
}{
	{decimal.New(1, 6), "M"},
	{decimal.New(1, 9), "B"},
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// FormatPrice renders a price in USD with exactly two fraction digits,
// e.g. "$67,234.12".
func FormatPrice(v float64) string {
	if !finite(v) {
		return Placeholder
	}
	return M(v, USD).String()
}

// FormatVolume renders a volume scaled with a "B" (>= 1e9) or "M" (>= 1e6)
// suffix, two fraction digits, e.g. "$28.50B" or "$520.00M".
func FormatVolume(v float64) string {
	if !finite(v) {
		return Placeholder
	}
	return formatVolume(decimal.NewFromFloat(v))
}

// formatVolume picks the largest unit not above the raw value, so the
// scaled value may round up to 1000.00.
func formatVolume(d decimal.Decimal) string {
	scaled, suffix := d, ""
	for _, u := range volumeUnits {
		if d.GreaterThanOrEqual(u.scale) {
			scaled, suffix = d.Div(u.scale), u.suffix
		}
	}
	return "$" + scaled.StringFixed(2) + suffix
}

// FormatPercent renders a signed percentage with two fraction digits. Non
// negative values get an explicit '+', e.g. "+3.45%" and "-1.23%".
func FormatPercent(v float64) string {
	if !finite(v) {
		return Placeholder
	}
	if v < 0 {
		return "-" + decimal.NewFromFloat(-v).StringFixed(2) + "%"
	}
	return signedPercent(decimal.NewFromFloat(v))
}

func signedPercent(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + d.Neg().StringFixed(2) + "%"
	}
	return "+" + d.StringFixed(2) + "%"
}

// FormatShare renders 100 * cap / total rounded to one fraction digit,
// e.g. "69.4%".
func FormatShare(cap, total float64) string {
	if !finite(cap) || !finite(total) {
		return Placeholder
	}
	share, err := marketShare(decimal.NewFromFloat(cap), decimal.NewFromFloat(total))
	if err != nil {
		return Placeholder
	}
	return share.StringFixed(1) + "%"
}

func marketShare(cap, total decimal.Decimal) (decimal.Decimal, error) {
	if total.IsZero() {
		return decimal.Zero, ErrZeroMarketCap
	}
	return cap.Mul(decimal.NewFromInt(100)).Div(total).Round(1), nil
}
