package cryptodash

import "github.com/shopspring/decimal"

// Indicator is a technical indicator widget.
type Indicator struct {
	Name   string
	Value  decimal.Decimal
	Status string
	Trend  Trend
}

// DefaultIndicators returns the static indicator widgets.
func DefaultIndicators() []Indicator {
	return []Indicator{
		{"Quantum RSI", dec("67.8"), "Optimal", TrendUp},
		{"AI MACD", dec("245.6"), "Bullish trend", TrendUp},
		{"Neural MA", dec("66234"), "Support", TrendNeutral},
		{"Blockchain Index", dec("892"), "Stable", TrendUp},
	}
}
