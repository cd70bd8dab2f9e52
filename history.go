package cryptodash

import (
	"math/rand/v2"
	"slices"
)

// HistoryDays is the length of the generated price history.
const HistoryDays = 30

// Series is a daily price series of one symbol.
type Series struct {
	Symbol string
	Points []float64
}

func (s Series) Min() float64  { return slices.Min(s.Points) }
func (s Series) Max() float64  { return slices.Max(s.Points) }
func (s Series) Last() float64 { return s.Points[len(s.Points)-1] }

var historyRanges = []struct {
	symbol       string
	base, spread float64
}{
	{"BTC", 65000, 5000},
	{"ETH", 3200, 500},
	{"SOL", 130, 30},
}

// GeneratePriceHistory returns HistoryDays daily prices for the charted
// symbols, each uniformly drawn in [base, base+spread).
func GeneratePriceHistory(rng *rand.Rand) []Series {
	history := make([]Series, 0, len(historyRanges))
	for _, r := range historyRanges {
		s := Series{Symbol: r.symbol, Points: make([]float64, HistoryDays)}
		for i := range s.Points {
			s.Points[i] = r.base + rng.Float64()*r.spread
		}
		history = append(history, s)
	}
	return history
}
