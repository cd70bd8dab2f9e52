package cryptodash

import "math/rand/v2"

// Market gathers the static data presented by a View.
type Market struct {
	Catalog    *Catalog
	News       []NewsItem
	Indicators []Indicator
	History    []Series
}

// NewMarket returns the built-in market, with its synthetic series drawn
// from rng.
func NewMarket(rng *rand.Rand) *Market {
	return &Market{
		Catalog:    DefaultCatalog(rng),
		News:       DefaultNews(),
		Indicators: DefaultIndicators(),
		History:    GeneratePriceHistory(rng),
	}
}
