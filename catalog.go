package cryptodash

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownAsset is returned when an asset identifier is not in the catalog.
	ErrUnknownAsset = errors.New("unknown asset identifier")
	// ErrZeroMarketCap is returned when computing a share of an empty market.
	ErrZeroMarketCap = errors.New("total market capitalization is zero")
	// ErrEmptyCatalog is returned when building a catalog without assets.
	ErrEmptyCatalog = errors.New("catalog has no assets")
)

// Catalog is the ordered, immutable set of assets presented by the dashboard.
type Catalog struct {
	assets []Asset
	index  map[string]int
}

// NewCatalog returns a catalog of assets, in that order. Identifiers must be
// unique.
func NewCatalog(assets ...Asset) (*Catalog, error) {
	if len(assets) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		assets: slices.Clone(assets),
		index:  make(map[string]int, len(assets)),
	}
	for i, a := range c.assets {
		if a.IsZero() {
			return nil, fmt.Errorf("asset #%d is not initialized", i)
		}
		if _, exists := c.index[a.id]; exists {
			return nil, fmt.Errorf("duplicate asset identifier %q", a.id)
		}
		c.index[a.id] = i
	}
	return c, nil
}

// defaultAssets are the catalog records, sparklines excepted, with the base
// price of their random walk.
var defaultAssets = []struct {
	AssetRecord
	base float64
}{
	{AssetRecord{ID: "btc", Symbol: "BTC", Name: "Bitcoin", Price: dec("67234.12"), Change24h: dec("3.45"), Volume: dec("28500000000"), MarketCap: dec("1320000000000")}, 67234},
	{AssetRecord{ID: "eth", Symbol: "ETH", Name: "Ethereum", Price: dec("3456.78"), Change24h: dec("-1.23"), Volume: dec("15200000000"), MarketCap: dec("415000000000")}, 3456},
	{AssetRecord{ID: "bnb", Symbol: "BNB", Name: "BNB", Price: dec("598.45"), Change24h: dec("5.67"), Volume: dec("2100000000"), MarketCap: dec("89000000000")}, 598},
	{AssetRecord{ID: "sol", Symbol: "SOL", Name: "Solana", Price: dec("142.89"), Change24h: dec("8.92"), Volume: dec("3800000000"), MarketCap: dec("63000000000")}, 142},
	{AssetRecord{ID: "ada", Symbol: "ADA", Name: "Cardano", Price: dec("0.4523"), Change24h: dec("-2.45"), Volume: dec("520000000"), MarketCap: dec("15900000000")}, 0.45},
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DefaultCatalog returns the built-in catalog, with sparklines drawn from rng.
func DefaultCatalog(rng *rand.Rand) *Catalog {
	assets := make([]Asset, 0, len(defaultAssets))
	for _, d := range defaultAssets {
		r := d.AssetRecord
		r.Sparkline = GenerateSparkline(d.base, rng)
		a, err := NewAsset(r)
		if err != nil {
			panic(err) // static data
		}
		assets = append(assets, a)
	}
	c, err := NewCatalog(assets...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of assets.
func (c *Catalog) Len() int { return len(c.assets) }

// Assets returns the assets in catalog order.
func (c *Catalog) Assets() []Asset { return slices.Clone(c.assets) }

// First returns the first asset of the catalog.
func (c *Catalog) First() Asset { return c.assets[0] }

// IDs returns the asset identifiers in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.assets))
	for i, a := range c.assets {
		ids[i] = a.id
	}
	return ids
}

// Lookup returns the asset identified by id.
func (c *Catalog) Lookup(id string) (Asset, error) {
	i, ok := c.index[id]
	if !ok {
		return Asset{}, fmt.Errorf("%w: %q", ErrUnknownAsset, id)
	}
	return c.assets[i], nil
}

// TotalMarketCap returns the sum of all asset market capitalizations.
func (c *Catalog) TotalMarketCap() Money {
	total := decimal.Zero
	for _, a := range c.assets {
		total = total.Add(a.cap)
	}
	return M(total, USD)
}

// MarketShare returns 100 * cap / total for the asset id, rounded to one
// fraction digit.
func (c *Catalog) MarketShare(id string) (Percent, error) {
	a, err := c.Lookup(id)
	if err != nil {
		return Percent{}, err
	}
	share, err := marketShare(a.cap, c.TotalMarketCap().Decimal())
	if err != nil {
		return Percent{}, err
	}
	return P(share), nil
}

// MarshalJSON encodes the catalog as {"assets": [...]}, the document layout
// read by DecodeCatalog with DefaultCatalogPath.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("assets", c.assets)
	return w.MarshalJSON()
}
