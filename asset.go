package cryptodash

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Trend is the direction shown next to a value.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// Arrow returns the glyph displayed for t.
func (t Trend) Arrow() string {
	switch t {
	case TrendUp:
		return "▲"
	case TrendDown:
		return "▼"
	default:
		return "●"
	}
}

// AssetRecord is the raw form of an asset, as found in catalog documents.
type AssetRecord struct {
	ID        string          `json:"id"`
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Change24h decimal.Decimal `json:"change24h"`
	Volume    decimal.Decimal `json:"volume"`
	MarketCap decimal.Decimal `json:"marketCap"`
	Sparkline []float64       `json:"sparkline,omitempty"`
}

// Asset is a tradable cryptocurrency instrument. Its zero value is not valid,
// use NewAsset. Assets are immutable.
type Asset struct {
	id     string
	symbol string
	name   string
	price  decimal.Decimal
	change decimal.Decimal
	volume decimal.Decimal
	cap    decimal.Decimal
	spark  []float64
}

// NewAsset validates r and returns the corresponding Asset.
func NewAsset(r AssetRecord) (Asset, error) {
	var errs []error
	if r.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if r.Symbol == "" {
		errs = append(errs, errors.New("missing symbol"))
	}
	if r.Price.IsNegative() {
		errs = append(errs, fmt.Errorf("negative price %s", r.Price))
	}
	if r.Volume.IsNegative() {
		errs = append(errs, fmt.Errorf("negative volume %s", r.Volume))
	}
	if r.MarketCap.IsNegative() {
		errs = append(errs, fmt.Errorf("negative market cap %s", r.MarketCap))
	}
	for i, s := range r.Sparkline {
		if !finite(s) {
			errs = append(errs, fmt.Errorf("sparkline sample #%d is not finite", i))
			break
		}
	}
	if err := errors.Join(errs...); err != nil {
		return Asset{}, fmt.Errorf("invalid asset %q: %w", r.ID, err)
	}
	name := r.Name
	if name == "" {
		name = r.Symbol
	}
	return Asset{
		id:     r.ID,
		symbol: r.Symbol,
		name:   name,
		price:  r.Price,
		change: r.Change24h,
		volume: r.Volume,
		cap:    r.MarketCap,
		spark:  slices.Clone(r.Sparkline),
	}, nil
}

func (a Asset) ID() string           { return a.id }
func (a Asset) Symbol() string       { return a.symbol }
func (a Asset) Name() string         { return a.name }
func (a Asset) Price() Money         { return M(a.price, USD) }
func (a Asset) Change() Percent      { return P(a.change) }
func (a Asset) Volume() Money        { return M(a.volume, USD) }
func (a Asset) MarketCap() Money     { return M(a.cap, USD) }
func (a Asset) Pair() string         { return a.symbol + "/" + USD }
func (a Asset) IsZero() bool         { return a.id == "" }
func (a Asset) Sparkline() []float64 { return slices.Clone(a.spark) }

// Trend returns the direction of the 24h change, TrendNeutral when it is
// zero.
func (a Asset) Trend() Trend {
	switch a.change.Sign() {
	case 1:
		return TrendUp
	case -1:
		return TrendDown
	default:
		return TrendNeutral
	}
}

// VolumeString returns the volume formatted with a unit suffix.
func (a Asset) VolumeString() string { return formatVolume(a.volume) }

// Record returns a copy of the raw form of a.
func (a Asset) Record() AssetRecord {
	return AssetRecord{
		ID:        a.id,
		Symbol:    a.symbol,
		Name:      a.name,
		Price:     a.price,
		Change24h: a.change,
		Volume:    a.volume,
		MarketCap: a.cap,
		Sparkline: slices.Clone(a.spark),
	}
}

func (a Asset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.id)
	w.Append("symbol", a.symbol)
	w.Append("name", a.name)
	w.Append("price", a.price)
	w.Append("change24h", a.change)
	w.Append("volume", a.volume)
	w.Append("marketCap", a.cap)
	w.Optional("sparkline", a.spark)
	return w.MarshalJSON()
}
