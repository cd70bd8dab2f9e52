package cryptodash

import (
	"time"

	"github.com/shopspring/decimal"
)

// Title is the dashboard brand.
const Title = "CRYPTOFUTURE"

const barWidth = 20

// Snapshot is the display-ready projection of a View. Every field is already
// formatted.
type Snapshot struct {
	Session    string          `json:"session"`
	Title      string          `json:"title"`
	Time       time.Time       `json:"time"`
	Clock      string          `json:"clock"`
	Zone       string          `json:"zone"`
	Selected   AssetView       `json:"selected"`
	Markets    []AssetView     `json:"markets"`
	Volumes    []VolumeView    `json:"volumes"`
	Shares     []ShareView     `json:"shares"`
	Indicators []IndicatorView `json:"indicators"`
	History    []SeriesView    `json:"history"`
	News       []NewsView      `json:"news"`
}

// AssetView is an asset with its formatted values.
type AssetView struct {
	ID        string `json:"id"`
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Pair      string `json:"pair"`
	Price     string `json:"price"`
	Change    string `json:"change"`
	Volume    string `json:"volume"`
	MarketCap string `json:"marketCap"`
	Share     string `json:"share"`
	Trend     Trend  `json:"trend"`
	Sparkline string `json:"sparkline"`
	Selected  bool   `json:"selected"`
}

// VolumeView is a bar of the volume chart, in billions.
type VolumeView struct {
	Symbol   string `json:"symbol"`
	Billions string `json:"billions"`
	Bar      string `json:"bar"`
}

// ShareView is a line of the market dominance widget.
type ShareView struct {
	Symbol string `json:"symbol"`
	Share  string `json:"share"`
	Bar    string `json:"bar"`
}

type IndicatorView struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Status string `json:"status"`
	Trend  Trend  `json:"trend"`
}

// SeriesView summarizes a price history series.
type SeriesView struct {
	Symbol    string `json:"symbol"`
	Sparkline string `json:"sparkline"`
	Min       string `json:"min"`
	Max       string `json:"max"`
	Last      string `json:"last"`
}

type NewsView struct {
	ID       int    `json:"id"`
	Headline string `json:"headline"`
	Category string `json:"category"`
	Age      string `json:"age"`
}

// Snapshot returns the formatted state of v.
func (v *View) Snapshot() *Snapshot {
	m := v.market
	now := v.now.In(v.loc)
	s := &Snapshot{
		Session: v.id.String(),
		Title:   Title,
		Time:    now,
		Clock:   now.Format(time.TimeOnly),
		Zone:    v.zone,
	}

	assets := m.Catalog.Assets()
	total := m.Catalog.TotalMarketCap().Decimal()
	maxVolume := decimal.Zero
	for _, a := range assets {
		maxVolume = decimal.Max(maxVolume, a.volume)
	}
	for _, a := range assets {
		share, frac := Placeholder, 0.0
		if d, err := marketShare(a.cap, total); err == nil {
			share = d.StringFixed(1) + "%"
			frac = d.InexactFloat64() / 100
		}
		av := v.assetView(a, share)
		if av.Selected {
			s.Selected = av
		}
		s.Markets = append(s.Markets, av)
		s.Volumes = append(s.Volumes, VolumeView{
			Symbol:   a.symbol,
			Billions: a.volume.Div(decimal.New(1, 9)).StringFixed(2),
			Bar:      bar(ratio(a.volume, maxVolume), barWidth),
		})
		s.Shares = append(s.Shares, ShareView{Symbol: a.symbol, Share: share, Bar: bar(frac, barWidth)})
	}

	for _, ind := range m.Indicators {
		s.Indicators = append(s.Indicators, IndicatorView{
			Name:   ind.Name,
			Value:  ind.Value.String(),
			Status: ind.Status,
			Trend:  ind.Trend,
		})
	}
	for _, h := range m.History {
		if len(h.Points) == 0 {
			continue
		}
		s.History = append(s.History, SeriesView{
			Symbol:    h.Symbol,
			Sparkline: Glyphs(h.Points),
			Min:       FormatPrice(h.Min()),
			Max:       FormatPrice(h.Max()),
			Last:      FormatPrice(h.Last()),
		})
	}
	for _, n := range m.News {
		s.News = append(s.News, NewsView{ID: n.id, Headline: n.headline, Category: n.category, Age: n.AgeLabel()})
	}
	return s
}

func (v *View) assetView(a Asset, share string) AssetView {
	return AssetView{
		ID:        a.id,
		Symbol:    a.symbol,
		Name:      a.name,
		Pair:      a.Pair(),
		Price:     a.Price().String(),
		Change:    a.Change().SignedString(),
		Volume:    a.VolumeString(),
		MarketCap: a.MarketCap().String(),
		Share:     share,
		Trend:     a.Trend(),
		Sparkline: Glyphs(a.spark),
		Selected:  a.id == v.selected.id,
	}
}

func ratio(a, b decimal.Decimal) float64 {
	if b.IsZero() {
		return 0
	}
	return a.Div(b).InexactFloat64()
}
