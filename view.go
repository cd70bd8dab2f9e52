package cryptodash

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultZoneLabel is the label printed next to the clock.
const DefaultZoneLabel = "UTC+3"

// Clock returns the current time.
type Clock func() time.Time

// View holds the dashboard state: the selected asset and the current time.
//
// A View is not safe for concurrent use, it is meant to be owned by a Loop.
type View struct {
	id       uuid.UUID
	market   *Market
	selected Asset
	now      time.Time

	clock Clock
	loc   *time.Location
	zone  string
	log   zerolog.Logger
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithClock replaces time.Now as the source of the current time.
func WithClock(c Clock) ViewOption { return func(v *View) { v.clock = c } }

// WithLogger sets the logger used to trace view events.
func WithLogger(l zerolog.Logger) ViewOption { return func(v *View) { v.log = l } }

// WithLocation sets the time zone of the clock and its display label.
func WithLocation(loc *time.Location, label string) ViewOption {
	return func(v *View) { v.loc, v.zone = loc, label }
}

// NewView mounts a view on m. The first catalog asset is selected.
func NewView(m *Market, opts ...ViewOption) *View {
	v := &View{
		id:       uuid.New(),
		market:   m,
		selected: m.Catalog.First(),
		clock:    time.Now,
		loc:      time.Local,
		zone:     DefaultZoneLabel,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.log = v.log.With().Str("session", v.id.String()).Logger()
	v.now = v.clock()
	return v
}

func (v *View) ID() uuid.UUID            { return v.id }
func (v *View) Market() *Market          { return v.market }
func (v *View) Selected() Asset          { return v.selected }
func (v *View) Now() time.Time           { return v.now }
func (v *View) Location() *time.Location { return v.loc }

// Select sets the selected asset to the catalog entry identified by id.
// An unknown id returns an error wrapping ErrUnknownAsset and the selection
// is left unchanged.
func (v *View) Select(id string) error {
	a, err := v.market.Catalog.Lookup(id)
	if err != nil {
		v.log.Debug().Str("asset", id).Msg("selection rejected")
		return err
	}
	v.selected = a
	v.log.Debug().Str("asset", id).Msg("asset selected")
	return nil
}

// Tick refreshes the current time from the clock. The time never goes
// backwards.
func (v *View) Tick() {
	now := v.clock()
	if now.Before(v.now) {
		v.log.Debug().Time("clock", now).Msg("clock went backwards, ignored")
		return
	}
	v.now = now
	v.log.Trace().Time("now", now).Msg("tick")
}
