package cryptodash

import (
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// t0 is the fake time at which test views are mounted.
var t0 = time.Date(2035, time.January, 2, 15, 4, 5, 0, time.UTC)

// fakeClock is a Clock advancing by step at each call.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

// fakeTicker is a Ticker driven by the test.
type fakeTicker struct {
	c       chan time.Time
	stopped bool
}

func (t *fakeTicker) C() <-chan time.Time { return t.c }
func (t *fakeTicker) Stop()               { t.stopped = true }

// decimalEqual let cmp compare decimals by value.
var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

// records returns the raw form of assets, for comparisons.
func records(assets []Asset) []AssetRecord {
	rs := make([]AssetRecord, len(assets))
	for i, a := range assets {
		rs[i] = a.Record()
	}
	return rs
}
