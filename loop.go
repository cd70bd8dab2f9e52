package cryptodash

import (
	"context"
	"errors"
	"time"
)

// Ticker is a periodic scheduling capability.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

// NewTicker returns a Ticker backed by a time.Ticker firing every d.
func NewTicker(d time.Duration) Ticker { return timeTicker{time.NewTicker(d)} }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// Loop is the single event loop driving a View. Ticks and selections are
// applied one at a time, in arrival order.
type Loop struct {
	View       *View
	Ticker     Ticker
	Selections <-chan string   // asset ids, may be nil
	Render     func(*Snapshot) // called after each state change, may be nil
	OnError    func(error)     // called with rejected selections, may be nil
}

// Run renders the view, then applies events until ctx is done. The ticker is
// stopped before Run returns.
func (l *Loop) Run(ctx context.Context) error {
	if l.View == nil || l.Ticker == nil {
		return errors.New("loop needs a view and a ticker")
	}
	defer l.Ticker.Stop()

	l.render()
	selections := l.Selections
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.Ticker.C():
			l.View.Tick()
			l.render()
		case id, ok := <-selections:
			if !ok {
				selections = nil
				continue
			}
			if err := l.View.Select(id); err != nil {
				if l.OnError != nil {
					l.OnError(err)
				}
				continue
			}
			l.render()
		}
	}
}

func (l *Loop) render() {
	if l.Render != nil {
		l.Render(l.View.Snapshot())
	}
}
