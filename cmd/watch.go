package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/etnz/cryptodash"
	"github.com/etnz/cryptodash/renderer"
	"github.com/google/subcommands"
)

// watchCmd holds the flags for the 'watch' subcommand.
type watchCmd struct {
	dashboardFlags
	interval time.Duration
	raw      bool
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "display the live market dashboard" }
func (*watchCmd) Usage() string {
	return `cryptodash watch [-select <id>] [-tab <tab>] [-interval <duration>]

  Displays the market dashboard and refreshes its clock until interrupted.
  Type an asset id followed by Enter to select it.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	c.dashboardFlags.SetFlags(f)
	f.DurationVar(&c.interval, "interval", 0, "Clock refresh interval, overrides the configuration.")
	f.BoolVar(&c.raw, "raw", false, "Print the markdown source instead of rendering it.")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	interval := c.cfg.Clock.Interval
	if c.interval > 0 {
		interval = c.interval
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := &cryptodash.Loop{
		View:       view,
		Ticker:     cryptodash.NewTicker(interval),
		Selections: readSelections(ctx, os.Stdin),
		Render: func(s *cryptodash.Snapshot) {
			fmt.Print("\033[2J\033[H")
			printMarkdown(renderer.Dashboard(s, renderer.Options{Tab: c.parsed}), c.raw)
		},
		OnError: func(err error) {
			c.log.Warn().Err(err).Msg("selection ignored")
		},
	}
	c.log.Debug().Dur("interval", interval).Str("session", view.ID().String()).Msg("watching")
	if err := loop.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// readSelections sends every non blank line of r. The channel is closed when r
// is exhausted or when ctx is done at the time a line is sent; a read pending on
// r is not interrupted.
func readSelections(ctx context.Context, r io.Reader) <-chan string {
	ids := make(chan string)
	go func() {
		defer close(ids)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			id := strings.TrimSpace(scanner.Text())
			if id == "" {
				continue
			}
			select {
			case ids <- id:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ids
}
