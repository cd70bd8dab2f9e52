package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptodash/renderer"
	"github.com/google/subcommands"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	dashboardFlags
	raw bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the market dashboard" }
func (*showCmd) Usage() string {
	return `cryptodash show [-select <id>] [-tab <tab>] [-raw]

  Displays the market dashboard once.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	c.dashboardFlags.SetFlags(f)
	f.BoolVar(&c.raw, "raw", false, "Print the markdown source instead of rendering it.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.Dashboard(view.Snapshot(), renderer.Options{Tab: c.parsed}), c.raw)
	return subcommands.ExitSuccess
}
