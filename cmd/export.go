package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	dashboardFlags
	catalog bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "print the dashboard as JSON" }
func (*exportCmd) Usage() string {
	return `cryptodash export [-select <id>] [-catalog]

  Prints the formatted dashboard as JSON, or the asset catalog with -catalog.
  The catalog output can be used as a catalog file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.dashboardFlags.SetFlags(f)
	f.BoolVar(&c.catalog, "catalog", false, "Print the asset catalog instead of the dashboard.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var v any = view.Snapshot()
	if c.catalog {
		v = view.Market().Catalog
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
