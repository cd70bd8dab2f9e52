package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
)

type assetsCmd struct {
	dashboardFlags
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the assets of the catalog" }
func (*assetsCmd) Usage() string {
	return `cryptodash assets

  Lists the identifiers, symbols and names of the catalog assets.
`
}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, a := range view.Market().Catalog.Assets() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID(), a.Symbol(), a.Name(), a.Price())
	}
	w.Flush()
	return subcommands.ExitSuccess
}
