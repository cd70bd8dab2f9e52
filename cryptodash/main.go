package main

import (
	"context"
	"flag"
	"os"
	"path"
	_ "time/tzdata"

	"github.com/etnz/cryptodash/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	// exits when invoked by the shell completion.
	cmd.Completion(commander).Complete("cryptodash")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
