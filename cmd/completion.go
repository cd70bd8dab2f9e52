package cmd

import (
	"flag"
	"time"

	"github.com/etnz/cryptodash"
	"github.com/etnz/cryptodash/docs"
	"github.com/etnz/cryptodash/renderer"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the registered subcommands.
// Asset flags complete with the built-in catalog identifiers.
func Completion(c *subcommands.Commander) *complete.Command {
	ids := cryptodash.DefaultCatalog(cryptodash.NewRand(1)).IDs()
	topics, _ := docs.GetAllTopics()

	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{"config": predict.Files("*")},
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = flagPredictor(f, ids)
		})
		if cmd.Name() == "topic" {
			sub.Args = predict.Set(topics)
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func flagPredictor(f *flag.Flag, ids []string) complete.Predictor {
	switch f.Name {
	case "select":
		return predict.Set(ids)
	case "tab":
		return predict.Set(renderer.Tabs())
	case "interval":
		return predict.Set{time.Second.String(), (5 * time.Second).String(), time.Minute.String()}
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}
