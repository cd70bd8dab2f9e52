package cmd

import (
	"flag"
	"slices"
	"testing"

	"github.com/google/subcommands"
)

func TestCompletion(t *testing.T) {
	c := subcommands.NewCommander(flag.NewFlagSet("cryptodash", flag.ContinueOnError), "cryptodash")
	Register(c)
	root := Completion(c)

	for _, name := range []string{"show", "watch", "export", "assets", "topic"} {
		if _, ok := root.Sub[name]; !ok {
			t.Errorf("missing completion for subcommand %q", name)
		}
	}

	testCases := []struct {
		cmd, flag, want string
	}{
		{"show", "select", "ada"},
		{"watch", "select", "btc"},
		{"show", "tab", "analytics"},
		{"export", "select", "eth"},
	}
	for _, tc := range testCases {
		p, ok := root.Sub[tc.cmd].Flags[tc.flag]
		if !ok || p == nil {
			t.Errorf("%s: no predictor for -%s", tc.cmd, tc.flag)
			continue
		}
		if got := p.Predict(""); !slices.Contains(got, tc.want) {
			t.Errorf("%s -%s predicts %q, want it to contain %q", tc.cmd, tc.flag, got, tc.want)
		}
	}

	if got := root.Sub["topic"].Args.Predict(""); !slices.Contains(got, "formats") {
		t.Errorf("topic args predict %q, want it to contain %q", got, "formats")
	}
}
