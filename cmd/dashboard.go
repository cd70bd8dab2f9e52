package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/cryptodash"
	"github.com/etnz/cryptodash/renderer"
	"github.com/rs/zerolog"
)

// dashboardFlags are the flags shared by the commands mounting a view.
type dashboardFlags struct {
	selectID string
	tab      string
	seed     int64

	// set by open()
	cfg    *Config
	log    zerolog.Logger
	parsed renderer.Tab
}

func (d *dashboardFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&d.selectID, "select", "", "Identifier of the asset to select. Defaults to the first one.")
	f.StringVar(&d.tab, "tab", "", "Tab to display: all, markets, analytics or news. Defaults to all.")
	f.Int64Var(&d.seed, "seed", 0, "Seed of the synthetic data, overrides the configuration.")
}

// open loads the configuration and mounts a view on the configured market.
func (d *dashboardFlags) open() (*cryptodash.View, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	d.cfg = cfg
	d.log = setupLogging(cfg.Log)

	if d.parsed, err = renderer.ParseTab(d.tab); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if d.seed != 0 {
		seed = d.seed
	}
	rng := cryptodash.NewRand(seed)
	market := cryptodash.NewMarket(rng)
	if cfg.Catalog.File != "" {
		market.Catalog, err = cryptodash.LoadCatalog(cfg.Catalog.File, cfg.Catalog.Path, rng)
		if err != nil {
			return nil, err
		}
		d.log.Info().Str("file", cfg.Catalog.File).Int("assets", market.Catalog.Len()).Msg("catalog loaded")
	}

	loc, err := cfg.Clock.Location()
	if err != nil {
		return nil, err
	}
	view := cryptodash.NewView(market,
		cryptodash.WithLogger(d.log),
		cryptodash.WithLocation(loc, cfg.Clock.Label),
	)
	if d.selectID != "" {
		if err := view.Select(d.selectID); err != nil {
			return nil, fmt.Errorf("%w, use one of %v", err, market.Catalog.IDs())
		}
	}
	return view, nil
}
