package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"autobattle/config"
	"autobattle/engine"
	"autobattle/experiments"
	"autobattle/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: autobattle <command> [flags]

commands:
  play     run one match and print its narration
  series   run a batch of silent matches and report win rates
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return errors.New("missing command")
	}

	switch args[0] {
	case "play":
		opts, err := parsePlay(flag.NewFlagSet("play", flag.ContinueOnError), args[1:])
		if err != nil {
			return err
		}
		return play(opts, out)
	case "series":
		opts, err := parseSeries(flag.NewFlagSet("series", flag.ContinueOnError), args[1:])
		if err != nil {
			return err
		}
		return series(opts, out)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	}
	return fmt.Errorf("unknown command %q", args[0])
}

// matchFlags are shared by both commands. Flags win over the environment, which wins
// over the config file.
type matchFlags struct {
	configPath     string
	verbose        bool
	preset         string
	formation      string
	units          int
	rngSpread      int
	turnLimit      int
	reinforceEvery int
	armyCap        int
	seed           uint32
}

func (f *matchFlags) register(fs *flag.FlagSet) {
	d := game.DefaultConfig()
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	fs.StringVar(&f.preset, "preset", string(d.Preset), "board preset (compact, offset, large)")
	fs.StringVar(&f.formation, "formation", string(d.Formation), "initial formation (clustered, line, wedge)")
	fs.IntVar(&f.units, "units", d.InitialUnits, "initial units per faction (1-40)")
	fs.IntVar(&f.rngSpread, "rng", d.RNGSpread, "random combat bonus spread (0-100)")
	fs.IntVar(&f.turnLimit, "limit", d.TurnLimit, "turn limit")
	fs.IntVar(&f.reinforceEvery, "reinforce", d.ReinforceEvery, "reinforcement interval in turns (0 = off)")
	fs.IntVar(&f.armyCap, "cap", d.ArmyCap, "army size above which no reinforcements arrive")
	fs.Func("seed", "random seed (0-4294967295); unset draws a fresh one", f.parseSeed)
}

// parseSeed rejects values that do not fit the 32-bit seed space.
func (f *matchFlags) parseSeed(s string) error {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return fmt.Errorf("invalid seed %q: %w", s, err)
	}
	f.seed = uint32(v)
	return nil
}

func (f *matchFlags) resolve(fs *flag.FlagSet) (game.Config, error) {
	cfg := game.DefaultConfig()
	if f.configPath != "" {
		loaded, err := config.LoadFile(f.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	var err error
	fs.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "preset":
			cfg.Preset, err = game.ParsePreset(f.preset)
		case "formation":
			cfg.Formation, err = game.ParseFormation(f.formation)
		case "units":
			cfg.InitialUnits = f.units
		case "rng":
			cfg.RNGSpread = f.rngSpread
		case "limit":
			cfg.TurnLimit = f.turnLimit
		case "reinforce":
			cfg.ReinforceEvery = f.reinforceEvery
		case "cap":
			cfg.ArmyCap = f.armyCap
		case "seed":
			cfg = cfg.WithSeed(f.seed)
		}
	})
	return cfg, err
}

type playOptions struct {
	cfg   game.Config
	quiet bool
	json  bool
}

func parsePlay(fs *flag.FlagSet, args []string) (playOptions, error) {
	var f matchFlags
	var opts playOptions
	f.register(fs)
	fs.BoolVar(&opts.quiet, "quiet", false, "do not print the narration")
	fs.BoolVar(&opts.json, "json", false, "print the final snapshot as JSON")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	setupLogging(f.verbose)

	cfg, err := f.resolve(fs)
	if err != nil {
		return opts, err
	}
	opts.cfg = cfg
	return opts, nil
}

func play(opts playOptions, out io.Writer) error {
	var options []engine.Option
	if opts.quiet {
		options = append(options, engine.WithSilent())
	} else {
		options = append(options, engine.WithObserver(func(u engine.Update) {
			for _, e := range u.Events {
				fmt.Fprintln(out, e)
			}
		}))
	}

	e := engine.New(opts.cfg, options...)
	winner, metric := e.Run()
	log.Debug().Msgf("match %d took %s, %d deaths, %d spawned", metric.Seed, metric.Duration, metric.Deaths, metric.Spawned)

	if opts.json {
		b, err := game.MarshalPretty(e.Match.Snapshot())
		if err != nil {
			return fmt.Errorf("print snapshot: %w", err)
		}
		fmt.Fprintln(out, string(b))
		return nil
	}
	fmt.Fprintf(out, "winner: %s after %d turns (seed %d)\n", winner, e.Match.Turn, e.Match.Seed)
	return nil
}

type seriesOptions struct {
	experiments.SeriesOptions
	outDir string
}

func parseSeries(fs *flag.FlagSet, args []string) (seriesOptions, error) {
	var f matchFlags
	var opts seriesOptions
	f.register(fs)
	fs.IntVar(&opts.Games, "games", 5, "number of matches")
	fs.IntVar(&opts.Workers, "workers", 1, "matches played concurrently")
	fs.StringVar(&opts.outDir, "out", "", "directory for CSV and config export (empty = no export)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	setupLogging(f.verbose)

	cfg, err := f.resolve(fs)
	if err != nil {
		return opts, err
	}
	opts.Config = cfg
	return opts, nil
}

func series(opts seriesOptions, out io.Writer) error {
	result := experiments.RunSeries(opts.SeriesOptions)
	for _, match := range result.Matches {
		fmt.Fprintln(out, match)
	}
	fmt.Fprintln(out, result)

	if opts.outDir != "" {
		dir, err := experiments.Export(result, opts.outDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "results written to %s\n", dir)
	}
	return nil
}

func setupLogging(verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
