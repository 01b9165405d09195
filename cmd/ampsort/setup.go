package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/amp-labs/amp-sort/config"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// settingFlags binds the flags that may override config values.
type settingFlags struct {
	cfg config.Config
}

func (s *settingFlags) register(fs *flag.FlagSet, names ...string) {
	s.cfg = config.Default()

	for _, name := range names {
		switch name {
		case "algorithm":
			fs.StringVar(&s.cfg.Algorithm, name, s.cfg.Algorithm, "sort algorithm: quick or merge")
		case "kind":
			fs.StringVar(&s.cfg.Kind, name, s.cfg.Kind, "element kind: int64, float64, string, natural or collated")
		case "locale":
			fs.StringVar(&s.cfg.Locale, name, s.cfg.Locale, "BCP 47 language tag for the collated kind")
		case "reverse":
			fs.BoolVar(&s.cfg.Reverse, name, s.cfg.Reverse, "sort in descending order")
		case "verify":
			fs.BoolVar(&s.cfg.Verify, name, s.cfg.Verify, "check the output is a sorted permutation of the input")
		case "stats":
			fs.BoolVar(&s.cfg.Stats, name, s.cfg.Stats, "print element counts, comparisons and timings to stderr")
		case "metrics":
			fs.BoolVar(&s.cfg.Metrics, name, s.cfg.Metrics, "dump Prometheus metrics to stderr when done")
		case "workers":
			fs.IntVar(&s.cfg.Workers, name, s.cfg.Workers, "files sorted at the same time (0 means one per CPU)")
		}
	}
}

// resolve layers the config file, the environment and the flags that were
// set explicitly.
func (s *settingFlags) resolve(fs *flag.FlagSet, path string, lookup config.LookupFunc) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "algorithm":
			cfg.Algorithm = s.cfg.Algorithm
		case "kind":
			cfg.Kind = s.cfg.Kind
		case "locale":
			cfg.Locale = s.cfg.Locale
		case "reverse":
			cfg.Reverse = s.cfg.Reverse
		case "verify":
			cfg.Verify = s.cfg.Verify
		case "stats":
			cfg.Stats = s.cfg.Stats
		case "metrics":
			cfg.Metrics = s.cfg.Metrics
		case "workers":
			cfg.Workers = s.cfg.Workers
		}
	})

	return cfg, cfg.Validate()
}

// setup resolves the configuration and configures logging. Every log line
// of the run carries the same run_id.
func (s *settingFlags) setup(ctx context.Context, fs *flag.FlagSet) (context.Context, config.Config, subcommands.ExitStatus) {
	cfg, err := s.resolve(fs, *configPath, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ampsort: %v\n", err)

		return ctx, cfg, subcommands.ExitUsageError
	}

	level, _ := cfg.LogLevel()

	logger.ConfigureLogging("ampsort", logger.WithJSON(cfg.Log.JSON), logger.WithLevel(level))

	ctx = logger.With(ctx, "run_id", uuid.NewString())

	return ctx, cfg, subcommands.ExitSuccess
}
