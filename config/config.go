// Package config loads ampsort settings from a YAML file and the
// environment. Command line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-sort/sorting"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned for an element kind ampsort cannot parse.
var ErrUnknownKind = errors.New("unknown element kind")

// Kind is the element type input lines are parsed into.
type Kind string

const (
	KindInt64    Kind = "int64"
	KindFloat64  Kind = "float64"
	KindString   Kind = "string"
	KindNatural  Kind = "natural"
	KindCollated Kind = "collated"
)

// Kinds lists every supported kind.
var Kinds = []Kind{KindInt64, KindFloat64, KindString, KindNatural, KindCollated} //nolint:gochecknoglobals

// ParseKind parses a kind name case-insensitively.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Config holds every ampsort setting.
//
// Example YAML file:
//
//	algorithm: quick
//	kind: natural
//	reverse: false
//	verify: true
//	workers: 4
//	log:
//	  level: debug
//	  json: true
type Config struct {
	Algorithm string `yaml:"algorithm"`
	Kind      string `yaml:"kind"`
	Locale    string `yaml:"locale"`
	Reverse   bool   `yaml:"reverse"`
	Verify    bool   `yaml:"verify"`
	Stats     bool   `yaml:"stats"`
	Metrics   bool   `yaml:"metrics"`
	Workers   int    `yaml:"workers"`
	Log       Log    `yaml:"log"`
}

// Log configures the process logger.
type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Algorithm: string(sorting.Merge),
		Kind:      string(KindString),
		Locale:    "und",
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(bts, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Environment variables read by ApplyEnv.
const (
	EnvAlgorithm = "AMPSORT_ALGORITHM"
	EnvKind      = "AMPSORT_KIND"
	EnvLocale    = "AMPSORT_LOCALE"
	EnvLogLevel  = "LOG_LEVEL"
	EnvReverse   = "AMPSORT_REVERSE"
	EnvVerify    = "AMPSORT_VERIFY"
	EnvStats     = "AMPSORT_STATS"
	EnvLogJSON   = "LOG_JSON"
	EnvWorkers   = "AMPSORT_WORKERS"
)

// ApplyEnv overrides cfg with any of the Env* variables that are set. Every
// malformed value is reported, in the order the Env* constants are declared.
func (cfg *Config) ApplyEnv(lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	strs := []struct {
		key string
		dst *string
	}{
		{EnvAlgorithm, &cfg.Algorithm},
		{EnvKind, &cfg.Kind},
		{EnvLocale, &cfg.Locale},
		{EnvLogLevel, &cfg.Log.Level},
	}

	for _, s := range strs {
		if v, ok := lookup(s.key); ok {
			*s.dst = v
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvReverse, &cfg.Reverse},
		{EnvVerify, &cfg.Verify},
		{EnvStats, &cfg.Stats},
		{EnvLogJSON, &cfg.Log.JSON},
	}

	var errs []error

	for _, b := range bools {
		v, ok := lookup(b.key)
		if !ok {
			continue
		}

		parsed, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.key, err))

			continue
		}

		*b.dst = parsed
	}

	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvWorkers, err))
		} else {
			cfg.Workers = n
		}
	}

	return errors.Join(errs...)
}

// Validate checks every field and returns all problems at once.
func (cfg *Config) Validate() error {
	var errs []error

	if _, err := sorting.ParseAlgorithm(cfg.Algorithm); err != nil {
		errs = append(errs, err)
	}

	if _, err := ParseKind(cfg.Kind); err != nil {
		errs = append(errs, err)
	}

	if _, err := language.Parse(cfg.Locale); err != nil {
		errs = append(errs, fmt.Errorf("locale %q: %w", cfg.Locale, err))
	}

	if _, err := cfg.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// LogLevel parses Log.Level, e.g. "debug" or "warn+2".
func (cfg *Config) LogLevel() (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}

	return level, nil
}
