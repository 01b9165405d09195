package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/amp-sort/batch"
	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/config"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/hashing"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sorting"
	"github.com/amp-labs/amp-sort/verify"
	"github.com/google/subcommands"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"golang.org/x/text/language"
)

type sortCmd struct {
	settingFlags

	stdin          io.Reader
	stdout, stderr io.Writer
}

func newSortCmd(stdin io.Reader, stdout, stderr io.Writer) *sortCmd {
	return &sortCmd{stdin: stdin, stdout: stdout, stderr: stderr}
}

func (*sortCmd) Name() string     { return "sort" }
func (*sortCmd) Synopsis() string { return "sort the lines of each file and print them" }
func (*sortCmd) Usage() string {
	return "sort [-algorithm quick|merge] [-kind K] [-reverse] [-verify] [-stats] [-metrics] [files...]\n" +
		"  With no files, or a file named -, reads stdin. Files are sorted concurrently\n" +
		"  and printed in argument order.\n"
}

func (c *sortCmd) SetFlags(fs *flag.FlagSet) {
	c.register(fs, "algorithm", "kind", "locale", "reverse", "verify", "stats", "metrics", "workers")
}

func (c *sortCmd) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	ctx, cfg, status := c.setup(ctx, fs)
	if status != subcommands.ExitSuccess {
		return status
	}

	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	if err := c.run(ctx, cfg, files); err != nil {
		logger.Get(ctx).Error("sort failed", "error", err)

		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

// run dispatches on the configured kind. cfg must be valid.
func (c *sortCmd) run(ctx context.Context, cfg config.Config, files []string) error {
	k, err := config.ParseKind(cfg.Kind)
	if err != nil {
		return err
	}

	switch k {
	case config.KindInt64:
		return runSort(ctx, c, cfg, int64Kind(), files)
	case config.KindFloat64:
		return runSort(ctx, c, cfg, float64Kind(), files)
	case config.KindString:
		return runSort(ctx, c, cfg, stringKind(string(k), compare.Ordered[string]), files)
	case config.KindNatural:
		return runSort(ctx, c, cfg, stringKind(string(k), compare.NaturalStrings), files)
	case config.KindCollated:
		tag, err := language.Parse(cfg.Locale)
		if err != nil {
			return err
		}

		return runSort(ctx, c, cfg, stringKind(string(k), compare.Collated(tag)), files)
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownKind, k)
	}
}

func runSort[T any](ctx context.Context, c *sortCmd, cfg config.Config, k kind[T], files []string) error {
	alg, err := sorting.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}

	cmp := k.cmp
	if cfg.Reverse {
		cmp = cmp.Reverse()
	}

	byValue := compare.By(func(it item[T]) T { return it.value }, cmp)

	opts := []sorting.Option{sorting.WithName(k.name), sorting.WithLogger(logger.Get(ctx))}
	if cfg.Stats {
		opts = append(opts, sorting.WithComparisonCounting())
	}

	sorter := sorting.New(byValue, opts...)

	jobs := make([]batch.Job[item[T]], len(files))
	inputs := make([][]item[T], len(files))

	for i, name := range files {
		items, err := readFile(c.stdin, name, k)
		if err != nil {
			return err
		}

		if cfg.Verify {
			inputs[i] = append([]item[T](nil), items...)
		}

		jobs[i] = batch.Job[item[T]]{Name: name, Data: items, Algorithm: alg}
	}

	results := batch.Run(ctx, sorter, jobs, batch.WithWorkers(cfg.Workers))

	var errs errors.Collection

	for i, res := range results {
		if res.Err != nil {
			errs.Add(fmt.Errorf("%s: %w", res.Name, res.Err))

			continue
		}

		if cfg.Verify {
			if err := verifyItems(inputs[i], res.Data, byValue, k.hash, alg); err != nil {
				errs.Add(fmt.Errorf("%s: %w", res.Name, err))

				continue
			}
		}

		if err := writeItems(c.stdout, res.Data, k); err != nil {
			return err
		}

		if cfg.Stats {
			fmt.Fprintf(c.stderr, "%s: %d elements sorted with %s in %s\n", res.Name, len(res.Data), alg, res.Duration)
		}
	}

	if cfg.Stats {
		fmt.Fprintf(c.stderr, "total comparisons: %d\n", sorter.Comparisons())
	}

	if cfg.Metrics {
		if err := dumpMetrics(c.stderr, prometheus.DefaultGatherer); err != nil {
			errs.Add(err)
		}
	}

	return errs.GetError()
}

func verifyItems[T any](
	before, after []item[T],
	cmp compare.Comparator[item[T]],
	hash hashing.HashFunc[T],
	alg sorting.Algorithm,
) error {
	hashItem := func(it item[T]) uint64 {
		return hash(it.value)*0x9e3779b97f4a7c15 ^ hashing.Number(it.origin)
	}

	var origin func(item[T]) int
	if alg.Stable() {
		origin = func(it item[T]) int { return it.origin }
	}

	return verify.Check(before, after, cmp, hashItem, origin)
}

// dumpMetrics writes the sorting_* families in the Prometheus text format.
func dumpMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "sorting_") {
			continue
		}

		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
