package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/config"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sorting"
	"github.com/google/subcommands"
	"golang.org/x/text/language"
)

type searchCmd struct {
	settingFlags

	value  string
	stdin  io.Reader
	stdout io.Writer
}

func newSearchCmd(stdin io.Reader, stdout io.Writer) *searchCmd {
	return &searchCmd{stdin: stdin, stdout: stdout}
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "find a value in a file" }
func (*searchCmd) Usage() string {
	return "search -kind K -value V [file]\n" +
		"  Sorts the file, then prints the index of V or the index it would be\n" +
		"  inserted at.\n"
}

func (c *searchCmd) SetFlags(fs *flag.FlagSet) {
	c.register(fs, "kind", "locale", "reverse")
	fs.StringVar(&c.value, "value", "", "the value to search for")
}

func (c *searchCmd) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if fs.NArg() > 1 {
		return subcommands.ExitUsageError
	}

	ctx, cfg, status := c.setup(ctx, fs)
	if status != subcommands.ExitSuccess {
		return status
	}

	name := "-"
	if fs.NArg() == 1 {
		name = fs.Arg(0)
	}

	if err := c.run(ctx, cfg, name, c.value); err != nil {
		logger.Get(ctx).Error("search failed", "error", err)

		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

func (c *searchCmd) run(ctx context.Context, cfg config.Config, name, value string) error {
	k, err := config.ParseKind(cfg.Kind)
	if err != nil {
		return err
	}

	switch k {
	case config.KindInt64:
		return runSearch(ctx, c, cfg, int64Kind(), name, value)
	case config.KindFloat64:
		return runSearch(ctx, c, cfg, float64Kind(), name, value)
	case config.KindString:
		return runSearch(ctx, c, cfg, stringKind(string(k), compare.Ordered[string]), name, value)
	case config.KindNatural:
		return runSearch(ctx, c, cfg, stringKind(string(k), compare.NaturalStrings), name, value)
	case config.KindCollated:
		tag, err := language.Parse(cfg.Locale)
		if err != nil {
			return err
		}

		return runSearch(ctx, c, cfg, stringKind(string(k), compare.Collated(tag)), name, value)
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownKind, k)
	}
}

func runSearch[T any](ctx context.Context, c *searchCmd, cfg config.Config, k kind[T], name, raw string) error {
	target, err := k.parse(k.clean(raw))
	if err != nil {
		return fmt.Errorf("value %q: %w", raw, err)
	}

	items, err := readFile(c.stdin, name, k)
	if err != nil {
		return err
	}

	values := make([]T, len(items))
	for i, it := range items {
		values[i] = it.value
	}

	cmp := k.cmp
	if cfg.Reverse {
		cmp = cmp.Reverse()
	}

	sorter := sorting.New(cmp, sorting.WithName(k.name), sorting.WithLogger(logger.Get(ctx)))

	if err := sorter.MergeSort(values, 0, len(values)); err != nil {
		return err
	}

	result, err := sorter.BinarySearch(values, target, 0, len(values)-1)
	if err != nil {
		return err
	}

	index, found := sorting.InsertionPoint(result)
	if found {
		_, err = fmt.Fprintf(c.stdout, "found %s at index %d\n", k.format(target), index)
	} else {
		_, err = fmt.Fprintf(c.stdout, "%s not found, insertion point %d\n", k.format(target), index)
	}

	return err
}
