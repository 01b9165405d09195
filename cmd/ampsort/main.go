// Command ampsort sorts and searches line-oriented files with the amp-sort
// engines.
//
//	ampsort sort [-algorithm quick|merge] [-kind K] [-reverse] [-verify] [-stats] [-metrics] [files...]
//	ampsort search -kind K -value V [file]
//
// Settings come from -config (YAML), then AMPSORT_* and LOG_* environment
// variables, then the subcommand's flags.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/amp-labs/amp-sort/shutdown"
	"github.com/google/subcommands"
)

var configPath = flag.String("config", "", "path to a YAML config file") //nolint:gochecknoglobals

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(newSortCmd(os.Stdin, os.Stdout, os.Stderr), "")
	subcommands.Register(newSearchCmd(os.Stdin, os.Stdout), "")

	flag.Parse()

	ctx, stop := shutdown.WithSignals(context.Background())
	status := subcommands.Execute(ctx)

	stop()
	os.Exit(int(status))
}
