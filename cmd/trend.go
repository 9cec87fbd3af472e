package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/mdac/cfodash"
	"github.com/mdac/cfodash/renderer"
)

// trendCmd holds the flags for the 'trend' subcommand.
type trendCmd struct {
	filterFlags
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "show revenue and total costs per period" }
func (*trendCmd) Usage() string {
	return `cfo trend [-y <year>] [-p <period>]

  Break the filtered ledger down per period and print revenue, total
  costs and the resulting balance for each one.

Usage Examples:
# Full-year trend for 2024.
$ cfo trend -y 2024
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	points := ledger.Trend(c.year, c.period, cfodash.DefaultPolicy())
	if len(points) == 0 && ledger.Len() > 0 {
		fmt.Fprintf(os.Stderr, "No data for -y %s -p %s. Ledger covers years %s and periods %s.\n",
			c.year, c.period,
			strings.Join(ledger.Years(), ", "), strings.Join(ledger.Periods(), ", "))
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Trend(points, c.year, c.period))
	return subcommands.ExitSuccess
}
