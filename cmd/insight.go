package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mdac/cfodash"
)

// insightCmd holds the flags for the 'insight' subcommand.
type insightCmd struct {
	filterFlags
	inputFlags
}

func (*insightCmd) Name() string     { return "insight" }
func (*insightCmd) Synopsis() string { return "narrate the cost structure in plain language" }
func (*insightCmd) Usage() string {
	return `cfo insight [-y <year>] [-p <period>]

  Read the derived KPIs and print a short prose summary of what stands
  out: margin pressure, personnel weight, variable-cost incidence, or a
  negative bottom line.

Usage Examples:
# Narrate the first quarter of 2024.
$ cfo insight -y 2024 -p Q1
`
}

func (c *insightCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	c.inputFlags.SetFlags(f)
}

func (c *insightCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(ledger.Filter(c.year, c.period)) == 0 {
		printMarkdown("*No ledger rows in scope. Import a ledger first (see `cfo topic format`).*\n")
		return subcommands.ExitSuccess
	}
	m := ledger.Metrics(c.year, c.period, cfodash.DefaultPolicy())
	k := cfodash.NewKPI(m, c.Inputs())
	printMarkdown(cfodash.Narrate(k) + "\n")
	return subcommands.ExitSuccess
}
