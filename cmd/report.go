package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mdac/cfodash"
	"github.com/mdac/cfodash/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	filterFlags
	inputFlags
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compute the KPI report and the reclassified P&L" }
func (*reportCmd) Usage() string {
	return `cfo report [-y <year>] [-p <period>] [-capital <amount>] [-clients <n>]

  Compute all KPIs over the selected slice of the ledger and render the
  reclassified profit and loss statement.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	c.inputFlags.SetFlags(f)
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	m := ledger.Metrics(c.year, c.period, cfodash.DefaultPolicy())
	k := cfodash.NewKPI(m, c.Inputs())
	printMarkdown(renderer.Report(k, c.year, c.period))
	return subcommands.ExitSuccess
}
