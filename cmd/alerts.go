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

// alertsCmd holds the flags for the 'alerts' subcommand.
type alertsCmd struct {
	filterFlags
	inputFlags
}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "evaluate the KPI traffic lights against the targets" }
func (*alertsCmd) Usage() string {
	return `cfo alerts [-y <year>] [-p <period>]

  Evaluate the monitored ratios (personnel cost, EBITDA margin,
  variable-cost incidence, ROS) against the configured targets and list
  the red, yellow and green alerts with their recommended actions.
`
}

func (c *alertsCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	c.inputFlags.SetFlags(f)
}

func (c *alertsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if ledger.Len() == 0 {
		printMarkdown("*The ledger is empty. Import a ledger first (see `cfo topic format`).*\n")
		return subcommands.ExitSuccess
	}

	m := ledger.Metrics(c.year, c.period, cfodash.DefaultPolicy())
	k := cfodash.NewKPI(m, c.Inputs())
	set := cfodash.BuildAlerts(k, DecodeTargets())
	printMarkdown(renderer.Alerts(set, c.year, c.period))
	return subcommands.ExitSuccess
}
