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

// whatifCmd holds the flags for the 'whatif' subcommand.
type whatifCmd struct {
	filterFlags
	inputFlags
	deltas cfodash.Deltas
}

func (*whatifCmd) Name() string     { return "whatif" }
func (*whatifCmd) Synopsis() string { return "simulate percentage deltas on the baseline totals" }
func (*whatifCmd) Usage() string {
	return `cfo whatif [-revenue <pct>] [-variable <pct>] [-fixed <pct>] [-personnel <pct>]

  Apply percentage deltas (each within -50..+50) to revenue, variable
  costs, fixed costs and personnel cost, re-run the KPI chain on the
  perturbed totals and show the scenario next to the baseline.

Usage Examples:
# 10% more revenue with 5% less personnel cost.
$ cfo whatif -revenue 10 -personnel -5
`
}

func (c *whatifCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	c.inputFlags.SetFlags(f)
	f.Float64Var(&c.deltas.Revenue, "revenue", 0, "Revenue delta in percent")
	f.Float64Var(&c.deltas.VariableCosts, "variable", 0, "Variable costs delta in percent")
	f.Float64Var(&c.deltas.FixedCosts, "fixed", 0, "Fixed costs delta in percent")
	f.Float64Var(&c.deltas.PersonnelCosts, "personnel", 0, "Personnel cost delta in percent")
}

func (c *whatifCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.deltas != c.deltas.Clamp() {
		fmt.Fprintf(os.Stderr, "Warning: deltas are limited to ±%.0f%%, clamping.\n", cfodash.MaxDelta)
	}

	m := ledger.Metrics(c.year, c.period, cfodash.DefaultPolicy())
	in := c.Inputs()
	base := cfodash.NewKPI(m, in)
	sim := cfodash.Simulate(m, c.deltas, in)
	printMarkdown(renderer.WhatIf(base, sim, c.deltas.Clamp()))
	return subcommands.ExitSuccess
}
