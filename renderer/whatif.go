package renderer

import (
	"bytes"
	"fmt"

	"github.com/mdac/cfodash"
)

// WhatIf renders the simulated scenario next to the baseline.
func WhatIf(base, sim *cfodash.KPI, d cfodash.Deltas) string {
	var b bytes.Buffer

	fmt.Fprintf(&b, "# What-If Scenario\n\n")
	fmt.Fprintf(&b, "*Deltas: revenue %+.0f%%, variable costs %+.0f%%, fixed costs %+.0f%%, personnel %+.0f%%*\n\n",
		d.Revenue, d.VariableCosts, d.FixedCosts, d.PersonnelCosts)

	fmt.Fprintln(&b, "| | Baseline | Simulated |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	row := func(label string, b1, s1 fmt.Stringer) {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", label, b1, s1)
	}
	row("Revenue", base.Base.Revenue, sim.Base.Revenue)
	row("Operating costs", base.OperatingCosts, sim.OperatingCosts)
	row("Contribution margin", base.ContributionMargin, sim.ContributionMargin)
	row("EBITDA", base.EBITDA, sim.EBITDA)
	row("EBITDA %", base.EBITDAMargin, sim.EBITDAMargin)
	row("EBIT", base.EBIT, sim.EBIT)
	row("Net income", base.NetIncome, sim.NetIncome)

	return b.String()
}
