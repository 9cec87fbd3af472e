package renderer

import (
	"bytes"
	"fmt"

	"github.com/mdac/cfodash"
)

// Report renders the KPI overview and the reclassified P&L statement.
func Report(k *cfodash.KPI, year, period string) string {
	var b bytes.Buffer

	fmt.Fprintf(&b, "# KPI Report\n\n")
	scope(&b, year, period)

	fmt.Fprintln(&b, "| KPI | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total revenue | %s |\n", k.Base.Revenue)
	fmt.Fprintf(&b, "| Operating costs | %s |\n", k.OperatingCosts)
	fmt.Fprintf(&b, "| Contribution margin | %s |\n", k.ContributionMargin)
	fmt.Fprintf(&b, "| Contribution margin %% | %s |\n", k.ContributionMarginPct())
	fmt.Fprintf(&b, "| **EBITDA** | **%s** |\n", k.EBITDA)
	fmt.Fprintf(&b, "| **EBITDA %%** | **%s** |\n", k.EBITDAMargin)
	fmt.Fprintf(&b, "| EBIT | %s |\n", k.EBIT)
	fmt.Fprintf(&b, "| Net income | %s |\n", k.NetIncome)
	fmt.Fprintf(&b, "| Variable-cost incidence | %s |\n", k.VariableIncidence)
	fmt.Fprintf(&b, "| Fixed-cost incidence | %s |\n", k.FixedIncidence)
	fmt.Fprintf(&b, "| Personnel cost / revenue | %s |\n", k.PersonnelShare())
	fmt.Fprintf(&b, "| ROI | %s |\n", roi(k))
	fmt.Fprintf(&b, "| ROS | %s |\n", ros(k))
	fmt.Fprintf(&b, "| ARPU | %s |\n", arpu(k))
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "## Reclassified P&L\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Operating revenue | %s |\n", k.Base.Revenue)
	fmt.Fprintf(&b, "| Direct variable costs | %s |\n", k.Base.VariableCosts)
	fmt.Fprintf(&b, "| **Contribution margin** | **%s** |\n", k.ContributionMargin)
	fmt.Fprintf(&b, "| Fixed + overhead + commercial costs | %s |\n",
		k.Base.FixedCosts.Add(k.Base.OverheadCosts).Add(k.Base.CommercialCosts))
	fmt.Fprintf(&b, "| Personnel cost | %s |\n", k.Base.PersonnelCosts)
	fmt.Fprintf(&b, "| **EBITDA** | **%s** |\n", k.EBITDA)
	fmt.Fprintf(&b, "| Depreciation and amortization | %s |\n", k.Base.Depreciation)
	fmt.Fprintf(&b, "| EBIT | %s |\n", k.EBIT)
	fmt.Fprintf(&b, "| Financial income/expense | %s |\n", k.Base.FinancialResult)
	fmt.Fprintf(&b, "| Pretax result | %s |\n", k.PretaxResult)
	fmt.Fprintf(&b, "| Income taxes | %s |\n", k.Base.Taxes)
	fmt.Fprintf(&b, "| **Net income** | **%s** |\n", k.NetIncome)

	return b.String()
}

// The three optional ratios render a hint instead of a misleading zero
// when their input is missing.

func roi(k *cfodash.KPI) string {
	if v, ok := k.ROI(); ok {
		return v.String()
	}
	return "n/a (set invested capital)"
}

func ros(k *cfodash.KPI) string {
	if v, ok := k.ROS(); ok {
		return v.String()
	}
	return "n/a"
}

func arpu(k *cfodash.KPI) string {
	if v, ok := k.ARPU(); ok {
		return v.String()
	}
	return "n/a (set client count)"
}
