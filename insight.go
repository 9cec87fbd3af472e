package cfodash

import "strings"

// Narrate produces the CFO commentary: a set of independent advisory
// checks over the computed KPIs, each contributing one fixed sentence.
// When nothing fires, a single neutral sentence is returned. The checks
// are purely advisory and deliberately decoupled from the alert tiers.
func Narrate(k *KPI) string {
	var parts []string

	if k.EBITDAMargin < 10 {
		parts = append(parts, "EBITDA margin is below 10%, operating margins are too compressed. Review the mix of pricing, variable costs and fixed structure now.")
	} else if k.EBITDAMargin > 20 {
		parts = append(parts, "EBITDA margin is above 20%, excellent profitability. It makes sense to consider investments in growth, technology or client acquisition.")
	}

	if k.Base.PersonnelCosts.GreaterThan(k.Base.Revenue.Scale(0.4)) {
		parts = append(parts, "Personnel cost exceeds 40% of revenue: look into resource saturation, automation and on-demand external staff.")
	}

	if k.VariableIncidence > 50 {
		parts = append(parts, "Variable-cost incidence is high: work on supplier contracts, service standardization and a higher average value per client.")
	}

	if k.NetIncome.IsNegative() {
		parts = append(parts, "Net income is negative: first priority is bringing EBITDA back into the green, then acting on financial charges and taxation.")
	}

	if len(parts) == 0 {
		parts = append(parts, "The cost structure is balanced overall. Focus can shift to selective revenue growth and a better client mix.")
	}

	return strings.Join(parts, " ")
}
