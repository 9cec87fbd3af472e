package renderer

import (
	"bytes"
	"fmt"

	"github.com/mdac/cfodash"
)

// Trend renders the per-period revenue versus cost table.
func Trend(points []cfodash.TrendPoint, year, period string) string {
	var b bytes.Buffer

	fmt.Fprintf(&b, "# Revenue / Cost Trend\n\n")
	scope(&b, year, period)

	if len(points) == 0 {
		fmt.Fprintln(&b, "No data in the selection.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Period | Revenue | Costs | Balance |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, p := range points {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			p.Period, p.Revenue, p.Costs, p.Revenue.Sub(p.Costs).SignedString())
	}

	return b.String()
}
