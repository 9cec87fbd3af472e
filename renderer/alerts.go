package renderer

import (
	"bytes"
	"fmt"

	"github.com/mdac/cfodash"
)

// Alerts renders the traffic-light alert sections. Tiers render in
// red, yellow, green order; an empty tier renders nothing.
func Alerts(set cfodash.AlertSet, year, period string) string {
	var b bytes.Buffer

	fmt.Fprintf(&b, "# KPI Alerts\n\n")
	scope(&b, year, period)

	if set.Len() == 0 {
		fmt.Fprintln(&b, "No alert evaluated: the selection holds no monitorable metric.")
		return b.String()
	}

	tier(&b, "🔴 Critical", "Recommended actions", set.Red)
	tier(&b, "🟡 Warning", "Recommended actions", set.Yellow)
	tier(&b, "🟢 Healthy", "Notes", set.Green)

	return b.String()
}

func tier(b *bytes.Buffer, title, actionsLabel string, alerts []cfodash.Alert) {
	if len(alerts) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, a := range alerts {
		fmt.Fprintf(b, "### %s\n\n", a.Title)
		fmt.Fprintf(b, "%s\n\n", a.Subtitle)
		fmt.Fprintf(b, "%s:\n\n", actionsLabel)
		for _, action := range a.Actions {
			fmt.Fprintf(b, "- %s\n", action)
		}
		fmt.Fprintln(b)
	}
}
