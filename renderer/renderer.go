// Package renderer turns computed dashboard values into markdown, ready
// for a terminal markdown renderer or any other markdown consumer.
package renderer

import (
	"fmt"
	"io"
)

// scope renders the filter line shown under every report title.
func scope(w io.Writer, year, period string) {
	y, p := year, period
	if y == "" || y == "ALL" {
		y = "all years"
	}
	if p == "" || p == "ALL" {
		p = "all periods"
	}
	fmt.Fprintf(w, "*Scope: %s, %s*\n\n", y, p)
}
