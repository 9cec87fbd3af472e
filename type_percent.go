package cfodash

import "fmt"

// Percent is a ratio expressed in percentage points (30 means 30%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String renders with the one-decimal precision used across the dashboard.
func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.1f%%", float64(p))
	if res == "+0.0%" {
		return "-"
	}
	return res
}

// Points renders the magnitude without the percent sign, for "N points
// above target" phrasing.
func (p Percent) Points() string {
	v := float64(p)
	if v < 0 {
		v = -v
	}
	return fmt.Sprintf("%.1f", v)
}
