package cfodash

// Deltas are the what-if scenario knobs: percentage changes applied to
// revenue and the three steerable cost blocks. Commercial and overhead
// costs, depreciation, the financial result and taxes are held constant:
// they are not levers a simulation session plays with.
type Deltas struct {
	Revenue        float64
	VariableCosts  float64
	FixedCosts     float64
	PersonnelCosts float64
}

// MaxDelta bounds every knob to [-MaxDelta, +MaxDelta] percent.
const MaxDelta = 50.0

// Clamp returns the deltas with every knob forced into the allowed range.
func (d Deltas) Clamp() Deltas {
	d.Revenue = clamp(d.Revenue)
	d.VariableCosts = clamp(d.VariableCosts)
	d.FixedCosts = clamp(d.FixedCosts)
	d.PersonnelCosts = clamp(d.PersonnelCosts)
	return d
}

func clamp(v float64) float64 {
	if v < -MaxDelta {
		return -MaxDelta
	}
	if v > MaxDelta {
		return MaxDelta
	}
	return v
}

// IsZero reports whether the scenario leaves the baseline untouched.
func (d Deltas) IsZero() bool {
	return d == Deltas{}
}

// Simulate applies the deltas multiplicatively to the baseline totals and
// re-runs the KPI chain on the perturbed copy. The baseline is never
// mutated, and all-zero deltas reproduce the baseline KPIs exactly.
func Simulate(m BaseMetrics, d Deltas, in Inputs) *KPI {
	d = d.Clamp()
	m.Revenue = m.Revenue.Scale(1 + d.Revenue/100)
	m.VariableCosts = m.VariableCosts.Scale(1 + d.VariableCosts/100)
	m.FixedCosts = m.FixedCosts.Scale(1 + d.FixedCosts/100)
	m.PersonnelCosts = m.PersonnelCosts.Scale(1 + d.PersonnelCosts/100)
	return NewKPI(m, in)
}
