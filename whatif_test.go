package cfodash

import "testing"

// All-zero deltas must reproduce the baseline KPIs exactly.
func TestSimulate_Idempotence(t *testing.T) {
	m := Aggregate(scenarioA(), DefaultPolicy())
	in := Inputs{InvestedCapital: EUR(150000)}

	base := NewKPI(m, in)
	sim := Simulate(m, Deltas{}, in)

	moneyChecks := []struct {
		name      string
		got, want Money
	}{
		{"Revenue", sim.Base.Revenue, base.Base.Revenue},
		{"OperatingCosts", sim.OperatingCosts, base.OperatingCosts},
		{"ContributionMargin", sim.ContributionMargin, base.ContributionMargin},
		{"EBITDA", sim.EBITDA, base.EBITDA},
		{"EBIT", sim.EBIT, base.EBIT},
		{"PretaxResult", sim.PretaxResult, base.PretaxResult},
		{"NetIncome", sim.NetIncome, base.NetIncome},
	}
	for _, c := range moneyChecks {
		if !c.got.Equal(c.want) {
			t.Errorf("%s = %v, want baseline %v", c.name, c.got, c.want)
		}
	}
	if !sim.EBITDAMargin.Equal(base.EBITDAMargin) {
		t.Errorf("EBITDAMargin = %v, want baseline %v", sim.EBITDAMargin, base.EBITDAMargin)
	}
	simROS, _ := sim.ROS()
	baseROS, _ := base.ROS()
	if !simROS.Equal(baseROS) {
		t.Errorf("ROS = %v, want baseline %v", simROS, baseROS)
	}
}

func TestSimulate(t *testing.T) {
	m := Aggregate(scenarioA(), DefaultPolicy())

	// +10% revenue, -10% personnel, +20% variable, fixed untouched.
	d := Deltas{Revenue: 10, PersonnelCosts: -10, VariableCosts: 20}
	sim := Simulate(m, d, Inputs{})

	if got, want := sim.Base.Revenue, EUR(110000); !got.Equal(want) {
		t.Errorf("simulated revenue = %v, want %v", got, want)
	}
	if got, want := sim.Base.PersonnelCosts, EUR(45000); !got.Equal(want) {
		t.Errorf("simulated personnel = %v, want %v", got, want)
	}
	if got, want := sim.Base.VariableCosts, EUR(24000); !got.Equal(want) {
		t.Errorf("simulated variable = %v, want %v", got, want)
	}
	// EBITDA = 110000 - (24000 + 45000) = 41000
	if got, want := sim.EBITDA, EUR(41000); !got.Equal(want) {
		t.Errorf("simulated EBITDA = %v, want %v", got, want)
	}
}

// The baseline totals are never mutated by a simulation.
func TestSimulate_BaselineUntouched(t *testing.T) {
	m := Aggregate(scenarioA(), DefaultPolicy())
	Simulate(m, Deltas{Revenue: 50, FixedCosts: -50}, Inputs{})
	if !m.Revenue.Equal(EUR(100000)) {
		t.Errorf("baseline revenue mutated to %v", m.Revenue)
	}
}

// Held-constant buckets pass through whatever the deltas are.
func TestSimulate_HeldConstant(t *testing.T) {
	entries := append(scenarioA(),
		entry("Costi commerciali", 5000),
		entry("Costi generali", 3000),
		entry("Ammortamenti", 2000),
		entry("Proventi/Oneri finanziari", -500),
		entry("Imposte", 1000),
	)
	m := Aggregate(entries, DefaultPolicy())
	sim := Simulate(m, Deltas{Revenue: 25, VariableCosts: 25, FixedCosts: 25, PersonnelCosts: 25}, Inputs{})

	if !sim.Base.CommercialCosts.Equal(EUR(5000)) ||
		!sim.Base.OverheadCosts.Equal(EUR(3000)) ||
		!sim.Base.Depreciation.Equal(EUR(2000)) ||
		!sim.Base.FinancialResult.Equal(EUR(-500)) ||
		!sim.Base.Taxes.Equal(EUR(1000)) {
		t.Error("a held-constant bucket was perturbed by the simulation")
	}
}

func TestDeltas_Clamp(t *testing.T) {
	d := Deltas{Revenue: 120, VariableCosts: -120, FixedCosts: 50, PersonnelCosts: -50}.Clamp()
	want := Deltas{Revenue: 50, VariableCosts: -50, FixedCosts: 50, PersonnelCosts: -50}
	if d != want {
		t.Errorf("Clamp() = %+v, want %+v", d, want)
	}
}
