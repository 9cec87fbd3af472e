package cfodash

import "testing"

func TestNewKPI_ScenarioA(t *testing.T) {
	m := Aggregate(scenarioA(), DefaultPolicy())
	k := NewKPI(m, Inputs{})

	moneyChecks := []struct {
		name string
		got  Money
		want Money
	}{
		{"OperatingCosts", k.OperatingCosts, EUR(70000)},
		{"ContributionMargin", k.ContributionMargin, EUR(80000)},
		{"EBITDA", k.EBITDA, EUR(30000)},
		{"EBIT", k.EBIT, EUR(30000)},
		{"PretaxResult", k.PretaxResult, EUR(30000)},
		{"NetIncome", k.NetIncome, EUR(30000)},
	}
	for _, c := range moneyChecks {
		if !c.got.Equal(c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if !k.EBITDAMargin.Equal(30) {
		t.Errorf("EBITDAMargin = %v, want 30%%", k.EBITDAMargin)
	}
	if !k.VariableIncidence.Equal(20) {
		t.Errorf("VariableIncidence = %v, want 20%%", k.VariableIncidence)
	}
	if !k.PersonnelShare().Equal(50) {
		t.Errorf("PersonnelShare() = %v, want 50%%", k.PersonnelShare())
	}
	ros, ok := k.ROS()
	if !ok || !ros.Equal(30) {
		t.Errorf("ROS() = %v, %v, want 30%%, true", ros, ok)
	}
}

// EBITDA = revenue - (variable+fixed+commercial+personnel+overhead),
// exactly, for any entry set.
func TestNewKPI_EBITDAIdentity(t *testing.T) {
	entries := []Entry{
		entry("Ricavi operativi", 123456.78),
		entry("Costi variabili", 23456.78),
		entry("Costi fissi", 11111.11),
		entry("Costi commerciali", 2222.22),
		entry("Costi del personale", 65432.10),
		entry("Costi generali", 999.99),
		entry("Ammortamenti", 1234.56),
	}
	m := Aggregate(entries, DefaultPolicy())
	k := NewKPI(m, Inputs{})

	want := m.Revenue.
		Sub(m.VariableCosts).
		Sub(m.FixedCosts).
		Sub(m.CommercialCosts).
		Sub(m.PersonnelCosts).
		Sub(m.OverheadCosts)
	if !k.EBITDA.Equal(want) {
		t.Errorf("EBITDA = %v, want %v", k.EBITDA, want)
	}
	if !k.EBIT.Equal(k.EBITDA.Sub(m.Depreciation)) {
		t.Errorf("EBIT = %v, want EBITDA - depreciation", k.EBIT)
	}
}

func TestNewKPI_OptionalRatios(t *testing.T) {
	m := Aggregate(scenarioA(), DefaultPolicy())

	t.Run("without inputs", func(t *testing.T) {
		k := NewKPI(m, Inputs{})
		if _, ok := k.ROI(); ok {
			t.Error("ROI() defined without invested capital")
		}
		if _, ok := k.ARPU(); ok {
			t.Error("ARPU() defined without a client count")
		}
	})

	t.Run("with inputs", func(t *testing.T) {
		k := NewKPI(m, Inputs{
			InvestedCapital: ParseAmount("150.000,00"),
			Clients:         ParseCount("100"),
		})
		roi, ok := k.ROI()
		if !ok || !roi.Equal(20) {
			t.Errorf("ROI() = %v, %v, want 20%%, true", roi, ok)
		}
		arpu, ok := k.ARPU()
		if !ok || !arpu.Equal(EUR(1000)) {
			t.Errorf("ARPU() = %v, %v, want %v, true", arpu, ok, EUR(1000))
		}
	})

	t.Run("negative capital leaves ROI undefined", func(t *testing.T) {
		k := NewKPI(m, Inputs{InvestedCapital: EUR(-10)})
		if _, ok := k.ROI(); ok {
			t.Error("ROI() defined for negative invested capital")
		}
	})
}

// Scenario C: no entries at all. Totals are zero, incidence ratios are a
// computed zero, ROS/ROI/ARPU are undefined, never coerced to zero.
func TestNewKPI_EmptyLedger(t *testing.T) {
	m := Aggregate(nil, DefaultPolicy())
	k := NewKPI(m, Inputs{})

	if !k.EBITDA.IsZero() || !k.NetIncome.IsZero() {
		t.Errorf("EBITDA = %v, NetIncome = %v, want zero", k.EBITDA, k.NetIncome)
	}
	if !k.EBITDAMargin.Equal(0) || !k.VariableIncidence.Equal(0) || !k.FixedIncidence.Equal(0) {
		t.Error("incidence ratios must be a computed 0 without revenue")
	}
	if _, ok := k.ROS(); ok {
		t.Error("ROS() defined without revenue")
	}
	if _, ok := k.ROI(); ok {
		t.Error("ROI() defined without capital")
	}
	if _, ok := k.ARPU(); ok {
		t.Error("ARPU() defined without clients")
	}
}
