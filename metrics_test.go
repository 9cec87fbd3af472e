package cfodash

import "testing"

func TestAggregate(t *testing.T) {
	entries := []Entry{
		entry("Ricavi operativi", 100000),
		entry("Ricavi operativi", 20000), // same bucket accumulates
		entry("Costi variabili", 20000),
		entry("Costi fissi", 10000),
		entry("Costi commerciali", 5000),
		entry("Costi del personale", 50000),
		entry("Costi generali", 4000),
		entry("Ammortamenti", 3000),
		entry("Proventi/Oneri finanziari", -1000),
		entry("Imposte sul reddito", 2000),
	}
	m := Aggregate(entries, DefaultPolicy())

	checks := []struct {
		name string
		got  Money
		want Money
	}{
		{"Revenue", m.Revenue, EUR(120000)},
		{"VariableCosts", m.VariableCosts, EUR(20000)},
		{"FixedCosts", m.FixedCosts, EUR(10000)},
		{"CommercialCosts", m.CommercialCosts, EUR(5000)},
		{"PersonnelCosts", m.PersonnelCosts, EUR(50000)},
		{"OverheadCosts", m.OverheadCosts, EUR(4000)},
		{"Depreciation", m.Depreciation, EUR(3000)},
		{"FinancialResult", m.FinancialResult, EUR(-1000)},
		{"Taxes", m.Taxes, EUR(2000)},
	}
	for _, c := range checks {
		if !c.got.Equal(c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if got, want := m.OperatingCosts(), EUR(89000); !got.Equal(want) {
		t.Errorf("OperatingCosts() = %v, want %v", got, want)
	}
}

func TestAggregate_Empty(t *testing.T) {
	m := Aggregate(nil, DefaultPolicy())
	for name, v := range map[string]Money{
		"Revenue":        m.Revenue,
		"VariableCosts":  m.VariableCosts,
		"Taxes":          m.Taxes,
		"OperatingCosts": m.OperatingCosts(),
	} {
		if !v.IsZero() {
			t.Errorf("%s = %v on empty set, want zero", name, v)
		}
	}
}

func TestAggregate_UnclassifiedFolding(t *testing.T) {
	entries := []Entry{
		entry("Ricavi operativi", 100),
		entry("NON CLASSIFICATO", 40),
	}

	folded := Aggregate(entries, Policy{FoldUnclassified: true})
	if got, want := folded.Revenue, EUR(140); !got.Equal(want) {
		t.Errorf("folded Revenue = %v, want %v", got, want)
	}

	strict := Aggregate(entries, Policy{FoldUnclassified: false})
	if got, want := strict.Revenue, EUR(100); !got.Equal(want) {
		t.Errorf("strict Revenue = %v, want %v", got, want)
	}
	if got, want := strict.OperatingCosts(), EUR(0); !got.Equal(want) {
		t.Errorf("strict OperatingCosts() = %v, unclassified must contribute to no total", got)
	}
}

// Only the explicit "NON CLASSIFICATO" marker is a folding candidate. A
// label matching no rule at all contributes to no total, whatever the
// policy says.
func TestAggregate_NoMatchContributesNothing(t *testing.T) {
	entries := []Entry{
		entry("Ricavi operativi", 100000),
		entry("Spese bancarie", 5000),
	}
	for _, p := range []Policy{{FoldUnclassified: true}, {FoldUnclassified: false}} {
		m := Aggregate(entries, p)
		if got, want := m.Revenue, EUR(100000); !got.Equal(want) {
			t.Errorf("fold=%v: Revenue = %v, want %v (no-match label must not be folded)", p.FoldUnclassified, got, want)
		}
		if got, want := m.OperatingCosts(), EUR(0); !got.Equal(want) {
			t.Errorf("fold=%v: OperatingCosts() = %v, want %v", p.FoldUnclassified, got, want)
		}
	}
}

func TestLedger_Filter(t *testing.T) {
	e1 := entry("Ricavi operativi", 100)
	e1.Year, e1.Period = "2023", "Q1"
	e2 := entry("Ricavi operativi", 200)
	e2.Year, e2.Period = "2024", "Q1"
	e3 := entry("Ricavi operativi", 400)
	e3.Year, e3.Period = "2024", "Q2"
	l := NewLedger(e1, e2, e3)

	cases := []struct {
		year, period string
		want         Money
	}{
		{All, All, EUR(700)},
		{"2024", All, EUR(600)},
		{All, "Q1", EUR(300)},
		{"2024", "Q2", EUR(400)},
		{"2025", All, EUR(0)},
	}
	for _, c := range cases {
		m := l.Metrics(c.year, c.period, DefaultPolicy())
		if !m.Revenue.Equal(c.want) {
			t.Errorf("Metrics(%q, %q) revenue = %v, want %v", c.year, c.period, m.Revenue, c.want)
		}
	}
}

func TestLedger_YearsAndPeriods(t *testing.T) {
	e1 := entry("Ricavi operativi", 1)
	e1.Year, e1.Period = "2024", "Q2"
	e2 := entry("Costi fissi", 1)
	e2.Year, e2.Period = "2023", "Q1"
	e3 := entry("Costi fissi", 1)
	e3.Year, e3.Period = "2024", "Q1"
	l := NewLedger(e1, e2, e3)

	years := l.Years()
	if len(years) != 2 || years[0] != "2023" || years[1] != "2024" {
		t.Errorf("Years() = %v, want [2023 2024]", years)
	}
	// first appearance order, not sorted
	periods := l.Periods()
	if len(periods) != 2 || periods[0] != "Q2" || periods[1] != "Q1" {
		t.Errorf("Periods() = %v, want [Q2 Q1]", periods)
	}
}

func TestLedger_Trend(t *testing.T) {
	e1 := entry("Ricavi operativi", 1000)
	e1.Period = "Q1"
	e2 := entry("Costi fissi", 300)
	e2.Period = "Q1"
	e3 := entry("Imposte", 50)
	e3.Period = "Q2"
	e4 := entry("NON CLASSIFICATO", 10)
	e4.Period = "Q2"
	l := NewLedger(e1, e2, e3, e4)

	points := l.Trend(All, All, DefaultPolicy())
	if len(points) != 2 {
		t.Fatalf("Trend() returned %d points, want 2", len(points))
	}
	if points[0].Period != "Q1" || points[1].Period != "Q2" {
		t.Errorf("Trend() order = [%s %s], want [Q1 Q2]", points[0].Period, points[1].Period)
	}
	if !points[0].Revenue.Equal(EUR(1000)) || !points[0].Costs.Equal(EUR(300)) {
		t.Errorf("Q1 = %v/%v, want 1000/300", points[0].Revenue, points[0].Costs)
	}
	// taxes count as costs in the trend, folded unclassified as revenue
	if !points[1].Revenue.Equal(EUR(10)) || !points[1].Costs.Equal(EUR(50)) {
		t.Errorf("Q2 = %v/%v, want 10/50", points[1].Revenue, points[1].Costs)
	}
}

// In the trend a label matching no rule counts with the costs, never as
// revenue.
func TestLedger_TrendNoMatchIsCost(t *testing.T) {
	e1 := entry("Ricavi operativi", 1000)
	e2 := entry("Spese bancarie", 80)
	l := NewLedger(e1, e2)

	points := l.Trend(All, All, DefaultPolicy())
	if len(points) != 1 {
		t.Fatalf("Trend() returned %d points, want 1", len(points))
	}
	if !points[0].Revenue.Equal(EUR(1000)) || !points[0].Costs.Equal(EUR(80)) {
		t.Errorf("point = %v/%v, want 1000/80", points[0].Revenue, points[0].Costs)
	}
}
