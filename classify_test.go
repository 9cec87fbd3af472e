package cfodash

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		label string
		want  Bucket
	}{
		{"Ricavi operativi", Revenue},
		{"Altri ricavi", Revenue},
		{"Operating revenue", Revenue},
		{"Recurring revenue", Revenue},
		{"Costi variabili", VariableCost},
		{"Variable costs - subcontracting", VariableCost},
		{"Costi fissi", FixedCost},
		{"Fixed costs", FixedCost},
		{"Costi commerciali", CommercialCost},
		{"Commercial costs", CommercialCost},
		{"Costi del personale", PersonnelCost},
		{"Personnel costs", PersonnelCost},
		{"Costi generali", OverheadCost},
		{"General costs", OverheadCost},
		{"Ammortamenti", Depreciation},
		{"Depreciation/amortization", Depreciation},
		{"Proventi/Oneri finanziari", FinancialResult},
		{"Oneri finanziari", FinancialResult},
		{"Financial income/expense", FinancialResult},
		{"Financial expense", FinancialResult},
		{"Imposte sul reddito", Taxes},
		{"Taxes", Taxes},
		{"NON CLASSIFICATO", Unclassified},
		{"", Unclassified},
		{"qualcosa di strano", Unclassified},
	}
	for _, c := range cases {
		t.Run(c.label, func(t *testing.T) {
			if got := Classify(c.label); got != c.want {
				t.Errorf("Classify(%q) = %v, want %v", c.label, got, c.want)
			}
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	if got := Classify("COSTI DEL PERSONALE"); got != PersonnelCost {
		t.Errorf("Classify(upper) = %v, want %v", got, PersonnelCost)
	}
}

// A label matching several rules must land in the first one: "ricavi"
// is checked before any cost keyword, so a mixed label is revenue.
func TestClassify_FirstMatchWins(t *testing.T) {
	if got := Classify("ricavi da riaddebito costi variabili"); got != Revenue {
		t.Errorf("Classify(overlapping) = %v, want %v", got, Revenue)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		if got := Classify("Costi fissi"); got != FixedCost {
			t.Fatalf("Classify() = %v on run %d, want %v", got, i, FixedCost)
		}
	}
}
