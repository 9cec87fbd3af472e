package cfodash

import "strings"

// Bucket is one slot of the fixed reclassified-P&L taxonomy.
type Bucket int

const (
	// Unclassified is the fallback bucket for labels no rule matches.
	Unclassified Bucket = iota
	Revenue
	VariableCost
	FixedCost
	CommercialCost
	PersonnelCost
	OverheadCost
	Depreciation
	FinancialResult
	Taxes
)

func (b Bucket) String() string {
	switch b {
	case Revenue:
		return "revenue"
	case VariableCost:
		return "variable costs"
	case FixedCost:
		return "fixed costs"
	case CommercialCost:
		return "commercial costs"
	case PersonnelCost:
		return "personnel costs"
	case OverheadCost:
		return "overhead costs"
	case Depreciation:
		return "depreciation"
	case FinancialResult:
		return "financial result"
	case Taxes:
		return "taxes"
	default:
		return "unclassified"
	}
}

// The classification rules form an ordered list scanned top to bottom;
// the first rule with a matching substring wins. Rules are not mutually
// exclusive, so the order is part of the contract. Each rule carries the
// Italian keywords of the source sheets and their English counterparts.
type rule struct {
	bucket   Bucket
	keywords []string
}

var classificationRules = []rule{
	{Revenue, []string{"ricavi operativi", "ricavi", "operating revenue", "revenue"}},
	{VariableCost, []string{"costi variabili", "variable costs"}},
	{FixedCost, []string{"costi fissi", "fixed costs"}},
	{CommercialCost, []string{"costi commerciali", "commercial costs"}},
	{PersonnelCost, []string{"costi del personale", "personnel costs"}},
	{OverheadCost, []string{"costi generali", "general costs"}},
	{Depreciation, []string{"ammortamenti", "depreciation/amortization"}},
	{FinancialResult, []string{"proventi/", "oneri finan", "financial income/", "financial expense"}},
	{Taxes, []string{"imposte", "taxes"}},
}

// Classify maps a management category label to its taxonomy bucket.
// It is a pure, total function: case-insensitive substring containment
// against the ordered rule list, Unclassified when nothing matches.
func Classify(label string) Bucket {
	l := strings.ToLower(label)
	for _, r := range classificationRules {
		for _, kw := range r.keywords {
			if strings.Contains(l, kw) {
				return r.bucket
			}
		}
	}
	return Unclassified
}

// isUnclassifiedLabel reports whether the label is the sheet's own
// "not categorized yet" marker. Only these labels are candidates for the
// revenue folding policy; any other unmatched label stays out of every
// total.
func isUnclassifiedLabel(label string) bool {
	l := strings.ToLower(label)
	return strings.Contains(l, "non classificato") || strings.Contains(l, "unclassified")
}
