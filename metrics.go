package cfodash

// BaseMetrics holds the nine bucket totals of a filtered entry set.
// It is the single input of the KPI formula chain.
type BaseMetrics struct {
	Revenue         Money
	VariableCosts   Money
	FixedCosts      Money
	CommercialCosts Money
	PersonnelCosts  Money
	OverheadCosts   Money
	Depreciation    Money
	FinancialResult Money
	Taxes           Money
}

// Policy captures the classification ambiguities that are business
// decisions rather than ground truth.
type Policy struct {
	// FoldUnclassified counts entries explicitly labeled "NON
	// CLASSIFICATO" (or "unclassified") as revenue. Labels matching no
	// rule at all are never folded: they contribute to no total.
	FoldUnclassified bool
}

// DefaultPolicy mirrors the source dashboard behavior.
func DefaultPolicy() Policy { return Policy{FoldUnclassified: true} }

// Aggregate sums the bucketed amounts of the entry set into base totals.
// An empty set yields all-zero totals.
func Aggregate(entries []Entry, p Policy) BaseMetrics {
	var m BaseMetrics
	zero := M(0, ReportingCurrency)
	m = BaseMetrics{zero, zero, zero, zero, zero, zero, zero, zero, zero}

	for _, e := range entries {
		switch Classify(e.Category) {
		case Revenue:
			m.Revenue = m.Revenue.Add(e.Amount)
		case VariableCost:
			m.VariableCosts = m.VariableCosts.Add(e.Amount)
		case FixedCost:
			m.FixedCosts = m.FixedCosts.Add(e.Amount)
		case CommercialCost:
			m.CommercialCosts = m.CommercialCosts.Add(e.Amount)
		case PersonnelCost:
			m.PersonnelCosts = m.PersonnelCosts.Add(e.Amount)
		case OverheadCost:
			m.OverheadCosts = m.OverheadCosts.Add(e.Amount)
		case Depreciation:
			m.Depreciation = m.Depreciation.Add(e.Amount)
		case FinancialResult:
			m.FinancialResult = m.FinancialResult.Add(e.Amount)
		case Taxes:
			m.Taxes = m.Taxes.Add(e.Amount)
		case Unclassified:
			if p.FoldUnclassified && isUnclassifiedLabel(e.Category) {
				m.Revenue = m.Revenue.Add(e.Amount)
			}
		}
	}
	return m
}

// OperatingCosts is the sum of the five operating cost buckets.
func (m BaseMetrics) OperatingCosts() Money {
	return m.VariableCosts.
		Add(m.FixedCosts).
		Add(m.CommercialCosts).
		Add(m.PersonnelCosts).
		Add(m.OverheadCosts)
}
