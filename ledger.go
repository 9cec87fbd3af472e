package cfodash

import (
	"slices"
	"sort"
)

// Ledger is the full set of normalized entries of one import. It is
// replaced wholesale on every new import, never merged incrementally;
// every derived view (filter, totals, trend) is recomputed from it.
type Ledger struct {
	entries []Entry
}

// All is the filter sentinel matching every year or every period.
const All = "ALL"

// NewLedger creates a ledger over the given entries.
func NewLedger(entries ...Entry) *Ledger {
	return &Ledger{entries: slices.Clone(entries)}
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int { return len(l.entries) }

// Entries returns a copy of the entry set.
func (l *Ledger) Entries() []Entry { return slices.Clone(l.entries) }

// Filter returns the entries matching the year and period selection.
// The All sentinel bypasses the corresponding criterion.
func (l *Ledger) Filter(year, period string) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if year != All && e.Year != year {
			continue
		}
		if period != All && e.Period != period {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Metrics aggregates the filtered entries into the nine base totals.
func (l *Ledger) Metrics(year, period string, p Policy) BaseMetrics {
	return Aggregate(l.Filter(year, period), p)
}

// Years returns the distinct years present in the ledger, sorted.
func (l *Ledger) Years() []string {
	seen := map[string]bool{}
	var years []string
	for _, e := range l.entries {
		if e.Year == "" || seen[e.Year] {
			continue
		}
		seen[e.Year] = true
		years = append(years, e.Year)
	}
	sort.Strings(years)
	return years
}

// Periods returns the distinct periods present in the ledger, in order of
// first appearance, which is the row order of the source sheet.
func (l *Ledger) Periods() []string {
	seen := map[string]bool{}
	var periods []string
	for _, e := range l.entries {
		if e.Period == "" || seen[e.Period] {
			continue
		}
		seen[e.Period] = true
		periods = append(periods, e.Period)
	}
	return periods
}

// TrendPoint is the revenue versus cost total of one period.
type TrendPoint struct {
	Period  string
	Revenue Money
	Costs   Money
}

// Trend breaks the filtered entries down by period: revenue lines on one
// side, every cost bucket on the other. Points keep the first-appearance
// order of the periods. Explicit "NON CLASSIFICATO" entries follow the
// folding policy (folded they count as revenue, otherwise in no column);
// any other unmatched label counts with the costs.
func (l *Ledger) Trend(year, period string, p Policy) []TrendPoint {
	index := map[string]int{}
	var points []TrendPoint

	for _, e := range l.Filter(year, period) {
		key := e.Period
		if key == "" {
			key = WholeYear
		}
		i, ok := index[key]
		if !ok {
			i = len(points)
			index[key] = i
			zero := M(0, ReportingCurrency)
			points = append(points, TrendPoint{Period: key, Revenue: zero, Costs: zero})
		}
		switch Classify(e.Category) {
		case Revenue:
			points[i].Revenue = points[i].Revenue.Add(e.Amount)
		case Unclassified:
			switch {
			case !isUnclassifiedLabel(e.Category):
				points[i].Costs = points[i].Costs.Add(e.Amount)
			case p.FoldUnclassified:
				points[i].Revenue = points[i].Revenue.Add(e.Amount)
			}
		default:
			points[i].Costs = points[i].Costs.Add(e.Amount)
		}
	}
	return points
}
