package cfodash

import "github.com/shopspring/decimal"

// Inputs are the two optional user-supplied figures the KPI chain cannot
// derive from the ledger. A zero (or negative) value means "not provided"
// and leaves the dependent ratio undefined.
type Inputs struct {
	InvestedCapital Money           // enables ROI
	Clients         decimal.Decimal // enables ARPU
}

// KPI is the full derived metric set for one base total. All currency
// figures are always defined; ROI, ROS and ARPU carry an explicit defined
// flag because their denominators may be missing, and an undefined ratio
// must never be confused with a computed zero.
type KPI struct {
	Base BaseMetrics

	OperatingCosts     Money
	ContributionMargin Money
	EBITDA             Money
	EBITDAMargin       Percent // 0 when there is no revenue
	EBIT               Money
	PretaxResult       Money
	NetIncome          Money
	VariableIncidence  Percent // 0 when there is no revenue
	FixedIncidence     Percent // 0 when there is no revenue

	roi, ros             Percent
	arpu                 Money
	roiOK, rosOK, arpuOK bool
}

// NewKPI runs the deterministic formula chain over the base totals.
func NewKPI(m BaseMetrics, in Inputs) *KPI {
	k := &KPI{Base: m}

	k.OperatingCosts = m.OperatingCosts()
	k.ContributionMargin = m.Revenue.Sub(m.VariableCosts)
	k.EBITDA = m.Revenue.Sub(k.OperatingCosts)
	k.EBITDAMargin = percentOf(k.EBITDA, m.Revenue)
	k.EBIT = k.EBITDA.Sub(m.Depreciation)
	k.PretaxResult = k.EBIT.Add(m.FinancialResult)
	k.NetIncome = k.PretaxResult.Sub(m.Taxes)

	k.VariableIncidence = percentOf(m.VariableCosts, m.Revenue)
	k.FixedIncidence = percentOf(m.FixedCosts, m.Revenue)

	if in.InvestedCapital.IsPositive() {
		k.roi = percentOf(k.EBIT, in.InvestedCapital)
		k.roiOK = true
	}
	if !m.Revenue.IsZero() {
		k.ros = percentOf(k.EBIT, m.Revenue)
		k.rosOK = true
	}
	if in.Clients.IsPositive() {
		k.arpu = m.Revenue.Div(in.Clients)
		k.arpuOK = true
	}
	return k
}

// ROI is EBIT over invested capital; defined only when capital was provided.
func (k *KPI) ROI() (Percent, bool) { return k.roi, k.roiOK }

// ROS is EBIT over revenue; defined only when there is revenue.
func (k *KPI) ROS() (Percent, bool) { return k.ros, k.rosOK }

// ARPU is revenue per client; defined only when a client count was provided.
func (k *KPI) ARPU() (Money, bool) { return k.arpu, k.arpuOK }

// PersonnelShare is personnel cost as a percentage of revenue, 0 without revenue.
func (k *KPI) PersonnelShare() Percent {
	return percentOf(k.Base.PersonnelCosts, k.Base.Revenue)
}

// ContributionMarginPct is the contribution margin as a percentage of revenue.
func (k *KPI) ContributionMarginPct() Percent {
	return percentOf(k.ContributionMargin, k.Base.Revenue)
}

// percentOf returns part/whole in percentage points, 0 for a zero whole.
// This is the incidence-ratio divide-by-zero policy; ratios that instead
// become undefined are guarded by their callers.
func percentOf(part, whole Money) Percent {
	if whole.IsZero() {
		return 0
	}
	return Percent(part.value.Div(whole.value).InexactFloat64() * 100)
}
