package cfodash

import "fmt"

// Tier is the traffic-light severity of an alert.
type Tier int

const (
	Red    Tier = iota // critical, act now
	Yellow             // warning, monitor closely
	Green              // healthy
)

func (t Tier) String() string {
	switch t {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return "green"
	}
}

// Alert is one evaluated check: a stable identifier, a one-line title with
// the measured percentage, a subtitle explaining the gap to target, and an
// ordered list of recommended actions.
type Alert struct {
	ID       string
	Title    string
	Subtitle string
	Actions  []string
}

// AlertSet groups the alerts of one evaluation by tier. Within a tier the
// alerts keep the fixed evaluation order: personnel cost, EBITDA margin,
// variable-cost incidence, ROS. A set is a fresh value on every
// evaluation, never stored or mutated.
type AlertSet struct {
	Red    []Alert
	Yellow []Alert
	Green  []Alert
}

// Len returns the total number of alerts across tiers.
func (s AlertSet) Len() int { return len(s.Red) + len(s.Yellow) + len(s.Green) }

func (s *AlertSet) push(t Tier, a Alert) {
	switch t {
	case Red:
		s.Red = append(s.Red, a)
	case Yellow:
		s.Yellow = append(s.Yellow, a)
	default:
		s.Green = append(s.Green, a)
	}
}

// BuildAlerts evaluates the four monitored ratios against the targets.
//
// Personnel cost and variable-cost incidence are measured as a delta over
// target: more than 10 points above is red, above at all is yellow, at or
// below is green; their red alerts also compute the absolute annual
// adjustment (delta/100 x revenue, whole euros) that would close the gap.
// EBITDA margin is red more than 5 points below its target, ROS more than
// 4 points below; both are yellow up to the target and green from there.
//
// Checks gated on a missing precondition (no revenue, undefined ROS) emit
// nothing at all, in no tier.
func BuildAlerts(k *KPI, t Targets) AlertSet {
	var set AlertSet

	revenue := k.Base.Revenue

	// Personnel cost share of revenue.
	if revenue.IsPositive() {
		actual := k.PersonnelShare()
		target := Percent(t.PersonnelShare)
		delta := actual - target
		switch {
		case delta > 10:
			reduction := revenue.Scale(float64(delta) / 100).Round()
			set.push(Red, Alert{
				ID:       "personnel-cost-red",
				Title:    fmt.Sprintf("Personnel cost critical: %s", actual),
				Subtitle: fmt.Sprintf("Personnel cost is %s points above the %s target for a services business.", delta.Points(), target),
				Actions: []string{
					fmt.Sprintf("Reduce personnel cost by about %s on a yearly basis.", reduction),
					"Shift part of compensation to a variable, results-linked component.",
					"Review productivity per FTE to locate low-yield areas.",
				},
			})
		case delta > 0:
			set.push(Yellow, Alert{
				ID:       "personnel-cost-yellow",
				Title:    fmt.Sprintf("Personnel cost above target: %s", actual),
				Subtitle: fmt.Sprintf("Personnel cost is %s points above the %s target. Watch it closely.", delta.Points(), target),
				Actions: []string{
					"Avoid new structural hires until the margin improves.",
					"Consider targeted outsourcing for workload peaks.",
				},
			})
		default:
			set.push(Green, Alert{
				ID:       "personnel-cost-green",
				Title:    fmt.Sprintf("Personnel cost under control (%s)", actual),
				Subtitle: fmt.Sprintf("Personnel cost is within the %s target.", target),
				Actions: []string{
					"Keep the current efficiency level.",
					"Tie any new hire to recurring revenue.",
				},
			})
		}
	}

	// EBITDA margin. Always evaluated, even without revenue.
	{
		actual := k.EBITDAMargin
		target := Percent(t.EBITDAMargin)
		delta := actual - target
		switch {
		case actual < target-5:
			set.push(Red, Alert{
				ID:       "ebitda-red",
				Title:    fmt.Sprintf("Weak EBITDA: %s", actual),
				Subtitle: fmt.Sprintf("EBITDA margin is %s points below the %s target. Operating profitability is insufficient.", delta.Points(), target),
				Actions: []string{
					"Review pricing and discounts on unprofitable projects.",
					"Cut non-strategic variable costs (subcontracting, spot consulting).",
					"Identify the lowest-margin clients and projects and intervene.",
				},
			})
		case actual < target:
			set.push(Yellow, Alert{
				ID:       "ebitda-yellow",
				Title:    fmt.Sprintf("EBITDA below objective: %s", actual),
				Subtitle: fmt.Sprintf("EBITDA margin is slightly below the %s target.", target),
				Actions: []string{
					"Raise the effective billable ratio.",
					"Allocate resources to the most profitable projects first.",
				},
			})
		default:
			set.push(Green, Alert{
				ID:       "ebitda-green",
				Title:    fmt.Sprintf("Healthy EBITDA: %s", actual),
				Subtitle: fmt.Sprintf("EBITDA margin is above the %s target. Good operating profitability.", target),
				Actions: []string{
					"Consider investing in product, R&D or client acquisition.",
					"Consolidate the processes generating this margin.",
				},
			})
		}
	}

	// Variable-cost incidence.
	if revenue.IsPositive() {
		actual := k.VariableIncidence
		target := Percent(t.VariableIncidence)
		delta := actual - target
		switch {
		case delta > 10:
			reduction := revenue.Scale(float64(delta) / 100).Round()
			set.push(Red, Alert{
				ID:       "variable-cost-red",
				Title:    fmt.Sprintf("High variable costs: %s", actual),
				Subtitle: fmt.Sprintf("Variable costs are %s points above the %s target. Project margins risk being squeezed.", delta.Points(), target),
				Actions: []string{
					fmt.Sprintf("Cut external variable spending by about %s on a yearly basis.", reduction),
					"Renegotiate rates with subcontractors and technical partners.",
					"Standardize the delivery stack and methods.",
				},
			})
		case delta > 0:
			set.push(Yellow, Alert{
				ID:       "variable-cost-yellow",
				Title:    fmt.Sprintf("Variable costs rising: %s", actual),
				Subtitle: fmt.Sprintf("Variable-cost incidence has passed the %s target.", target),
				Actions: []string{
					"Track which projects generate the most external costs.",
					"Evaluate make-or-buy on repetitive activities.",
				},
			})
		default:
			set.push(Green, Alert{
				ID:       "variable-cost-green",
				Title:    fmt.Sprintf("Variable costs in line (%s)", actual),
				Subtitle: fmt.Sprintf("Variable-cost incidence is within the %s target.", target),
				Actions: []string{
					"Keep the discipline on quotes and external hours control.",
				},
			})
		}
	}

	// ROS. Skipped entirely when undefined.
	if actual, ok := k.ROS(); ok {
		target := Percent(t.ROS)
		delta := actual - target
		switch {
		case actual < target-4:
			set.push(Red, Alert{
				ID:       "ros-red",
				Title:    fmt.Sprintf("Low ROS: %s", actual),
				Subtitle: fmt.Sprintf("ROS is %s points below the %s target. Final profitability on sales is too low.", delta.Points(), target),
				Actions: []string{
					"Drop or reprice structurally loss-making clients and projects.",
					"Align price lists with the value actually delivered.",
				},
			})
		case actual < target:
			set.push(Yellow, Alert{
				ID:       "ros-yellow",
				Title:    fmt.Sprintf("ROS below objective: %s", actual),
				Subtitle: fmt.Sprintf("ROS is slightly below the %s target.", target),
				Actions: []string{
					"Trim non-core costs that do not affect delivery.",
					"Push the services and products with the best margin multiples.",
				},
			})
		default:
			set.push(Green, Alert{
				ID:       "ros-green",
				Title:    fmt.Sprintf("ROS in line: %s", actual),
				Subtitle: "Profitability on sales is at or above target.",
				Actions: []string{
					"Keep the discipline on discounts and contract terms.",
				},
			})
		}
	}

	return set
}
