package renderer

import "github.com/sonpb/advisor"

// Plan is the view of the goals and asset-allocation plan.
type Plan struct {
	AsOf string `json:"asOf"`

	Goals      []GoalDetail            `json:"goals,omitempty"`
	Allocation []advisor.AllocationRow `json:"allocation,omitempty"`

	TotalMonthly advisor.Money `json:"totalMonthly"`
	TotalYearly  advisor.Money `json:"totalYearly"`
}

// GoalDetail is one goal with its derived investment figures.
type GoalDetail struct {
	Index     int           `json:"index"`
	Name      string        `json:"name"`
	Years     int           `json:"years"`
	Target    advisor.Money `json:"target"`
	Priority  int           `json:"priority"`
	Necessity string        `json:"necessity"`
	Monthly   advisor.Money `json:"monthly"`
	Yearly    advisor.Money `json:"yearly"`
}

// NewPlan derives the plan view from the goal list and the supplied
// allocation. Goal order is the caller's priority order and is kept.
func NewPlan(goals []advisor.Goal, alloc advisor.Allocation) *Plan {
	p := &Plan{
		AsOf:         Now().Format("2006-01-02"),
		Allocation:   alloc.Table(),
		TotalMonthly: advisor.KRW(0),
		TotalYearly:  advisor.KRW(0),
	}

	for i, g := range goals {
		monthly := g.MonthlyInvestment()
		yearly := monthly.Scale(12)
		p.Goals = append(p.Goals, GoalDetail{
			Index:     i + 1,
			Name:      g.Name,
			Years:     g.Years,
			Target:    g.Target,
			Priority:  g.Priority,
			Necessity: string(g.Necessity),
			Monthly:   monthly,
			Yearly:    yearly,
		})
		p.TotalMonthly = p.TotalMonthly.Add(monthly)
		p.TotalYearly = p.TotalYearly.Add(yearly)
	}
	return p
}
