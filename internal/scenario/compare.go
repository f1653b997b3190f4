package scenario

import (
	"math"

	"github.com/zeusync/elastic/pkg/collision"
)

// Agreement compares the angle-free and trigonometric outcomes of one scenario.
type Agreement struct {
	ScenarioID string  `json:"scenario_id"`
	Name       string  `json:"name"`
	MaxDelta   float64 `json:"max_delta"`
	Agree      bool    `json:"agree"`
}

// Compare pairs the reports of each scenario resolved by both methods and measures the
// largest componentwise difference. Scenarios where either method failed are skipped.
func Compare(reports []Report, tolerance float64) []Agreement {
	type pair struct {
		free, trig *Report
	}

	order := make([]string, 0)
	pairs := make(map[string]*pair)
	for i := range reports {
		report := &reports[i]
		if report.Error != "" {
			continue
		}
		p, ok := pairs[report.ScenarioID]
		if !ok {
			p = &pair{}
			pairs[report.ScenarioID] = p
			order = append(order, report.ScenarioID)
		}
		switch report.Method {
		case collision.MethodAngleFree:
			p.free = report
		case collision.MethodTrigonometric:
			p.trig = report
		}
	}

	agreements := make([]Agreement, 0, len(order))
	for _, id := range order {
		p := pairs[id]
		if p.free == nil || p.trig == nil {
			continue
		}
		delta := math.Max(
			math.Max(math.Abs(p.free.Outgoing1.X-p.trig.Outgoing1.X), math.Abs(p.free.Outgoing1.Y-p.trig.Outgoing1.Y)),
			math.Max(math.Abs(p.free.Outgoing2.X-p.trig.Outgoing2.X), math.Abs(p.free.Outgoing2.Y-p.trig.Outgoing2.Y)),
		)
		agreements = append(agreements, Agreement{
			ScenarioID: id,
			Name:       p.free.Name,
			MaxDelta:   delta,
			Agree:      delta <= tolerance,
		})
	}
	return agreements
}
