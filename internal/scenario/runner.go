package scenario

import (
	"context"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/elastic/pkg/collision"
	"github.com/zeusync/elastic/pkg/observability/log"
	"github.com/zeusync/elastic/pkg/vector"
)

// Report is the outcome of one scenario under one method.
type Report struct {
	ScenarioID    string           `json:"scenario_id"`
	Name          string           `json:"name"`
	Method        collision.Method `json:"method"`
	Outgoing1     vector.Vector2   `json:"outgoing1"`
	Outgoing2     vector.Vector2   `json:"outgoing2"`
	MomentumDrift float64          `json:"momentum_drift"`
	EnergyDrift   float64          `json:"energy_drift"`
	Conserved     bool             `json:"conserved"`
	Fingerprint   string           `json:"fingerprint,omitempty"`
	Error         string           `json:"error,omitempty"`
}

// Runner evaluates scenarios in parallel against a shared resolver.
type Runner struct {
	resolver  *collision.Resolver
	workers   int
	tolerance float64
	logger    log.Log
}

// NewRunner creates a runner. Workers <= 0 means GOMAXPROCS.
func NewRunner(resolver *collision.Resolver, config Config, logger log.Log) *Runner {
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	tolerance := config.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if logger == nil {
		logger = log.NewNop()
	}

	return &Runner{
		resolver:  resolver,
		workers:   workers,
		tolerance: tolerance,
		logger:    logger.With(log.String("component", "runner")),
	}
}

// Tolerance returns the tolerance applied to conservation checks.
func (r *Runner) Tolerance() float64 {
	return r.tolerance
}

// Run resolves every scenario with every method. Reports come back in scenario order,
// then method order. A resolver failure is recorded in its report and does not stop the
// batch; only context cancellation does.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario, methods []collision.Method) ([]Report, error) {
	reports := make([]Report, len(scenarios)*len(methods))
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, s := range scenarios {
		for j, method := range methods {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				reports[i*len(methods)+j] = r.evaluate(s, method)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		r.logger.Warn("Batch aborted", log.Error(err))
		return nil, err
	}

	r.logger.Info("Batch finished",
		log.Int("scenarios", len(scenarios)),
		log.Int("methods", len(methods)),
		log.Duration("elapsed", time.Since(start)))

	return reports, nil
}

func (r *Runner) evaluate(s Scenario, method collision.Method) Report {
	report := Report{
		ScenarioID: s.ID,
		Name:       s.Name,
		Method:     method,
	}

	result, err := r.resolver.Resolve(method, s.Body1, s.Body2)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	report.Outgoing1 = result.Outgoing1
	report.Outgoing2 = result.Outgoing2
	report.Fingerprint = formatFingerprint(Fingerprint(result))

	// conservation holds in the frame the resolver computed in
	if r.resolver.Config().InvertY {
		result = result.InvertedY()
	}
	a1, a2 := result.Apply(s.Body1, s.Body2)

	momentumBefore := collision.TotalMomentum(s.Body1, s.Body2)
	energyBefore := collision.TotalKineticEnergy(s.Body1, s.Body2)
	report.MomentumDrift = collision.TotalMomentum(a1, a2).Sub(momentumBefore).Length()
	report.EnergyDrift = math.Abs(collision.TotalKineticEnergy(a1, a2) - energyBefore)
	report.Conserved = report.MomentumDrift <= r.tolerance*math.Max(1, momentumBefore.Length()) &&
		report.EnergyDrift <= r.tolerance*math.Max(1, energyBefore)

	return report
}
