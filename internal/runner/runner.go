package runner

import (
	"context"

	"infoflow/internal/model"
	"infoflow/internal/sim"
	"infoflow/internal/stats"
)

// Observer receives each step result as it is produced. A presentation
// layer attaches here, one call per frame; the runner itself never renders.
type Observer func(t int, r sim.Result)

// Run drives the simulator through steps t = 0..steps-1, strictly
// sequentially, and accumulates the diagnostics series. The context is
// checked before every step; on cancellation or step failure the partial
// series is returned alongside the error.
func Run(ctx context.Context, s *sim.Simulator, steps int, obs Observer) (*stats.Series, error) {
	series := stats.NewSeries()
	for t := 0; t < steps; t++ {
		if err := ctx.Err(); err != nil {
			return series, err
		}
		res, err := s.Step(t)
		if err != nil {
			return series, err
		}
		series.Append(model.StepRecord{
			Step:         t,
			Entropy:      res.Entropy,
			KLDivergence: res.KLDivergence,
			Alpha:        res.Alpha,
			Beta:         res.Beta,
		})
		if obs != nil {
			obs(t, res)
		}
	}
	return series, nil
}
