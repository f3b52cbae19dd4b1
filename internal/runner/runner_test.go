package runner

import (
	"context"
	"errors"
	"math"
	"testing"

	"infoflow/internal/sim"
	"infoflow/internal/stats"
)

func TestRunAccumulatesFullSeries(t *testing.T) {
	cfg := sim.Default()
	cfg.NSteps = 50
	s, err := sim.New(cfg)
	if err != nil {
		t.Fatalf("new simulator: %v", err)
	}

	calls := 0
	series, err := Run(context.Background(), s, cfg.NSteps, func(step int, r sim.Result) {
		if step != calls {
			t.Fatalf("observer called out of order: step %d on call %d", step, calls)
		}
		if !stats.VectorGE(r.State, 0) {
			t.Fatalf("step %d: negative component in observed state", step)
		}
		calls++
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if series.Len() != cfg.NSteps {
		t.Fatalf("expected %d records, got %d", cfg.NSteps, series.Len())
	}
	if calls != cfg.NSteps {
		t.Fatalf("expected %d observer calls, got %d", cfg.NSteps, calls)
	}

	records := series.Records()
	for i, rec := range records {
		if rec.Step != i {
			t.Fatalf("expected step %d at row %d, got %d", i, i, rec.Step)
		}
	}
}

func TestRunMatchesDirectStepping(t *testing.T) {
	cfg := sim.Default()
	s1, err := sim.New(cfg)
	if err != nil {
		t.Fatalf("new simulator: %v", err)
	}
	s2, err := sim.New(cfg)
	if err != nil {
		t.Fatalf("new simulator: %v", err)
	}

	series, err := Run(context.Background(), s1, 20, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for i, rec := range series.Records() {
		res, err := s2.Step(i)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if rec.Entropy != res.Entropy || rec.KLDivergence != res.KLDivergence {
			t.Fatalf("row %d diverged from direct stepping", i)
		}
	}
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	s, err := sim.New(sim.Default())
	if err != nil {
		t.Fatalf("new simulator: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	series, err := Run(ctx, s, 100, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if series.Len() != 0 {
		t.Fatalf("expected empty series after immediate cancel, got %d records", series.Len())
	}
}

func TestRunReturnsPartialSeriesOnStepFailure(t *testing.T) {
	cfg := sim.Default()
	cfg.DT = math.Inf(1)
	cfg.Temperature = 0
	s, err := sim.New(cfg)
	if err != nil {
		t.Fatalf("new simulator: %v", err)
	}

	series, err := Run(context.Background(), s, 10, nil)
	if !errors.Is(err, sim.ErrNumericAnomaly) {
		t.Fatalf("expected ErrNumericAnomaly, got %v", err)
	}
	if series.Len() != 0 {
		t.Fatalf("expected no records before the failing step, got %d", series.Len())
	}
}
