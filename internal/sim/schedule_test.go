package sim

import (
	"math"
	"testing"
)

func TestScheduleBounds(t *testing.T) {
	cfg := Default()
	alphaLo := math.Min(cfg.AlphaInit, cfg.AlphaFinal)
	alphaHi := math.Max(cfg.AlphaInit, cfg.AlphaFinal)
	betaLo := math.Min(cfg.BetaInit, cfg.BetaFinal)
	betaHi := math.Max(cfg.BetaInit, cfg.BetaFinal)

	for _, step := range []int{0, 1, 100, 499, 500, 501, 900, 1000, 1500, 5000} {
		alpha, beta, trans := Schedule(cfg, step)
		if trans <= 0 || trans >= 1 {
			t.Fatalf("step %d: expected transition strictly inside (0,1), got %g", step, trans)
		}
		if alpha < alphaLo || alpha > alphaHi {
			t.Fatalf("step %d: alpha %g outside [%g, %g]", step, alpha, alphaLo, alphaHi)
		}
		if beta < betaLo || beta > betaHi {
			t.Fatalf("step %d: beta %g outside [%g, %g]", step, beta, betaLo, betaHi)
		}
	}
}

func TestScheduleEndpoints(t *testing.T) {
	cfg := Default()

	// The sigmoid leaves a residual of 1/(1+e^6) at t=0, about 0.25% of
	// the endpoint spread.
	tol := 0.01

	alpha0, beta0, _ := Schedule(cfg, 0)
	if math.Abs(alpha0-cfg.AlphaInit) > tol*math.Abs(cfg.AlphaInit-cfg.AlphaFinal) {
		t.Fatalf("expected alpha near %g at t=0, got %g", cfg.AlphaInit, alpha0)
	}
	if math.Abs(beta0-cfg.BetaInit) > tol*math.Abs(cfg.BetaInit-cfg.BetaFinal) {
		t.Fatalf("expected beta near %g at t=0, got %g", cfg.BetaInit, beta0)
	}

	alphaEnd, betaEnd, _ := Schedule(cfg, 10*cfg.NSteps)
	if math.Abs(alphaEnd-cfg.AlphaFinal) > 1e-9 {
		t.Fatalf("expected alpha to converge to %g, got %g", cfg.AlphaFinal, alphaEnd)
	}
	if math.Abs(betaEnd-cfg.BetaFinal) > 1e-9 {
		t.Fatalf("expected beta to converge to %g, got %g", cfg.BetaFinal, betaEnd)
	}
}

func TestScheduleMidpoint(t *testing.T) {
	cfg := Default()
	alpha, beta, trans := Schedule(cfg, cfg.NSteps/2)
	if math.Abs(trans-0.5) > 1e-12 {
		t.Fatalf("expected transition 0.5 at midpoint, got %g", trans)
	}
	wantAlpha := (cfg.AlphaInit + cfg.AlphaFinal) / 2
	wantBeta := (cfg.BetaInit + cfg.BetaFinal) / 2
	if math.Abs(alpha-wantAlpha) > 1e-12 {
		t.Fatalf("expected alpha %g at midpoint, got %g", wantAlpha, alpha)
	}
	if math.Abs(beta-wantBeta) > 1e-12 {
		t.Fatalf("expected beta %g at midpoint, got %g", wantBeta, beta)
	}
}

func TestScheduleMonotoneTransition(t *testing.T) {
	cfg := Default()
	_, _, prev := Schedule(cfg, 0)
	for step := 1; step <= cfg.NSteps; step += 25 {
		_, _, trans := Schedule(cfg, step)
		if trans <= prev {
			t.Fatalf("expected strictly increasing transition, got %g after %g at step %d", trans, prev, step)
		}
		prev = trans
	}
}
