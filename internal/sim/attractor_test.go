package sim

import (
	"math"
	"testing"
)

func TestNewAttractorIsNormalized(t *testing.T) {
	for _, n := range []int{1, 4, 15, 64} {
		dist := NewAttractor(n)
		if len(dist) != n {
			t.Fatalf("n=%d: expected %d components, got %d", n, n, len(dist))
		}
		sum := 0.0
		for _, p := range dist {
			if p <= 0 {
				t.Fatalf("n=%d: component not positive: %g", n, p)
			}
			sum += p
		}
		if math.Abs(sum-1.0) > 1e-12 {
			t.Fatalf("n=%d: expected sum 1, got %.15f", n, sum)
		}
	}
}

func TestNewAttractorDecayShape(t *testing.T) {
	dist := NewAttractor(15)
	wantRatio := math.Exp(-1.0 / attractorDecayRate)
	for i := 1; i < len(dist); i++ {
		if dist[i] >= dist[i-1] {
			t.Fatalf("expected strictly decreasing distribution, dist[%d]=%g dist[%d]=%g", i-1, dist[i-1], i, dist[i])
		}
		ratio := dist[i] / dist[i-1]
		if math.Abs(ratio-wantRatio) > 1e-12 {
			t.Fatalf("expected consecutive ratio %g, got %g at i=%d", wantRatio, ratio, i)
		}
	}
}

func TestNewAttractorDeterministic(t *testing.T) {
	a := NewAttractor(15)
	b := NewAttractor(15)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected identical attractors, differ at %d: %g vs %g", i, a[i], b[i])
		}
	}
}
