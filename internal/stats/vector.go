package stats

import "math"

// VectorSum returns the sum of the components of v.
func VectorSum(v []float64) float64 {
	acc := 0.0
	for _, x := range v {
		acc += x
	}
	return acc
}

// VectorEqualTol reports whether v1 and v2 agree elementwise within tol.
func VectorEqualTol(v1, v2 []float64, tol float64) bool {
	if v2 == nil || len(v1) != len(v2) {
		return false
	}
	for i := range v1 {
		if math.Abs(v1[i]-v2[i]) > tol {
			return false
		}
	}
	return true
}

// VectorGE reports whether every component of v is at least bound.
func VectorGE(v []float64, bound float64) bool {
	for _, x := range v {
		if x < bound {
			return false
		}
	}
	return true
}
