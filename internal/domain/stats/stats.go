// Package stats provides the numeric primitives the attribute derivation
// is built on: min-max normalization and linear-interpolation quantiles.
package stats

import (
	"math"
	"sort"
)

// rangeEpsilon guards the normalization denominator against a zero-width
// range: an all-equal column collapses to ~0 instead of dividing by zero.
const rangeEpsilon = 1e-9

// Normalize maps each value to (v - min) / (max - min + epsilon), with min
// and max taken from the input itself. Results always lie in [0, 1).
// An empty input yields an empty output.
func Normalize(xs []float64) []float64 {
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out
	}

	minV, maxV := xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	denom := maxV - minV + rangeEpsilon
	for i, v := range xs {
		out[i] = (v - minV) / denom
	}
	return out
}

// Quantile returns the q-th quantile of xs using linear interpolation
// between closest ranks, the same method pandas and numpy default to.
// q is clamped to [0, 1]. The input is not modified. Quantile of an empty
// slice is NaN.
func Quantile(xs []float64, q float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return xs[0]
	}

	q = math.Max(0, math.Min(1, q))

	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
