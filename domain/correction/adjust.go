package correction

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// adjustFunc maps an ascending p-value slice to adjusted values by rank
type adjustFunc func(sorted []float64) []float64

// Adjust returns the adjusted p-value of every entry of pv, in input order.
// An entry is significant at level alpha under m exactly when its adjusted
// value does not exceed alpha. Adjusted values are capped at 1.
func (m Method) Adjust(pv []float64) []float64 {
	n := len(pv)
	if n == 0 {
		return []float64{}
	}
	sorted := make([]float64, n)
	copy(sorted, pv)
	inds := make([]int, n)
	floats.Argsort(sorted, inds)

	byRank := m.adjust(sorted)
	out := make([]float64, n)
	for rank, orig := range inds {
		out[orig] = byRank[rank]
	}
	return out
}

func adjustNone(sorted []float64) []float64 {
	out := make([]float64, len(sorted))
	copy(out, sorted)
	return out
}

func adjustBonferroni(sorted []float64) []float64 {
	out := adjustNone(sorted)
	floats.Scale(float64(len(out)), out)
	capAtOne(out)
	return out
}

// adjustHolm takes the running maximum so adjusted values never decrease
// with rank, mirroring the step-down stop rule.
func adjustHolm(sorted []float64) []float64 {
	n := len(sorted)
	out := make([]float64, n)
	running := 0.0
	for i, p := range sorted {
		running = math.Max(running, float64(n-i)*p)
		out[i] = running
	}
	capAtOne(out)
	return out
}

func adjustHochberg(sorted []float64) []float64 {
	n := len(sorted)
	return stepUpAdjust(sorted, func(i int, p float64) float64 {
		return float64(n-i) * p
	})
}

func adjustBH(sorted []float64) []float64 {
	n := len(sorted)
	return stepUpAdjust(sorted, func(i int, p float64) float64 {
		return float64(n) * p / float64(i+1)
	})
}

// stepUpAdjust takes the running minimum from the largest rank down
func stepUpAdjust(sorted []float64, scale func(i int, p float64) float64) []float64 {
	n := len(sorted)
	out := make([]float64, n)
	running := math.Inf(1)
	for i := n - 1; i >= 0; i-- {
		running = math.Min(running, scale(i, sorted[i]))
		out[i] = running
	}
	capAtOne(out)
	return out
}

func capAtOne(values []float64) {
	for i, v := range values {
		if v > 1 {
			values[i] = 1
		}
	}
}
