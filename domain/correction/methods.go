package correction

// criticalFunc yields the critical value at 0-based ascending rank i of n
type criticalFunc func(alpha float64, i, n int) float64

func uncorrected(alpha float64, _, _ int) float64 { return alpha }
func bonferroniCritical(alpha float64, _, n int) float64 {
	return alpha / float64(n)
}
func holmCritical(alpha float64, i, n int) float64 {
	return alpha / float64(n-i)
}
func bhCritical(alpha float64, i, n int) float64 {
	return alpha * float64(i+1) / float64(n)
}

// NoCorrection returns the largest p-value not exceeding alpha.
func NoCorrection(pv []float64, alpha float64, sortInput bool) (Threshold, error) {
	return stepDown(pv, alpha, sortInput, uncorrected)
}

// Bonferroni returns the largest p-value not exceeding alpha/n.
func Bonferroni(pv []float64, alpha float64, sortInput bool) (Threshold, error) {
	return stepDown(pv, alpha, sortInput, bonferroniCritical)
}

// Holm applies the sequentially rejective step-down procedure: p-values are
// tested from the smallest against alpha/(n-i) and testing stops at the
// first failure.
func Holm(pv []float64, alpha float64, sortInput bool) (Threshold, error) {
	return stepDown(pv, alpha, sortInput, holmCritical)
}

// Hochberg applies the step-up complement of Holm: scanning from the largest
// p-value, the first one at or below alpha/(n-i) becomes the cutoff.
func Hochberg(pv []float64, alpha float64, sortInput bool) (Threshold, error) {
	return stepUp(pv, alpha, sortInput, holmCritical)
}

// BenjaminiHochberg controls the false discovery rate: the largest rank i
// with p <= alpha*(i+1)/n becomes the cutoff.
func BenjaminiHochberg(pv []float64, alpha float64, sortInput bool) (Threshold, error) {
	return stepUp(pv, alpha, sortInput, bhCritical)
}

// stepDown scans upwards and stops at the first p-value above its critical
// value. Values equal to the critical value are significant.
func stepDown(pv []float64, alpha float64, sortInput bool, critical criticalFunc) (Threshold, error) {
	if err := ValidateAlpha(alpha); err != nil {
		return Absent(), err
	}
	pv = Prepare(pv, sortInput)
	n := len(pv)

	i := 0
	for ; i < n; i++ {
		if pv[i] > critical(alpha, i, n) {
			break
		}
	}
	if i == 0 {
		return Absent(), nil
	}
	return At(pv[i-1]), nil
}

// stepUp scans downwards and accepts the first p-value at or below its
// critical value.
func stepUp(pv []float64, alpha float64, sortInput bool, critical criticalFunc) (Threshold, error) {
	if err := ValidateAlpha(alpha); err != nil {
		return Absent(), err
	}
	pv = Prepare(pv, sortInput)
	n := len(pv)

	for i := n - 1; i >= 0; i-- {
		if pv[i] <= critical(alpha, i, n) {
			return At(pv[i]), nil
		}
	}
	return Absent(), nil
}
