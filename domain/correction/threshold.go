// Package correction computes the largest p-value that stays significant
// under classical multiple-comparison procedures.
//
// Every function in this package is pure: it reads the p-value slice it is
// given, never mutates it, and keeps no state between calls.
package correction

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"

	"github.com/AlexandreDecan/pcorr/domain/core"

	"gonum.org/v1/gonum/floats"
)

// DefaultAlpha is the conventional family-wise significance level
const DefaultAlpha = 0.05

// Threshold is the largest significant p-value, or absent when nothing is
// significant. A zero Threshold is absent.
type Threshold struct {
	Value float64
	Valid bool
}

// Absent returns the "no significant result" threshold
func Absent() Threshold {
	return Threshold{}
}

// At returns a threshold holding p
func At(p float64) Threshold {
	return Threshold{Value: p, Valid: true}
}

// Admits reports whether p is significant under this threshold
func (t Threshold) Admits(p float64) bool {
	return t.Valid && p <= t.Value
}

// Less orders thresholds with absent below every present value
func (t Threshold) Less(other Threshold) bool {
	if !t.Valid {
		return other.Valid
	}
	return other.Valid && t.Value < other.Value
}

// String formats the threshold to 6 decimals, or "none" when absent
func (t Threshold) String() string {
	if !t.Valid {
		return "none"
	}
	return strconv.FormatFloat(t.Value, 'f', 6, 64)
}

// MarshalJSON encodes an absent threshold as null
func (t Threshold) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}

// UnmarshalJSON decodes null as absent
func (t *Threshold) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Absent()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = At(v)
	return nil
}

// ValidateAlpha rejects significance levels outside (0, 1]
func ValidateAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha <= 0 || alpha > 1 {
		return core.NewAlphaError(alpha)
	}
	return nil
}

// Prepare returns pv unchanged when sortInput is false (the caller asserts
// it is ascending), or a new ascending copy otherwise. pv is never mutated.
func Prepare(pv []float64, sortInput bool) []float64 {
	if !sortInput {
		return pv
	}
	sorted := make([]float64, len(pv))
	copy(sorted, pv)
	sort.Float64s(sorted)
	return sorted
}

// CountSignificant counts the entries of pv admitted by t
func CountSignificant(pv []float64, t Threshold) int {
	if !t.Valid {
		return 0
	}
	return floats.Count(t.Admits, pv)
}
