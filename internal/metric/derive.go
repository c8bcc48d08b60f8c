// Package metric derives combined and aggregate values from filtered
// observation rows. Everything here is pure: rows in, values out.
package metric

import (
	"math"

	"github.com/mbeckr/popviz/internal/dataset"
)

// ProjectionCutoffYear is the last year covered by historical
// estimates. Years beyond it are labelled as projections.
//
// The label is a plain year comparison, not a check of which column
// actually supplied a value. The two can disagree for rows where only
// the projection column is populated before the cutoff (or vice
// versa); the upstream dashboard behaves this way and we reproduce it.
const ProjectionCutoffYear = 2023

// IsProjection reports whether a selected year falls in the
// projection range.
func IsProjection(year int) bool { return year > ProjectionCutoffYear }

// Combined returns the row's value for the logical metric split across
// an estimate column and a projection (medium-variant) column, using
// first-non-missing semantics: the estimate wins when present,
// otherwise the projection is used. ok is false when neither column
// has a usable value.
func Combined(row dataset.Row, estimateCol, projectionCol string) (float64, bool) {
	if v, ok := row.Value(estimateCol); ok && !math.IsNaN(v) {
		return v, true
	}
	if v, ok := row.Value(projectionCol); ok && !math.IsNaN(v) {
		return v, true
	}
	return 0, false
}

// Mean returns the arithmetic mean of col over rows, skipping rows
// where the column is missing. ok is false when no row contributes a
// value; callers must render that as "no data", never as a numeric
// NaN.
func Mean(rows []dataset.Row, col string) (float64, bool) {
	sum, n := 0.0, 0
	for _, r := range rows {
		v, ok := r.Value(col)
		if !ok || math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// MeanOf is Mean for values already extracted from rows.
func MeanOf(values []float64) (float64, bool) {
	sum, n := 0.0, 0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// PercentChange returns the relative change from one value to another
// in percent. ok is false when the base is zero or either input is
// not a number.
func PercentChange(from, to float64) (float64, bool) {
	if from == 0 || math.IsNaN(from) || math.IsNaN(to) {
		return 0, false
	}
	return (to - from) / from * 100, true
}
