package metric

import (
	"math"
	"testing"

	"github.com/mbeckr/popviz/internal/dataset"
)

const (
	estCol  = "median_age__sex_all__age_all__variant_estimates"
	projCol = "median_age__sex_all__age_all__variant_medium"
)

func row(values map[string]float64) dataset.Row {
	return dataset.Row{Entity: "World", Year: 2000, Values: values}
}

func TestCombinedPrefersEstimate(t *testing.T) {
	r := row(map[string]float64{estCol: 30.5, projCol: 31.0})
	v, ok := Combined(r, estCol, projCol)
	if !ok || v != 30.5 {
		t.Errorf("Combined = (%v, %v), want (30.5, true)", v, ok)
	}
}

func TestCombinedFallsBackToProjection(t *testing.T) {
	r := row(map[string]float64{projCol: 31.0})
	v, ok := Combined(r, estCol, projCol)
	if !ok || v != 31.0 {
		t.Errorf("Combined = (%v, %v), want (31, true)", v, ok)
	}
}

func TestCombinedNeitherPresent(t *testing.T) {
	if _, ok := Combined(row(map[string]float64{}), estCol, projCol); ok {
		t.Error("Combined: ok = true for empty row")
	}
	// NaN counts as missing, same as an absent key.
	r := row(map[string]float64{estCol: math.NaN()})
	if _, ok := Combined(r, estCol, projCol); ok {
		t.Error("Combined: ok = true for NaN estimate")
	}
}

func TestIsProjection(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1950, false},
		{2022, false},
		{2023, false}, // cutoff year itself is still an estimate
		{2024, true},
		{2100, true},
	}
	for _, tc := range tests {
		if got := IsProjection(tc.year); got != tc.want {
			t.Errorf("IsProjection(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}
}

func TestMean(t *testing.T) {
	rows := []dataset.Row{
		row(map[string]float64{estCol: 10}),
		row(map[string]float64{estCol: 20}),
		row(map[string]float64{}), // missing, skipped
	}
	v, ok := Mean(rows, estCol)
	if !ok || v != 15 {
		t.Errorf("Mean = (%v, %v), want (15, true)", v, ok)
	}
}

func TestMeanEmptyIsNoData(t *testing.T) {
	if _, ok := Mean(nil, estCol); ok {
		t.Error("Mean(nil): ok = true, want no-data")
	}
	rows := []dataset.Row{row(map[string]float64{})}
	if _, ok := Mean(rows, estCol); ok {
		t.Error("Mean over all-missing rows: ok = true, want no-data")
	}
}

func TestMeanOf(t *testing.T) {
	v, ok := MeanOf([]float64{1, 2, 3})
	if !ok || v != 2 {
		t.Errorf("MeanOf = (%v, %v), want (2, true)", v, ok)
	}
	if _, ok := MeanOf(nil); ok {
		t.Error("MeanOf(nil): ok = true")
	}
}

func TestPercentChange(t *testing.T) {
	v, ok := PercentChange(100, 110)
	if !ok || math.Abs(v-10) > 1e-9 {
		t.Errorf("PercentChange = (%v, %v), want (10, true)", v, ok)
	}
	if _, ok := PercentChange(0, 5); ok {
		t.Error("PercentChange from zero: ok = true")
	}
	if _, ok := PercentChange(math.NaN(), 5); ok {
		t.Error("PercentChange from NaN: ok = true")
	}
}
