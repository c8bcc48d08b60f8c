package chart

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mbeckr/popviz/internal/dataset"
	"github.com/mbeckr/popviz/internal/metric"
)

const medianAgeStem = "median_age"

// MedianEstimatesColumn and MedianProjectionColumn are the two source
// columns the combined median-age metric coalesces over.
var (
	MedianEstimatesColumn  = dataset.MetricColumn(medianAgeStem, "all", "all", "estimates")
	MedianProjectionColumn = dataset.MetricColumn(medianAgeStem, "all", "all", "medium")
)

// MedianRegions is the fixed region set of the median-age chart, in
// legend order.
var MedianRegions = []string{"Asia (UN)", "Europe (UN)", "United States", "Africa (UN)"}

// DefaultRegionColor is the neutral fallback for entities missing
// from the palette. A missing palette entry is cosmetic, never an
// error.
const DefaultRegionColor = lipgloss.Color("#cccccc")

var regionPalette = map[string]lipgloss.Color{
	"Africa (UN)":   "#1f77b4",
	"Asia (UN)":     "#ff7f0e",
	"Europe (UN)":   "#2ca02c",
	"United States": "#d62728",
}

// RegionColor returns the palette color for an entity, or the neutral
// default when the entity has no palette entry.
func RegionColor(entity string) lipgloss.Color {
	if c, ok := regionPalette[entity]; ok {
		return c
	}
	return DefaultRegionColor
}

// MedianBar is one region's combined median age at the selected year.
type MedianBar struct {
	Entity     string
	Value      float64
	Color      lipgloss.Color
	Projection bool
}

// BuildMedianBars shapes the filtered region rows for one year into
// bar records. Rows where neither source column has a value are
// dropped; ok is false when nothing remains.
func BuildMedianBars(rows []dataset.Row, year int) ([]MedianBar, bool) {
	projection := metric.IsProjection(year)
	var bars []MedianBar
	for _, r := range rows {
		v, ok := metric.Combined(r, MedianEstimatesColumn, MedianProjectionColumn)
		if !ok {
			continue
		}
		bars = append(bars, MedianBar{
			Entity:     r.Entity,
			Value:      v,
			Color:      RegionColor(r.Entity),
			Projection: projection,
		})
	}
	if len(bars) == 0 {
		return nil, false
	}
	return bars, true
}

// MaxMedian returns the tallest bar value, for axis scaling.
func MaxMedian(bars []MedianBar) float64 {
	max := 0.0
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
	}
	return max
}
