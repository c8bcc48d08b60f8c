package chart

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/mbeckr/popviz/internal/dataset"
	"github.com/mbeckr/popviz/internal/metric"
)

// NoDataPlaceholder is rendered wherever a filter produced an empty
// subset. An empty subset is a valid state, never an error.
const NoDataPlaceholder = "No data available for the selected combination"

// StateRegions lists the census regions in control order.
var StateRegions = []string{"Northeast", "Midwest", "South", "West"}

var stateRegionPalette = map[string]lipgloss.Color{
	"Northeast": "#ffeb00",
	"Midwest":   "#228B22",
	"South":     "#4169E1",
	"West":      "#FFA500",
}

// StateRegionColor returns the palette color for a census region,
// falling back to the neutral default.
func StateRegionColor(region string) lipgloss.Color {
	if c, ok := stateRegionPalette[region]; ok {
		return c
	}
	return DefaultRegionColor
}

// GrowthBar is one state's 2010→2019 percent population change.
type GrowthBar struct {
	Name   string
	Region string
	Change float64
	Color  lipgloss.Color
}

// BuildGrowthBars filters states to the selected regions, derives the
// percent change, keeps the top-N largest changes, and orders the
// survivors ascending for display (smallest change first, largest bar
// at the bottom of the chart). An empty region selection yields an
// empty result.
func BuildGrowthBars(states []dataset.StateRow, regions map[string]bool, topN int) []GrowthBar {
	var bars []GrowthBar
	for _, s := range states {
		if !regions[s.Region] {
			continue
		}
		change, ok := metric.PercentChange(s.Pop2010, s.Pop2019)
		if !ok {
			continue
		}
		bars = append(bars, GrowthBar{
			Name:   s.Name,
			Region: s.Region,
			Change: change,
			Color:  StateRegionColor(s.Region),
		})
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Change > bars[j].Change })
	if topN >= 0 && len(bars) > topN {
		bars = bars[:topN]
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Change < bars[j].Change })
	return bars
}

// MeanGrowth returns the mean percent change over the region-filtered
// subset (not just the top-N slice, matching the value box upstream).
// ok is false for an empty subset.
func MeanGrowth(states []dataset.StateRow, regions map[string]bool) (float64, bool) {
	var changes []float64
	for _, s := range states {
		if !regions[s.Region] {
			continue
		}
		change, ok := metric.PercentChange(s.Pop2010, s.Pop2019)
		if !ok {
			continue
		}
		changes = append(changes, change)
	}
	return metric.MeanOf(changes)
}

// FormatGrowth renders a percent change with one decimal, e.g. "3.4%".
func FormatGrowth(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
