package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mbeckr/popviz/internal/chart"
	"github.com/mbeckr/popviz/internal/metric"
)

func (m Model) View() string {
	header := renderHeader(m.activeTab, m.width)

	var body string
	switch m.activeTab {
	case tabPyramid:
		body = m.viewPyramid()
	case tabMedian:
		body = m.viewMedian()
	case tabGrowth:
		body = m.viewGrowth()
	}

	base := header + "\n\n" + body
	statusLine := m.renderStatus(m.status)

	if m.picker != nil {
		footer := m.renderFooter(m.pickerKeys.shortHelp())
		return m.composeModal(base, statusLine, footer)
	}
	footer := m.renderFooter(m.keys.shortHelpFor(m.activeTab))
	return m.placeWithFooter(base, statusLine, footer)
}

// ---------------------------------------------------------------------------
// Age pyramid tab
// ---------------------------------------------------------------------------

func (m Model) viewPyramid() string {
	title := fmt.Sprintf("Population by age — %s, %d", m.sel.entity, m.sel.year)
	if m.pyramidPlayer.Playing() {
		title += "  " + playBadgeStyle.Render("▶ playing")
	}

	var b strings.Builder
	b.WriteString(m.renderSliderLine(m.sel.year, m.minYear, m.maxYear))
	b.WriteString("  " + playBadgeStyle.Render("["+m.pyramidPlayer.Label()+"]"))
	b.WriteString("\n\n")

	maleRows := m.store.PopulationMale.FilterEntityYear(m.sel.entity, m.sel.year)
	femaleRows := m.store.PopulationFemale.FilterEntityYear(m.sel.entity, m.sel.year)
	records, ok := chart.BuildPyramid(maleRows, femaleRows, m.brackets)
	if !ok {
		b.WriteString(placeholderStyle.Render(chart.NoDataPlaceholder))
		return m.renderSection(title, b.String())
	}

	const labelWidth = 7
	const valueWidth = 6
	half := (m.sectionContentWidth() - labelWidth - 2*valueWidth - 4) / 2
	if half < 10 {
		half = 10
	}
	max := chart.MaxMagnitude(records)

	legend := lipgloss.NewStyle().Foreground(colorMaleSeries).Render("Male") +
		barLabelStyle.Render(" ◀  population (millions)  ▶ ") +
		lipgloss.NewStyle().Foreground(colorFemaleSeries).Render("Female")
	b.WriteString(legend)
	b.WriteString("\n")

	// Oldest bracket on top, mirrored around the bracket-label axis.
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		maleMag := chart.Magnitude(r.Male)
		maleCells := barCells(maleMag, max, half)
		femaleCells := barCells(r.Female, max, half)

		line := barValueStyle.Render(padLeft(fmt.Sprintf("%.1f", maleMag), valueWidth)) + " " +
			renderBarLeft(maleCells, half, colorMaleSeries) + " " +
			barLabelStyle.Render(padLeft(r.Label, labelWidth-2)) + "  " +
			renderBar(femaleCells, half, colorFemaleSeries) + " " +
			barValueStyle.Render(padRight(fmt.Sprintf("%.1f", r.Female), valueWidth))
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Axis ticks: magnitudes on both sides of the mirror.
	leftTick := chart.AxisTickLabel(-max)
	rightTick := chart.AxisTickLabel(max)
	axis := padLeft(leftTick, valueWidth+1) +
		padLeft("0", half+labelWidth/2+1) +
		padLeft(rightTick, half+labelWidth/2+2)
	b.WriteString(axisStyle.Render(axis))

	return m.renderSection(title, b.String())
}

// ---------------------------------------------------------------------------
// Median age tab
// ---------------------------------------------------------------------------

func (m Model) viewMedian() string {
	title := fmt.Sprintf("Median age by region — %d", m.sel.medianYear)
	if m.medianPlayer.Playing() {
		title += "  " + playBadgeStyle.Render("▶ playing")
	}

	var b strings.Builder
	b.WriteString(m.renderSliderLine(m.sel.medianYear, medianYearMin, medianYearMax))
	b.WriteString("  " + playBadgeStyle.Render("["+m.medianPlayer.Label()+"]"))
	b.WriteString("\n")
	if metric.IsProjection(m.sel.medianYear) {
		b.WriteString(projNoteStyle.Render("Projected (UN medium variant)"))
	} else {
		b.WriteString(histNoteStyle.Render("Historical estimates"))
	}
	b.WriteString("\n\n")

	rows := m.store.MedianAge.FilterEntitiesYear(chart.MedianRegions, m.sel.medianYear)
	bars, ok := chart.BuildMedianBars(rows, m.sel.medianYear)
	if !ok {
		b.WriteString(placeholderStyle.Render(chart.NoDataPlaceholder))
		return m.renderSection(title, b.String())
	}

	const labelWidth = 15
	barWidth := m.sectionContentWidth() - labelWidth - 14
	if barWidth < 10 {
		barWidth = 10
	}
	max := chart.MaxMedian(bars)

	for _, bar := range bars {
		value := fmt.Sprintf("%.1f", bar.Value)
		if bar.Projection {
			value += " (proj.)"
		}
		// Projected bars render dimmed, the original's alpha drop.
		barStyle := lipgloss.NewStyle().Foreground(bar.Color)
		if bar.Projection {
			barStyle = barStyle.Faint(true)
		}
		filled := barCells(bar.Value, max, barWidth)
		rendered := barStyle.Render(strings.Repeat("█", filled))
		if barWidth > filled {
			rendered += barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
		}
		line := barLabelStyle.Render(padRight(truncate(bar.Entity, labelWidth), labelWidth)) + " " +
			rendered + " " +
			barValueStyle.Render(value)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return m.renderSection(title, strings.TrimRight(b.String(), "\n"))
}

// ---------------------------------------------------------------------------
// State growth tab
// ---------------------------------------------------------------------------

func (m Model) viewGrowth() string {
	title := fmt.Sprintf("US state population growth 2010–2019 — top %d", m.sel.topN)

	var b strings.Builder
	var chips []string
	for i, region := range chart.StateRegions {
		chip := fmt.Sprintf("[%d] %s", i+1, region)
		if m.sel.regions[region] {
			chips = append(chips, regionOnStyle.Render("● "+chip))
		} else {
			chips = append(chips, regionOffStyle.Render("○ "+chip))
		}
	}
	b.WriteString(strings.Join(chips, "  "))
	b.WriteString("\n\n")

	bars := chart.BuildGrowthBars(m.store.States, m.sel.regions, m.sel.topN)
	if len(bars) == 0 {
		b.WriteString(placeholderStyle.Render(chart.NoDataPlaceholder))
		return m.renderSection(title, b.String())
	}

	if mean, ok := chart.MeanGrowth(m.store.States, m.sel.regions); ok {
		b.WriteString(barLabelStyle.Render("Mean growth across selected regions: ") +
			barValueStyle.Render(chart.FormatGrowth(mean)))
		b.WriteString("\n\n")
	}

	const labelWidth = 15
	barWidth := m.sectionContentWidth() - labelWidth - 10
	if barWidth < 10 {
		barWidth = 10
	}
	max := 0.0
	for _, bar := range bars {
		if mag := chart.Magnitude(bar.Change); mag > max {
			max = mag
		}
	}

	for _, bar := range bars {
		line := barLabelStyle.Render(padRight(truncate(bar.Name, labelWidth), labelWidth)) + " " +
			renderBar(barCells(chart.Magnitude(bar.Change), max, barWidth), barWidth, bar.Color) + " " +
			barValueStyle.Render(chart.FormatGrowth(bar.Change))
		b.WriteString(line)
		b.WriteString("\n")
	}

	return m.renderSection(title, strings.TrimRight(b.String(), "\n"))
}

// ---------------------------------------------------------------------------
// Shared pieces
// ---------------------------------------------------------------------------

// renderSliderLine draws the year track with a positioned thumb.
func (m Model) renderSliderLine(year, lo, hi int) string {
	trackWidth := m.sectionContentWidth() - 18
	if trackWidth < 10 {
		trackWidth = 10
	}
	pos := 0
	if hi > lo {
		pos = (year - lo) * (trackWidth - 1) / (hi - lo)
	}
	track := strings.Repeat("─", pos) + "●" + strings.Repeat("─", trackWidth-1-pos)
	return barLabelStyle.Render(fmt.Sprintf("%d ", lo)) +
		axisStyle.Render(track) +
		barLabelStyle.Render(fmt.Sprintf(" %d", hi)) +
		cursorStyle.Render(fmt.Sprintf("  %d", year))
}

const pickerVisible = 10

func (m Model) pickerView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select entity"))
	b.WriteString("\n")
	b.WriteString(helpKeyStyle.Render("> ") + m.picker.query + cursorStyle.Render("▌"))
	b.WriteString("\n\n")

	if len(m.picker.filtered) == 0 {
		b.WriteString(placeholderStyle.Render("No matches"))
		return b.String()
	}

	top := m.picker.cursor - pickerVisible/2
	if top > len(m.picker.filtered)-pickerVisible {
		top = len(m.picker.filtered) - pickerVisible
	}
	if top < 0 {
		top = 0
	}
	end := top + pickerVisible
	if end > len(m.picker.filtered) {
		end = len(m.picker.filtered)
	}
	for i := top; i < end; i++ {
		name := truncate(m.picker.filtered[i], 38)
		if i == m.picker.cursor {
			b.WriteString(cursorStyle.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
