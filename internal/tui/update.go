package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mbeckr/popviz/internal/chart"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case pyramidTickMsg:
		return m.handlePyramidTick()
	case medianTickMsg:
		return m.handleMedianTick()
	case tea.KeyMsg:
		if m.picker != nil {
			return m.updatePicker(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Animation ticks
// ---------------------------------------------------------------------------
//
// Each tick checks the playing flag on arrival, so a tick scheduled
// before a pause or reset simply expires. While still playing after
// the advance, exactly one successor tick is scheduled.

func (m Model) handlePyramidTick() (tea.Model, tea.Cmd) {
	if !m.pyramidPlayer.Playing() {
		return m, nil
	}
	m.sel.year, m.pyramidPlayer = m.pyramidPlayer.Advance(m.sel.year)
	if m.pyramidPlayer.Playing() {
		return m, pyramidTickCmd(m.pyramidPlayer.Delay)
	}
	m.status = fmt.Sprintf("Reached %d.", m.sel.year)
	return m, nil
}

func (m Model) handleMedianTick() (tea.Model, tea.Cmd) {
	if !m.medianPlayer.Playing() {
		return m, nil
	}
	m.sel.medianYear, m.medianPlayer = m.medianPlayer.Advance(m.sel.medianYear)
	if m.medianPlayer.Playing() {
		return m, medianTickCmd(m.medianPlayer.Delay)
	}
	m.status = fmt.Sprintf("Reached %d.", m.sel.medianYear)
	return m, nil
}

// ---------------------------------------------------------------------------
// Key-input handlers
// ---------------------------------------------------------------------------

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil
	case "shift+tab":
		m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		return m, nil
	case "r":
		return m.reset(), nil
	case " ", "p":
		return m.togglePlay()
	case "left", "h":
		return m.adjustSlider(-1), nil
	case "right", "l":
		return m.adjustSlider(+1), nil
	case "up", "k":
		return m.adjustTopN(+1), nil
	case "down", "j":
		return m.adjustTopN(-1), nil
	case "e":
		if m.activeTab == tabPyramid {
			m.picker = newEntityPicker(m.store.PopulationMale.Entities())
		}
		return m, nil
	case "1", "2", "3", "4":
		return m.toggleRegion(msg.String()), nil
	}
	return m, nil
}

// togglePlay flips the active tab's player. Starting schedules the
// first tick; pausing just clears the flag and lets any in-flight
// tick expire.
func (m Model) togglePlay() (tea.Model, tea.Cmd) {
	switch m.activeTab {
	case tabPyramid:
		m.pyramidPlayer = m.pyramidPlayer.Toggle()
		if m.pyramidPlayer.Playing() {
			m.status = "Playing age distribution."
			return m, pyramidTickCmd(m.pyramidPlayer.Delay)
		}
		m.status = "Paused."
		return m, nil
	case tabMedian:
		m.medianPlayer = m.medianPlayer.Toggle()
		if m.medianPlayer.Playing() {
			m.status = "Playing median age."
			return m, medianTickCmd(m.medianPlayer.Delay)
		}
		m.status = "Paused."
		return m, nil
	}
	return m, nil
}

// adjustSlider moves the year slider of the active tab by delta,
// clamped to its configured bounds.
func (m Model) adjustSlider(delta int) Model {
	switch m.activeTab {
	case tabPyramid:
		m.sel.year = clamp(m.sel.year+delta, m.minYear, m.maxYear)
	case tabMedian:
		m.sel.medianYear = clamp(m.sel.medianYear+delta, medianYearMin, medianYearMax)
	}
	return m
}

func (m Model) adjustTopN(delta int) Model {
	if m.activeTab != tabGrowth {
		return m
	}
	m.sel.topN = clamp(m.sel.topN+delta, topNMin, topNMax)
	return m
}

func (m Model) toggleRegion(digit string) Model {
	if m.activeTab != tabGrowth {
		return m
	}
	idx := int(digit[0] - '1')
	if idx < 0 || idx >= len(chart.StateRegions) {
		return m
	}
	region := chart.StateRegions[idx]
	m.sel.regions[region] = !m.sel.regions[region]
	return m
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.picker = nil
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "up":
		m.picker.cursorUp()
		return m, nil
	case "down":
		m.picker.cursorDown()
		return m, nil
	case "backspace":
		m.picker.backspace()
		return m, nil
	case "enter":
		if entity := m.picker.selected(); entity != "" {
			m.sel.entity = entity
			m.status = fmt.Sprintf("Entity set to %s.", entity)
		}
		m.picker = nil
		return m, nil
	}
	if len(msg.Runes) == 1 && msg.Runes[0] >= ' ' {
		m.picker.typeRune(msg.Runes[0])
	}
	return m, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
