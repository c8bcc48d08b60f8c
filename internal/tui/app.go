// Package tui is the session controller: it owns the selection state
// and the two animation players, and runs every recomputation through
// bubbletea's single update queue, so a scheduled tick never races a
// user-initiated change.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mbeckr/popviz/internal/anim"
	"github.com/mbeckr/popviz/internal/chart"
	"github.com/mbeckr/popviz/internal/config"
	"github.com/mbeckr/popviz/internal/dataset"
)

const appName = "Popviz"

// Tab indices
const (
	tabPyramid = 0
	tabMedian  = 1
	tabGrowth  = 2
	tabCount   = 3
)

// Median-year slider bounds and the top-N slider bounds, fixed by the
// source dashboards.
const (
	medianYearMin = 1950
	medianYearMax = 2100
	topNMin       = 5
	topNMax       = 51
)

// selection is the current control state driving every filter. It is
// owned by the model; the dataset, metric and chart packages only ever
// read it.
type selection struct {
	entity     string
	year       int
	medianYear int
	regions    map[string]bool
	topN       int
}

func defaultSelection(defaultEntity string, minYear int) selection {
	regions := make(map[string]bool, len(chart.StateRegions))
	for _, r := range chart.StateRegions {
		regions[r] = true
	}
	return selection{
		entity:     defaultEntity,
		year:       minYear,
		medianYear: medianYearMin,
		regions:    regions,
		topN:       topNMax,
	}
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type pyramidTickMsg time.Time

type medianTickMsg time.Time

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is the bubbletea model for the dashboard session.
type Model struct {
	cfg   config.Config
	store *dataset.Store

	status    string
	activeTab int
	width     int
	height    int

	sel           selection
	pyramidPlayer anim.Player
	medianPlayer  anim.Player

	keys       keyMap
	pickerKeys pickerKeyMap
	picker     *entityPicker

	// derived once at startup from the population table
	brackets    []dataset.Bracket
	minYear     int
	maxYear     int
	defaultYear int
}

// New builds the model from a loaded store. The pyramid loop's bound
// is the data's max year; the median loop's bound is the fixed slider
// max.
func New(cfg config.Config, store *dataset.Store) Model {
	minYear, maxYear, ok := store.PopulationMale.YearBounds()
	if !ok {
		minYear, maxYear = medianYearMin, medianYearMin
	}
	defaultYear := medianYearMin
	if defaultYear < minYear || defaultYear > maxYear {
		defaultYear = minYear
	}

	var brackets []dataset.Bracket
	for _, k := range store.PopulationMale.BracketKeys("population", chart.SexMale, "estimates") {
		brackets = append(brackets, k.Bracket)
	}

	return Model{
		cfg:           cfg,
		store:         store,
		status:        "Ready. Press tab to switch views, space to play.",
		sel:           defaultSelection(cfg.UI.DefaultEntity, defaultYear),
		pyramidPlayer: anim.New(cfg.PyramidTickDelay(), maxYear),
		medianPlayer:  anim.New(cfg.MedianTickDelay(), medianYearMax),
		keys:          newKeyMap(),
		pickerKeys:    newPickerKeyMap(),
		brackets:      brackets,
		minYear:       minYear,
		maxYear:       maxYear,
		defaultYear:   defaultYear,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// reset restores the documented selection defaults and hard-stops both
// animation loops regardless of their prior state.
func (m Model) reset() Model {
	m.sel = defaultSelection(m.cfg.UI.DefaultEntity, m.defaultYear)
	m.pyramidPlayer = m.pyramidPlayer.Stop()
	m.medianPlayer = m.medianPlayer.Stop()
	m.picker = nil
	m.status = "Filters reset."
	return m
}

func pyramidTickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return pyramidTickMsg(t)
	})
}

func medianTickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return medianTickMsg(t)
	})
}
