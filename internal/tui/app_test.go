package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mbeckr/popviz/internal/chart"
	"github.com/mbeckr/popviz/internal/config"
	"github.com/mbeckr/popviz/internal/dataset"
)

func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func testStore() *dataset.Store {
	maleRows := []dataset.Row{
		{Entity: "World", Year: 1950, Values: map[string]float64{
			"population__sex_male__age_0_4__variant_estimates":     2_000_000,
			"population__sex_male__age_100plus__variant_estimates": 10_000,
		}},
		{Entity: "World", Year: 1951, Values: map[string]float64{
			"population__sex_male__age_0_4__variant_estimates": 2_100_000,
		}},
		{Entity: "India", Year: 1950, Values: map[string]float64{
			"population__sex_male__age_0_4__variant_estimates": 900_000,
		}},
	}
	femaleRows := []dataset.Row{
		{Entity: "World", Year: 1950, Values: map[string]float64{
			"population__sex_female__age_0_4__variant_estimates":     1_900_000,
			"population__sex_female__age_100plus__variant_estimates": 30_000,
		}},
		{Entity: "World", Year: 1951, Values: map[string]float64{
			"population__sex_female__age_0_4__variant_estimates": 1_950_000,
		}},
	}
	medianRows := []dataset.Row{
		{Entity: "Asia (UN)", Year: 1950, Values: map[string]float64{
			chart.MedianEstimatesColumn: 22.2,
		}},
	}
	return &dataset.Store{
		PopulationMale:   dataset.NewTable(dataset.TablePopulationMale, maleRows),
		PopulationFemale: dataset.NewTable(dataset.TablePopulationFemale, femaleRows),
		MedianAge:        dataset.NewTable(dataset.TableMedianAge, medianRows),
		States: []dataset.StateRow{
			{FIPS: "48", Name: "Texas", Region: "South", Pop2010: 100, Pop2019: 115},
		},
	}
}

func testConfig() config.Config {
	return config.Config{
		UI: config.UIConfig{DefaultEntity: "World"},
		Animation: config.AnimationConfig{
			PyramidTickMs: 50,
			MedianTickMs:  250,
		},
	}
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func TestNewDerivesBoundsFromData(t *testing.T) {
	m := New(testConfig(), testStore())
	if m.minYear != 1950 || m.maxYear != 1951 {
		t.Errorf("bounds = [%d, %d], want [1950, 1951]", m.minYear, m.maxYear)
	}
	if m.sel.entity != "World" || m.sel.year != 1950 {
		t.Errorf("selection = %+v", m.sel)
	}
	if len(m.brackets) != 2 {
		t.Errorf("got %d brackets, want 2", len(m.brackets))
	}
}

func TestPyramidTickAdvancesAndStopsAtBound(t *testing.T) {
	m := New(testConfig(), testStore())

	m = apply(t, m, keyMsg(" "))
	if !m.pyramidPlayer.Playing() {
		t.Fatal("space did not start the pyramid loop")
	}

	// First tick advances 1950 → 1951 and, at the data bound, stops.
	m = apply(t, m, pyramidTickMsg(time.Now()))
	if m.sel.year != 1951 {
		t.Errorf("year = %d, want 1951", m.sel.year)
	}
	if m.pyramidPlayer.Playing() {
		t.Error("player still playing past the bound")
	}

	// A stale tick after the stop changes nothing.
	m = apply(t, m, pyramidTickMsg(time.Now()))
	if m.sel.year != 1951 {
		t.Errorf("stale tick moved year to %d", m.sel.year)
	}
}

func TestPauseLetsInFlightTickExpire(t *testing.T) {
	m := New(testConfig(), testStore())
	m = apply(t, m, keyMsg(" "))
	m = apply(t, m, keyMsg(" ")) // pause before any tick lands
	if m.pyramidPlayer.Playing() {
		t.Fatal("second space did not pause")
	}
	m = apply(t, m, pyramidTickMsg(time.Now()))
	if m.sel.year != 1950 {
		t.Errorf("tick after pause moved year to %d", m.sel.year)
	}
}

func TestResetRestoresDefaultsAndStopsPlayers(t *testing.T) {
	m := New(testConfig(), testStore())
	m = apply(t, m, keyMsg(" "))
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m.activeTab = tabGrowth
	m = apply(t, m, keyMsg("1")) // toggle Northeast off
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m = apply(t, m, keyMsg("r"))
	if m.sel.entity != "World" || m.sel.year != 1950 {
		t.Errorf("selection after reset = %+v", m.sel)
	}
	if m.sel.topN != topNMax {
		t.Errorf("topN = %d, want %d", m.sel.topN, topNMax)
	}
	for _, r := range chart.StateRegions {
		if !m.sel.regions[r] {
			t.Errorf("region %s deselected after reset", r)
		}
	}
	if m.pyramidPlayer.Playing() || m.medianPlayer.Playing() {
		t.Error("players still playing after reset")
	}
}

func TestSliderClamping(t *testing.T) {
	m := New(testConfig(), testStore())
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.sel.year != 1950 {
		t.Errorf("year below data minimum: %d", m.sel.year)
	}
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.sel.year != 1951 {
		t.Errorf("year above data maximum: %d", m.sel.year)
	}
}

func TestTopNClamping(t *testing.T) {
	m := New(testConfig(), testStore())
	m.activeTab = tabGrowth
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.sel.topN != topNMax {
		t.Errorf("topN above max: %d", m.sel.topN)
	}
	for i := 0; i < 100; i++ {
		m = apply(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.sel.topN != topNMin {
		t.Errorf("topN below min: %d", m.sel.topN)
	}
}

func TestTabCycling(t *testing.T) {
	m := New(testConfig(), testStore())
	for i := 0; i < tabCount; i++ {
		if m.activeTab != i {
			t.Fatalf("activeTab = %d, want %d", m.activeTab, i)
		}
		m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.activeTab != 0 {
		t.Errorf("tab did not wrap: %d", m.activeTab)
	}
}

func TestViewRendersNoDataPlaceholder(t *testing.T) {
	m := New(testConfig(), testStore())
	m.sel.entity = "Atlantis"
	view := m.View()
	if !strings.Contains(view, chart.NoDataPlaceholder) {
		t.Error("view missing the no-data placeholder for an absent entity")
	}
}

func TestViewRendersHeaderTabs(t *testing.T) {
	m := New(testConfig(), testStore())
	view := m.View()
	for _, name := range tabNames {
		if !strings.Contains(view, name) {
			t.Errorf("view missing tab name %q", name)
		}
	}
}

func TestEntityPickerFlow(t *testing.T) {
	m := New(testConfig(), testStore())
	m = apply(t, m, keyMsg("e"))
	if m.picker == nil {
		t.Fatal("picker did not open")
	}
	m = apply(t, m, keyMsg("i"))
	m = apply(t, m, keyMsg("n"))
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.picker != nil {
		t.Error("picker still open after enter")
	}
	if m.sel.entity != "India" {
		t.Errorf("entity = %q, want India", m.sel.entity)
	}
}

func TestEntityPickerEscCancels(t *testing.T) {
	m := New(testConfig(), testStore())
	m = apply(t, m, keyMsg("e"))
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.picker != nil {
		t.Error("picker still open after esc")
	}
	if m.sel.entity != "World" {
		t.Errorf("esc changed entity to %q", m.sel.entity)
	}
}
