package tui

import "testing"

var pickerEntities = []string{"World", "India", "Indonesia", "United States", "Germany"}

func TestPickerEmptyQueryKeepsAll(t *testing.T) {
	p := newEntityPicker(pickerEntities)
	if len(p.filtered) != len(pickerEntities) {
		t.Errorf("got %d items, want %d", len(p.filtered), len(pickerEntities))
	}
}

func TestPickerSubstringRanksFirst(t *testing.T) {
	p := newEntityPicker(pickerEntities)
	p.setQuery("ind")
	if len(p.filtered) == 0 {
		t.Fatal("no matches")
	}
	// Both substring matches must rank ahead of everything else.
	if p.filtered[0] != "India" || p.filtered[1] != "Indonesia" {
		t.Errorf("top matches = %v", p.filtered[:2])
	}
}

func TestPickerTypoStillSurfacesEntity(t *testing.T) {
	p := newEntityPicker(pickerEntities)
	p.setQuery("germny")
	if len(p.filtered) == 0 {
		t.Fatal("no matches")
	}
	if p.filtered[0] != "Germany" {
		t.Errorf("top match for misspelled query = %q, want Germany", p.filtered[0])
	}
}

func TestPickerBackspace(t *testing.T) {
	p := newEntityPicker(pickerEntities)
	p.typeRune('x')
	p.typeRune('y')
	p.backspace()
	if p.query != "x" {
		t.Errorf("query = %q, want x", p.query)
	}
	p.backspace()
	p.backspace() // backspace on empty query is a no-op
	if p.query != "" {
		t.Errorf("query = %q, want empty", p.query)
	}
}

func TestPickerCursorClamping(t *testing.T) {
	p := newEntityPicker(pickerEntities)
	p.cursor = len(pickerEntities) - 1
	p.cursorDown()
	if p.cursor != len(pickerEntities)-1 {
		t.Errorf("cursor past end: %d", p.cursor)
	}
	p.setQuery("world") // narrowing clamps the cursor back in range
	if p.cursor >= len(p.filtered) {
		t.Errorf("cursor %d out of range of %d items", p.cursor, len(p.filtered))
	}
	p.cursorUp()
	p.cursorUp()
	if p.cursor != 0 {
		t.Errorf("cursor below zero: %d", p.cursor)
	}
}
