package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// entityPicker is the modal entity selector. Typing narrows the list:
// substring matches rank first, everything else is ordered by edit
// distance so a misspelled query still surfaces the intended entity.
type entityPicker struct {
	items    []string
	filtered []string
	query    string
	cursor   int
}

func newEntityPicker(entities []string) *entityPicker {
	p := &entityPicker{items: append([]string(nil), entities...)}
	p.rebuild()
	return p
}

func (p *entityPicker) setQuery(q string) {
	p.query = q
	p.rebuild()
}

type scoredEntity struct {
	name     string
	contains bool
	distance int
}

func (p *entityPicker) rebuild() {
	q := strings.ToLower(strings.TrimSpace(p.query))
	if q == "" {
		p.filtered = append([]string(nil), p.items...)
		p.clampCursor()
		return
	}

	scored := make([]scoredEntity, 0, len(p.items))
	for _, name := range p.items {
		lower := strings.ToLower(name)
		scored = append(scored, scoredEntity{
			name:     name,
			contains: strings.Contains(lower, q),
			distance: levenshtein.ComputeDistance(q, lower),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].contains != scored[j].contains {
			return scored[i].contains
		}
		if scored[i].distance != scored[j].distance {
			return scored[i].distance < scored[j].distance
		}
		return scored[i].name < scored[j].name
	})

	p.filtered = p.filtered[:0]
	for _, s := range scored {
		p.filtered = append(p.filtered, s.name)
	}
	p.clampCursor()
}

func (p *entityPicker) clampCursor() {
	if p.cursor >= len(p.filtered) {
		p.cursor = len(p.filtered) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *entityPicker) cursorUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *entityPicker) cursorDown() {
	if p.cursor < len(p.filtered)-1 {
		p.cursor++
	}
}

// selected returns the entity under the cursor, or "" when the filter
// matched nothing.
func (p *entityPicker) selected() string {
	if len(p.filtered) == 0 {
		return ""
	}
	return p.filtered[p.cursor]
}

// typeRune appends a printable character to the query.
func (p *entityPicker) typeRune(r rune) {
	p.setQuery(p.query + string(r))
}

// backspace removes the last query character.
func (p *entityPicker) backspace() {
	if p.query == "" {
		return
	}
	runes := []rune(p.query)
	p.setQuery(string(runes[:len(runes)-1]))
}
