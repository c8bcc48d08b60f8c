package dataset

import (
	"sort"
	"strings"
)

// Row is a single observation keyed by (entity, year). Values maps
// metric column names to values; a column missing from the map means
// the source cell was empty (the provider's NaN).
type Row struct {
	Entity string
	Year   int
	Values map[string]float64
}

// Value returns the named metric and whether it is present.
func (r Row) Value(col string) (float64, bool) {
	v, ok := r.Values[col]
	return v, ok
}

// Table is an immutable in-memory observation table. It is built once
// at load and never mutated afterwards, so it is safe to share without
// locking; callers must treat returned rows as read-only.
type Table struct {
	name     string
	rows     []Row
	columns  []string
	entities []string
	minYear  int
	maxYear  int
}

// NewTable builds a table from rows, indexing the distinct entities,
// the year bounds and the union of metric columns.
func NewTable(name string, rows []Row) *Table {
	t := &Table{name: name, rows: append([]Row(nil), rows...)}

	entitySet := make(map[string]bool)
	columnSet := make(map[string]bool)
	for i, r := range t.rows {
		entitySet[r.Entity] = true
		for col := range r.Values {
			columnSet[col] = true
		}
		if i == 0 || r.Year < t.minYear {
			t.minYear = r.Year
		}
		if i == 0 || r.Year > t.maxYear {
			t.maxYear = r.Year
		}
	}
	for e := range entitySet {
		t.entities = append(t.entities, e)
	}
	sort.Strings(t.entities)
	for c := range columnSet {
		t.columns = append(t.columns, c)
	}
	sort.Strings(t.columns)
	return t
}

func (t *Table) Name() string { return t.name }
func (t *Table) Len() int     { return len(t.rows) }

// Entities returns the distinct entities in sorted order.
func (t *Table) Entities() []string {
	return append([]string(nil), t.entities...)
}

// YearBounds returns the minimum and maximum observed year. ok is
// false for an empty table.
func (t *Table) YearBounds() (min, max int, ok bool) {
	if len(t.rows) == 0 {
		return 0, 0, false
	}
	return t.minYear, t.maxYear, true
}

// FilterEntityYear returns the rows matching both entity and year
// exactly. A zero-row result is a valid outcome, not an error; the
// caller renders it as an explicit "no data" state.
func (t *Table) FilterEntityYear(entity string, year int) []Row {
	var out []Row
	for _, r := range t.rows {
		if r.Entity == entity && r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// FilterEntitiesYear returns the rows for the given year whose entity
// is in the set, preserving the order of entities as given (matching
// chart legend order rather than table order).
func (t *Table) FilterEntitiesYear(entities []string, year int) []Row {
	var out []Row
	for _, e := range entities {
		out = append(out, t.FilterEntityYear(e, year)...)
	}
	return out
}

// BracketKeys returns the parsed metric keys for every column of this
// table with the given stem, sex and variant, sorted in bracket
// display order. Columns that do not parse are skipped.
func (t *Table) BracketKeys(stem, sex, variant string) []MetricKey {
	prefix := stem + "__" + sexSegmentPrefix + sex + "__"
	var keys []MetricKey
	for _, col := range t.columns {
		if !strings.HasPrefix(col, prefix) {
			continue
		}
		k, err := ParseMetricKey(col)
		if err != nil || k.Variant != variant || k.Bracket.Raw == "all" {
			continue
		}
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].Bracket.SortKey() < keys[j].Bracket.SortKey()
	})
	return keys
}

// StateRow is one US state in the intercensal estimates table, already
// reduced at ingest to state-level rows with a mapped region name.
type StateRow struct {
	FIPS    string
	Name    string
	Region  string
	Pop2010 float64
	Pop2019 float64
}
