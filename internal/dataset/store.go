package dataset

import (
	"context"
	"database/sql"
	"fmt"
)

// Cache table names for the three observation datasets.
const (
	TablePopulationMale   = "population_male"
	TablePopulationFemale = "population_female"
	TableMedianAge        = "median_age"
)

// Store holds every loaded table for the lifetime of a session. It is
// populated once at startup and read-only afterwards.
type Store struct {
	PopulationMale   *Table
	PopulationFemale *Table
	MedianAge        *Table
	States           []StateRow
}

// LoadStore reads all cached observations and state rows into
// immutable in-memory tables.
func LoadStore(ctx context.Context, db *sql.DB) (*Store, error) {
	st := &Store{}

	var err error
	if st.PopulationMale, err = loadTable(ctx, db, TablePopulationMale); err != nil {
		return nil, err
	}
	if st.PopulationFemale, err = loadTable(ctx, db, TablePopulationFemale); err != nil {
		return nil, err
	}
	if st.MedianAge, err = loadTable(ctx, db, TableMedianAge); err != nil {
		return nil, err
	}
	if st.States, err = loadStates(ctx, db); err != nil {
		return nil, err
	}
	return st, nil
}

func loadTable(ctx context.Context, db *sql.DB, tbl string) (*Table, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT entity, year, col, value
		FROM observations
		WHERE tbl = ?
		ORDER BY entity, year, col
	`, tbl)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", tbl, err)
	}
	defer rows.Close()

	var out []Row
	var cur *Row
	for rows.Next() {
		var entity, col string
		var year int
		var value float64
		if err := rows.Scan(&entity, &year, &col, &value); err != nil {
			return nil, fmt.Errorf("load %s: %w", tbl, err)
		}
		if cur == nil || cur.Entity != entity || cur.Year != year {
			out = append(out, Row{Entity: entity, Year: year, Values: make(map[string]float64)})
			cur = &out[len(out)-1]
		}
		cur.Values[col] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", tbl, err)
	}
	return NewTable(tbl, out), nil
}

func loadStates(ctx context.Context, db *sql.DB) ([]StateRow, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT fips, name, region, pop2010, pop2019
		FROM states
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("load states: %w", err)
	}
	defer rows.Close()

	var out []StateRow
	for rows.Next() {
		var s StateRow
		if err := rows.Scan(&s.FIPS, &s.Name, &s.Region, &s.Pop2010, &s.Pop2019); err != nil {
			return nil, fmt.Errorf("load states: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
