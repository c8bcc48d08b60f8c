package dataset

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IngestService loads provider CSV exports into the sqlite cache.
// Re-importing the same file is a no-op: every cell gets a
// deterministic row ID, so duplicates are skipped on the unique
// constraint rather than inserted twice.
type IngestService struct {
	DB *sql.DB
}

type IngestResult struct {
	Inserted int
	Skipped  int
	Errors   []error
}

// ImportObservations ingests a wide-format observation CSV. The header
// must start with the entity and year columns; every remaining header
// is a metric column. Empty cells are missing values and produce no
// cache row.
func (s *IngestService) ImportObservations(ctx context.Context, tbl string, r io.Reader) (IngestResult, error) {
	res := IngestResult{}
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1

	header, err := csvr.Read()
	if err != nil {
		return res, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 3 {
		return res, fmt.Errorf("header has %d columns, want entity, year and at least one metric", len(header))
	}
	entityIdx, yearIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "entities", "entity":
			entityIdx = i
		case "years", "year":
			yearIdx = i
		}
	}
	if entityIdx < 0 || yearIdx < 0 {
		return res, fmt.Errorf("header missing entity/year columns: %v", header)
	}

	line := 1
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if len(rec) != len(header) {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %d fields, want %d", line, len(rec), len(header)))
			continue
		}
		entity := strings.TrimSpace(rec[entityIdx])
		year, err := strconv.Atoi(strings.TrimSpace(rec[yearIdx]))
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d year: %w", line, err))
			continue
		}
		if entity == "" {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: empty entity", line))
			continue
		}
		for i, cell := range rec {
			if i == entityIdx || i == yearIdx {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue // missing value, not an error
			}
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				res.Errors = append(res.Errors, fmt.Errorf("line %d col %s: %w", line, header[i], err))
				continue
			}
			col := strings.TrimSpace(header[i])
			s.insertObservation(ctx, &res, tbl, entity, year, col, value)
		}
	}
	return res, nil
}

func (s *IngestService) insertObservation(ctx context.Context, res *IngestResult, tbl, entity string, year int, col string, value float64) {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO observations(id, tbl, entity, year, col, value)
		VALUES(?, ?, ?, ?, ?, ?)
	`, observationID(tbl, entity, year, col), tbl, entity, year, col, value)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			res.Skipped++
			return
		}
		res.Errors = append(res.Errors, fmt.Errorf("insert %s/%s/%d/%s: %w", tbl, entity, year, col, err))
		return
	}
	res.Inserted++
}

// observationID derives a stable identity for one cell so repeated
// imports of the same export dedupe instead of duplicating.
func observationID(tbl, entity string, year int, col string) string {
	key := fmt.Sprintf("%s|%s|%d|%s", tbl, entity, year, col)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

// Region codes used by the census estimates export.
var stateRegionNames = map[string]string{
	"1": "Northeast",
	"2": "Midwest",
	"3": "South",
	"4": "West",
}

const (
	sumLevState    = "40" // state-level summary rows
	fipsPuertoRico = "72"
)

// ImportStates ingests the census state population estimates CSV,
// keeping only state-level rows (SUMLEV 40), dropping Puerto Rico and
// rows without a census region, matching the upstream dashboard's
// load-time filter.
func (s *IngestService) ImportStates(ctx context.Context, r io.Reader) (IngestResult, error) {
	res := IngestResult{}
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1

	header, err := csvr.Read()
	if err != nil {
		return res, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(strings.ToUpper(name))] = i
	}
	for _, want := range []string{"NAME", "STATE", "SUMLEV", "REGION", "POPESTIMATE2010", "POPESTIMATE2019"} {
		if _, ok := idx[want]; !ok {
			return res, fmt.Errorf("header missing %s column", want)
		}
	}

	line := 1
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		field := func(name string) string {
			i := idx[name]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if field("SUMLEV") != sumLevState {
			res.Skipped++
			continue
		}
		fips := field("STATE")
		if fips == fipsPuertoRico {
			res.Skipped++
			continue
		}
		region, ok := stateRegionNames[field("REGION")]
		if !ok {
			res.Skipped++
			continue
		}
		pop2010, err := strconv.ParseFloat(field("POPESTIMATE2010"), 64)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d POPESTIMATE2010: %w", line, err))
			continue
		}
		pop2019, err := strconv.ParseFloat(field("POPESTIMATE2019"), 64)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d POPESTIMATE2019: %w", line, err))
			continue
		}

		_, err = s.DB.ExecContext(ctx, `
			INSERT INTO states(fips, name, region, pop2010, pop2019)
			VALUES(?, ?, ?, ?, ?)
		`, fips, field("NAME"), region, pop2010, pop2019)
		if err != nil {
			if strings.Contains(err.Error(), "UNIQUE") {
				res.Skipped++
				continue
			}
			res.Errors = append(res.Errors, fmt.Errorf("line %d insert: %w", line, err))
			continue
		}
		res.Inserted++
	}
	return res, nil
}
