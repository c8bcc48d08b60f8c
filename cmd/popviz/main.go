package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mbeckr/popviz/internal/config"
	"github.com/mbeckr/popviz/internal/dataset"
	"github.com/mbeckr/popviz/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := dataset.RunMigrations(cfg.Database.Path, "internal/dataset/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := dataset.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := ingestExports(ctx, db, cfg.Data.Dir); err != nil {
		log.Fatalf("ingest: %v", err)
	}

	store, err := dataset.LoadStore(ctx, db)
	if err != nil {
		log.Fatalf("load store: %v", err)
	}
	if store.PopulationMale.Len() == 0 {
		log.Fatalf("no observations cached; place the provider CSV exports under %s", cfg.Data.Dir)
	}

	p := tea.NewProgram(tui.New(cfg, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "popviz: %v\n", err)
		os.Exit(1)
	}
}

// Provider export filenames under the data directory.
var observationExports = map[string]string{
	"population_male.csv":   dataset.TablePopulationMale,
	"population_female.csv": dataset.TablePopulationFemale,
	"median_age.csv":        dataset.TableMedianAge,
}

const statesExport = "states.csv"

// ingestExports imports whichever provider CSVs are present under dir.
// A missing file is fine: the cache keeps whatever was imported on a
// previous run, and re-importing the same export dedupes to a no-op.
func ingestExports(ctx context.Context, db *sql.DB, dir string) error {
	svc := &dataset.IngestService{DB: db}

	for name, tbl := range observationExports {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		res, err := svc.ImportObservations(ctx, tbl, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}
		logIngest(path, res)
	}

	path := filepath.Join(dir, statesExport)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	res, err := svc.ImportStates(ctx, f)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	logIngest(path, res)
	return nil
}

func logIngest(path string, res dataset.IngestResult) {
	if res.Inserted > 0 || len(res.Errors) > 0 {
		log.Printf("ingest %s: %d inserted, %d skipped, %d errors", path, res.Inserted, res.Skipped, len(res.Errors))
	}
	for _, err := range res.Errors {
		log.Printf("ingest %s: %v", path, err)
	}
}
