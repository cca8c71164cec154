package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"perfumevault/internal/compliance"
	"perfumevault/internal/config"
	"perfumevault/internal/db"
	"perfumevault/internal/db/mock"
	"perfumevault/internal/ingest"
	applog "perfumevault/internal/log"
	"perfumevault/internal/store"
	"perfumevault/models"
)

var (
	loadConfigFunc = config.Load
	openDatabase   = func(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
		if cfg.UseMock {
			return mock.New(ctx)
		}
		return db.Configure(cfg)
	}
)

type options struct {
	path     string
	name     string
	category string
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: import_formula <csv> [name] [ifra-category]\n%v\n", err)
		os.Exit(2)
	}

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (options, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return options{}, fmt.Errorf("csv path must not be empty")
	}
	opts := options{path: args[0], category: string(compliance.Category4)}
	if len(args) > 1 {
		opts.name = strings.TrimSpace(args[1])
	}
	if len(args) > 2 {
		opts.category = strings.ToLower(strings.TrimSpace(args[2]))
	}
	if opts.name == "" {
		base := filepath.Base(opts.path)
		opts.name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if _, ok := compliance.LookupCategory(compliance.CategoryID(opts.category)); !ok {
		return options{}, fmt.Errorf("unknown IFRA category %q", opts.category)
	}
	return opts, nil
}

func run(ctx context.Context, opts options, out io.Writer) error {
	file, err := os.Open(opts.path)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	records, err := ingest.ReadCSV(file)
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}
	lines, err := ingest.LinesFromRecords(records)
	if err != nil {
		return fmt.Errorf("parse csv: %w", err)
	}

	cfg, err := loadConfigFunc()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applog.SetLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}

	database, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	st := store.New(database)
	materials, err := st.Materials(ctx)
	if err != nil {
		return err
	}

	ingredients, unmatched := ingest.Resolve(materials, lines)
	for _, name := range unmatched {
		applog.Warn(ctx, "ingredient not in catalog", "name", name)
	}
	if len(ingredients) == 0 {
		return fmt.Errorf("none of the %d ingredients matched the catalog", len(lines))
	}

	formula := models.Formula{
		Name:         opts.name,
		IFRACategory: opts.category,
		Status:       models.FormulaStatusDraft,
		Ingredients:  ingredients,
	}
	if err := st.CreateFormula(ctx, &formula); err != nil {
		return err
	}

	fmt.Fprintf(out, "Imported formula %q (#%d) with %d ingredients from %s\n", formula.Name, formula.ID, len(ingredients), filepath.Base(opts.path))
	if len(unmatched) > 0 {
		fmt.Fprintf(out, "Skipped %d unmatched: %s\n", len(unmatched), strings.Join(unmatched, ", "))
	}
	return nil
}
