package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"perfumevault/internal/compliance"
)

var errNoIngredients = errors.New("formula file has no ingredients")

type formulaFile struct {
	Name         string       `json:"name"`
	IFRACategory string       `json:"ifra_category"`
	Ingredients  []formulaRow `json:"ingredients"`
}

type formulaRow struct {
	Name         string   `json:"name"`
	Weight       float64  `json:"weight"`
	Dilution     *float64 `json:"dilution"`
	IFRALimit    *float64 `json:"ifra_limit"`
	PricePerUnit *float64 `json:"price_per_unit"`
}

// loadFormula reads a formula file. "-" reads standard input.
func loadFormula(path string, stdin io.Reader) (formulaFile, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return formulaFile{}, fmt.Errorf("open formula: %w", err)
		}
		defer file.Close()
		r = file
	}

	var formula formulaFile
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&formula); err != nil {
		return formulaFile{}, fmt.Errorf("decode formula: %w", err)
	}
	if err := formula.validate(); err != nil {
		return formulaFile{}, err
	}
	return formula, nil
}

func (f formulaFile) validate() error {
	if len(f.Ingredients) == 0 {
		return errNoIngredients
	}
	for i, row := range f.Ingredients {
		if strings.TrimSpace(row.Name) == "" {
			return fmt.Errorf("ingredient %d: name is required", i+1)
		}
		if row.Weight < 0 || math.IsNaN(row.Weight) || math.IsInf(row.Weight, 0) {
			return fmt.Errorf("ingredient %q: weight must be a non-negative number", row.Name)
		}
		if row.Dilution != nil && (*row.Dilution < 0 || *row.Dilution > 1) {
			return fmt.Errorf("ingredient %q: dilution must be a fraction between 0 and 1", row.Name)
		}
		if row.IFRALimit != nil && *row.IFRALimit < 0 {
			return fmt.Errorf("ingredient %q: ifra_limit must not be negative", row.Name)
		}
	}
	return nil
}

func (f formulaFile) category() (compliance.CategoryID, error) {
	id := compliance.CategoryID(strings.ToLower(strings.TrimSpace(f.IFRACategory)))
	if id == "" {
		return compliance.DefaultCategory, nil
	}
	if _, ok := compliance.LookupCategory(id); !ok {
		return "", fmt.Errorf("unknown IFRA category %q", f.IFRACategory)
	}
	return id, nil
}

func (f formulaFile) ingredients() []compliance.Ingredient {
	rows := make([]compliance.Ingredient, 0, len(f.Ingredients))
	for _, row := range f.Ingredients {
		rows = append(rows, compliance.Ingredient{
			Name:         strings.TrimSpace(row.Name),
			Weight:       row.Weight,
			Dilution:     row.Dilution,
			IFRALimit:    row.IFRALimit,
			PricePerUnit: row.PricePerUnit,
		})
	}
	return rows
}
