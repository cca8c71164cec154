package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// Header aliases accepted by LinesFromRecords.
var (
	nameColumns     = []string{"name", "ingredient", "material"}
	casColumns      = []string{"cas", "cas_number", "cas number", "cas no"}
	weightColumns   = []string{"weight", "amount", "quantity"}
	unitColumns     = []string{"unit", "units"}
	dilutionColumns = []string{"dilution", "dilution %", "concentration", "strength"}
	diluentColumns  = []string{"diluent", "solvent"}
)

// ReadCSV reads a CSV document into one map per row keyed by the lower-cased header.
func ReadCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.New("csv is empty")
	}

	header := make([]string, len(rows[0]))
	for i, key := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(key))
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		record := make(map[string]string, len(header))
		for idx, key := range header {
			if idx >= len(row) {
				continue
			}
			record[key] = strings.TrimSpace(row[idx])
		}
		records = append(records, record)
	}

	return records, nil
}

// LinesFromRecords converts CSV rows into ingredient lines. Dilution columns hold a
// percentage ("10" or "10%"). Rows without a name or a positive weight are skipped.
func LinesFromRecords(records []map[string]string) ([]Line, error) {
	lines := make([]Line, 0, len(records))
	for _, record := range records {
		name := normalizeText(column(record, nameColumns))
		weight := toGrams(parseFirstNumber(column(record, weightColumns)), strings.TrimSpace(column(record, unitColumns)))
		if name == "" || weight <= 0 {
			continue
		}

		line := Line{
			Name:    name,
			CAS:     normalizeValue(column(record, casColumns)),
			Weight:  weight,
			Diluent: normalizeText(column(record, diluentColumns)),
		}
		if raw := normalizeValue(column(record, dilutionColumns)); raw != "" {
			line.Dilution = dilutionFromPercent(parseFirstNumber(raw))
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, ErrNoIngredients
	}
	return lines, nil
}

func column(record map[string]string, keys []string) string {
	for _, key := range keys {
		if value, ok := record[key]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
