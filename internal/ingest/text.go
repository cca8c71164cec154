// Package ingest turns formula documents (plain text, PDF or CSV) into ingredient lines
// and resolves them against the material catalog.
package ingest

import (
	"bufio"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoIngredients is returned when a document yields no usable ingredient line.
var ErrNoIngredients = errors.New("ingest: no ingredient lines found")

var (
	casPattern      = regexp.MustCompile(`\b\d{2,7}-\d{2}-\d\b`)
	percentPattern  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	diluentPattern  = regexp.MustCompile(`(?i)\bin\s+([a-z][a-z ]*?)\s*$`)
	quantityPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(mg|kg|grams?|g)?\b`)
	separators      = strings.NewReplacer("\t", " ", ";", " ", "|", " ", ",", " ")
	cleanWhitespace = regexp.MustCompile(`\s+`)
	numberPattern   = regexp.MustCompile(`[-+]?\d*\.?\d+`)
)

// Line is one ingredient read from a document. Weight is in grams; Dilution is the
// fraction of pure material and nil when the material is used neat.
type Line struct {
	Name     string
	CAS      string
	Weight   float64
	Dilution *float64
	Diluent  string
}

// ParseText reads one ingredient per line, for example "Hedione 300 g" or
// "Ambroxan 6790-58-5, 50 g, 10% in DPG". Lines without a quantity are skipped.
// Decimal separators must be dots.
func ParseText(text string) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line, ok := parseLine(scanner.Text())
		if ok {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNoIngredients
	}
	return lines, nil
}

func parseLine(raw string) (Line, bool) {
	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, "#") {
		return Line{}, false
	}

	var line Line
	if cas := casPattern.FindString(text); cas != "" {
		line.CAS = cas
		text = strings.Replace(text, cas, " ", 1)
	}

	text = separators.Replace(text)

	if loc := percentPattern.FindStringSubmatchIndex(text); loc != nil {
		line.Dilution = dilutionFromPercent(parseFirstNumber(text[loc[2]:loc[3]]))
		rest := text[loc[1]:]
		if m := diluentPattern.FindStringSubmatchIndex(rest); m != nil {
			line.Diluent = normalizeText(rest[m[2]:m[3]])
			rest = rest[:m[0]]
		}
		text = text[:loc[0]] + " " + rest
	}

	matches := quantityPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return Line{}, false
	}
	last := matches[len(matches)-1]
	weight := parseFirstNumber(text[last[2]:last[3]])
	unit := ""
	if last[4] >= 0 {
		unit = text[last[4]:last[5]]
	}
	line.Weight = toGrams(weight, unit)
	line.Name = strings.Trim(normalizeText(text[:last[0]]), " -:")
	if line.Name == "" || line.Weight <= 0 {
		return Line{}, false
	}
	return line, true
}

func toGrams(value float64, unit string) float64 {
	switch strings.ToLower(unit) {
	case "mg":
		return value / 1000
	case "kg":
		return value * 1000
	default:
		return value
	}
}

// dilutionFromPercent converts a strength in percent into a fraction. Full strength and
// out-of-range values mean the material is neat.
func dilutionFromPercent(pct float64) *float64 {
	if pct <= 0 || pct >= 100 || math.IsNaN(pct) {
		return nil
	}
	fraction := pct / 100
	return &fraction
}

func normalizeValue(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "N/A") {
		return ""
	}
	return value
}

func normalizeText(value string) string {
	value = normalizeValue(value)
	if value == "" {
		return value
	}
	value = cleanWhitespace.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

func parseFirstNumber(value string) float64 {
	value = normalizeValue(value)
	if value == "" {
		return 0
	}

	match := numberPattern.FindString(value)
	if match == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return parsed
}
