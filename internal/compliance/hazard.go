package compliance

import (
	"sort"
	"strings"
)

// GHSReference bundles the static GHS tables.
type GHSReference struct {
	HazardStatements        []Statement
	PrecautionaryStatements []Statement
	Pictograms              []Pictogram
	SignalWords             []string
	Classifications         []string
}

// Reference returns copies of the GHS tables.
func Reference() GHSReference {
	return GHSReference{
		HazardStatements:        append([]Statement(nil), hazardStatements...),
		PrecautionaryStatements: append([]Statement(nil), precautionaryStatements...),
		Pictograms:              append([]Pictogram(nil), pictograms...),
		SignalWords:             append([]string(nil), signalWords...),
		Classifications:         append([]string(nil), classifications...),
	}
}

var (
	hazardIndex        = indexStatements(hazardStatements)
	precautionaryIndex = indexStatements(precautionaryStatements)
	pictogramIndex     = func() map[string]Pictogram {
		index := make(map[string]Pictogram, len(pictograms))
		for _, p := range pictograms {
			index[p.ID] = p
		}
		return index
	}()
)

func indexStatements(list []Statement) map[string]Statement {
	index := make(map[string]Statement, len(list))
	for _, s := range list {
		index[s.Code] = s
	}
	return index
}

// LookupHazard finds an H-code.
func LookupHazard(code string) (Statement, bool) {
	s, ok := hazardIndex[strings.ToUpper(strings.TrimSpace(code))]
	return s, ok
}

// LookupPrecaution finds a P-code.
func LookupPrecaution(code string) (Statement, bool) {
	s, ok := precautionaryIndex[strings.ToUpper(strings.TrimSpace(code))]
	return s, ok
}

// SafetyRow is the GHS data of one formula row.
type SafetyRow struct {
	Name       string
	CASNumber  string
	Weight     float64
	HCodes     []string
	PCodes     []string
	Pictograms []string
	SignalWord string
}

// SafetyLine lists a component of the mixture with its weight share.
type SafetyLine struct {
	Name      string
	CASNumber string
	Share     float64
}

// SafetySummary is the aggregated hazard communication data of a formula.
type SafetySummary struct {
	Ingredients []SafetyLine
	TotalWeight float64
	HCodes      []Statement
	PCodes      []Statement
	Pictograms  []Pictogram
	SignalWord  string
}

// SummarizeHazards merges the GHS data of every row. Codes are de-duplicated and
// sorted; codes missing from the reference tables are kept without a description.
// The signal word is the strongest one found.
func SummarizeHazards(rows []SafetyRow) SafetySummary {
	total := 0.0
	for _, row := range rows {
		total += row.Weight
	}

	summary := SafetySummary{
		Ingredients: make([]SafetyLine, 0, len(rows)),
		TotalWeight: total,
	}

	hcodes := map[string]struct{}{}
	pcodes := map[string]struct{}{}
	pics := map[string]struct{}{}
	strongest := -1

	for _, row := range rows {
		summary.Ingredients = append(summary.Ingredients, SafetyLine{
			Name:      row.Name,
			CASNumber: row.CASNumber,
			Share:     share(row.Weight, total),
		})
		collect(hcodes, row.HCodes, strings.ToUpper)
		collect(pcodes, row.PCodes, strings.ToUpper)
		collect(pics, row.Pictograms, strings.ToLower)
		if rank := signalRank(row.SignalWord); rank > strongest {
			strongest = rank
		}
	}

	for _, code := range sortedKeys(hcodes) {
		s, ok := hazardIndex[code]
		if !ok {
			s = Statement{Code: code}
		}
		summary.HCodes = append(summary.HCodes, s)
	}
	for _, code := range sortedKeys(pcodes) {
		s, ok := precautionaryIndex[code]
		if !ok {
			s = Statement{Code: code}
		}
		summary.PCodes = append(summary.PCodes, s)
	}
	for _, id := range sortedKeys(pics) {
		p, ok := pictogramIndex[id]
		if !ok {
			p = Pictogram{ID: id}
		}
		summary.Pictograms = append(summary.Pictograms, p)
	}
	if strongest >= 0 {
		summary.SignalWord = signalWords[strongest]
	}
	return summary
}

func collect(set map[string]struct{}, values []string, canon func(string) string) {
	for _, v := range values {
		v = canon(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func signalRank(word string) int {
	for i, w := range signalWords {
		if strings.EqualFold(strings.TrimSpace(word), w) {
			return i
		}
	}
	return -1
}
