package ingest

import (
	"strings"

	"perfumevault/models"
)

// MatchMaterial finds the catalog material a line refers to. A CAS number match wins;
// otherwise names are compared after normalisation with a small edit-distance tolerance.
func MatchMaterial(materials []models.Material, line Line) *models.Material {
	if cas := strings.TrimSpace(line.CAS); cas != "" {
		for i := range materials {
			if strings.TrimSpace(materials[i].CASNumber) == cas {
				return &materials[i]
			}
		}
	}

	target := normalizeIngredientName(line.Name)
	if target == "" {
		return nil
	}
	for i := range materials {
		if normalizeIngredientName(materials[i].Name) == target {
			return &materials[i]
		}
	}
	for i := range materials {
		if similarAlias(normalizeIngredientName(materials[i].Name), target) {
			return &materials[i]
		}
	}
	return nil
}

// Resolve maps every line onto a catalog material. Lines that match nothing are
// returned by name so callers can report them.
func Resolve(materials []models.Material, lines []Line) ([]models.FormulaIngredient, []string) {
	ingredients := make([]models.FormulaIngredient, 0, len(lines))
	var unmatched []string
	for _, line := range lines {
		material := MatchMaterial(materials, line)
		if material == nil {
			unmatched = append(unmatched, line.Name)
			continue
		}
		ingredients = append(ingredients, models.FormulaIngredient{
			MaterialID: material.ID,
			Weight:     line.Weight,
			Dilution:   line.Dilution,
			Diluent:    line.Diluent,
		})
	}
	return ingredients, unmatched
}

func normalizeIngredientName(value string) string {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return ""
	}
	replacer := strings.NewReplacer("-", "", "_", "", " ", "")
	return lettersOnly(replacer.Replace(trimmed))
}

func lettersOnly(value string) string {
	var builder strings.Builder
	for _, r := range value {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

func similarAlias(a, b string) bool {
	if a == b {
		return true
	}
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	limit := 1
	if len(a) >= 8 || len(b) >= 8 {
		limit = 2
	}
	if len(a) >= 12 || len(b) >= 12 {
		limit = 3
	}
	return levenshteinDistance(a, b) <= limit
}

func levenshteinDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
