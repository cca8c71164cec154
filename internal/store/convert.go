package store

import (
	"strings"

	"perfumevault/internal/compliance"
	"perfumevault/models"
)

func materialName(ing models.FormulaIngredient) string {
	if ing.Material == nil {
		return ""
	}
	return ing.Material.Name
}

// IngredientsOf turns the rows of a loaded formula into engine ingredients.
// Rows whose material is missing keep their weight but carry no limit or price.
func IngredientsOf(formula *models.Formula) []compliance.Ingredient {
	if formula == nil {
		return nil
	}

	out := make([]compliance.Ingredient, 0, len(formula.Ingredients))
	for _, ing := range formula.Ingredients {
		row := compliance.Ingredient{
			Name:     materialName(ing),
			Weight:   ing.Weight,
			Dilution: ing.Dilution,
		}
		if ing.Material != nil {
			row.IFRALimit = ing.Material.IFRALimit
			row.PricePerUnit = ing.Material.PricePerGram
		}
		out = append(out, row)
	}
	return out
}

// SafetyRowsOf extracts the GHS data of every row.
func SafetyRowsOf(formula *models.Formula) []compliance.SafetyRow {
	if formula == nil {
		return nil
	}

	out := make([]compliance.SafetyRow, 0, len(formula.Ingredients))
	for _, ing := range formula.Ingredients {
		row := compliance.SafetyRow{
			Name:   materialName(ing),
			Weight: ing.Weight,
		}
		if m := ing.Material; m != nil {
			row.CASNumber = strings.TrimSpace(m.CASNumber)
			if s := m.Safety; s != nil {
				row.HCodes = []string(s.HCodes)
				row.PCodes = []string(s.PCodes)
				row.Pictograms = []string(s.Pictograms)
				row.SignalWord = s.SignalWord
			}
		}
		out = append(out, row)
	}
	return out
}

// CardRowsOf extracts the family and pyramid data of every row.
func CardRowsOf(formula *models.Formula) []compliance.CardRow {
	if formula == nil {
		return nil
	}

	out := make([]compliance.CardRow, 0, len(formula.Ingredients))
	for _, ing := range formula.Ingredients {
		row := compliance.CardRow{
			Name:    materialName(ing),
			Profile: models.ProfileHeart,
			Weight:  ing.Weight,
		}
		if m := ing.Material; m != nil {
			row.Profile = models.NormalizeProfile(m.Profile)
			row.OdorDescription = m.OdorDescription
			if m.Family != nil {
				row.Family = m.Family.Name
				row.FamilyIcon = m.Family.Icon
			}
		}
		out = append(out, row)
	}
	return out
}
