package report

import "perfumevault/internal/compliance"

// FamilyView is a family's share of a formula.
type FamilyView struct {
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	TotalWeight float64 `json:"total_weight"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
}

// PyramidEntryView is one note in the pyramid.
type PyramidEntryView struct {
	Name            string  `json:"name"`
	Family          string  `json:"family_name"`
	FamilyIcon      string  `json:"family_icon"`
	OdorDescription string  `json:"odor_description"`
	Weight          float64 `json:"weight"`
	Percentage      float64 `json:"percentage"`
}

// CardView is the formula card.
type CardView struct {
	Families         []FamilyView                  `json:"families"`
	Pyramid          map[string][]PyramidEntryView `json:"pyramid"`
	TotalWeight      float64                       `json:"total_weight"`
	IngredientsCount int                           `json:"ingredients_count"`
}

// Card renders a formula card with one-decimal percentages.
func Card(card compliance.Card) CardView {
	view := CardView{
		Families: make([]FamilyView, 0, len(card.Families)),
		Pyramid: map[string][]PyramidEntryView{
			"Top":   entries(card.Pyramid.Top),
			"Heart": entries(card.Pyramid.Heart),
			"Base":  entries(card.Pyramid.Base),
		},
		TotalWeight:      card.TotalWeight,
		IngredientsCount: card.Count,
	}
	for _, f := range card.Families {
		view.Families = append(view.Families, FamilyView{
			Name:        f.Name,
			Icon:        f.Icon,
			TotalWeight: f.TotalWeight,
			Count:       f.Count,
			Percentage:  Round(f.Share*100, 1),
		})
	}
	return view
}

func entries(list []compliance.PyramidEntry) []PyramidEntryView {
	out := make([]PyramidEntryView, 0, len(list))
	for _, e := range list {
		out = append(out, PyramidEntryView{
			Name:            e.Name,
			Family:          e.Family,
			FamilyIcon:      e.FamilyIcon,
			OdorDescription: e.OdorDescription,
			Weight:          e.Weight,
			Percentage:      Round(e.Share*100, 1),
		})
	}
	return out
}
