// Package report turns compliance figures into the JSON views served by the API
// and printed by the CLI. Shares become percentages only here.
package report

import (
	"math"

	"github.com/shopspring/decimal"

	"perfumevault/internal/compliance"
)

// IngredientView is the per-ingredient design figure set.
type IngredientView struct {
	Name             string   `json:"name"`
	Weight           float64  `json:"weight"`
	Concentration    float64  `json:"concentration"`
	PureWeight       float64  `json:"pure_weight"`
	WeightPercentage float64  `json:"weight_percentage"`
	PurePercentage   float64  `json:"pure_percentage"`
	DesignCalc       *float64 `json:"design_calc"`
	DesignExceeded   bool     `json:"design_exceeded"`
	FinalCalc        *float64 `json:"final_calc"`
	FinalExceeded    bool     `json:"final_exceeded"`
	Cost             float64  `json:"cost"`
}

// FormulaView is the design report of a formula.
type FormulaView struct {
	Ingredients     []IngredientView `json:"ingredients"`
	TotalWeight     float64          `json:"total_weight"`
	TotalPure       float64          `json:"total_pure"`
	ActiveRatio     float64          `json:"active_ratio"`
	IFRADesignLimit float64          `json:"ifra_design_limit"`
	IFRAFinalLimit  float64          `json:"ifra_final_limit"`
	TotalCost       float64          `json:"total_cost"`
	Category        *CategoryView    `json:"category,omitempty"`
}

// CategoryView is one row of an IFRA certificate.
type CategoryView struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Unrestricted    bool     `json:"unrestricted"`
	LimitPercentage *float64 `json:"limit_percentage"`
	Compliant       bool     `json:"compliant"`
	Restricted      []string `json:"restricted_material_names"`
}

// CategoryInfo describes a category without evaluating a formula.
type CategoryInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Limit       *float64 `json:"limit"`
}

// ScaleView is a formula scaled to a target quantity.
type ScaleView struct {
	Target    float64          `json:"target"`
	Factor    float64          `json:"factor"`
	Items     []ScaledItemView `json:"items"`
	TotalCost float64          `json:"total_cost"`
}

// ScaledItemView is a single scaled ingredient.
type ScaledItemView struct {
	Name     string  `json:"name"`
	Original float64 `json:"original"`
	Scaled   float64 `json:"scaled"`
	Cost     float64 `json:"cost"`
}

// Formula renders design figures. target may be nil when the formula has no
// category assigned.
func Formula(figures compliance.FormulaFigures, target *compliance.CategoryResult) FormulaView {
	view := FormulaView{
		Ingredients:     make([]IngredientView, 0, len(figures.Ingredients)),
		TotalWeight:     figures.TotalWeight,
		TotalPure:       figures.TotalPure,
		ActiveRatio:     figures.ActiveRatio,
		IFRADesignLimit: figures.DesignLimit,
		IFRAFinalLimit:  figures.FinalLimit,
		TotalCost:       Money(figures.TotalCost),
	}
	for _, row := range figures.Ingredients {
		view.Ingredients = append(view.Ingredients, IngredientView{
			Name:             row.Name,
			Weight:           row.Weight,
			Concentration:    row.Concentration,
			PureWeight:       row.PureWeight,
			WeightPercentage: row.WeightShare * 100,
			PurePercentage:   row.PureShare * 100,
			DesignCalc:       row.DesignCalc,
			DesignExceeded:   row.DesignExceeded,
			FinalCalc:        row.FinalCalc,
			FinalExceeded:    row.FinalExceeded,
			Cost:             Money(row.Cost),
		})
	}
	if target != nil {
		c := Category(*target)
		view.Category = &c
	}
	return view
}

// Category renders a certificate row. Limits are rounded to three decimals.
func Category(result compliance.CategoryResult) CategoryView {
	view := CategoryView{
		ID:           string(result.Category.ID),
		Name:         result.Category.Name,
		Description:  result.Category.Description,
		Unrestricted: result.Category.Unrestricted(),
		Compliant:    result.Compliant,
		Restricted:   append([]string{}, result.Restricted...),
	}
	if !view.Unrestricted {
		limit := Round(result.LimitPercentage, 3)
		view.LimitPercentage = &limit
	}
	return view
}

// Certificate renders every certificate row.
func Certificate(results []compliance.CategoryResult) []CategoryView {
	views := make([]CategoryView, 0, len(results))
	for _, r := range results {
		views = append(views, Category(r))
	}
	return views
}

// Categories renders the static category table.
func Categories(cats []compliance.Category) []CategoryInfo {
	out := make([]CategoryInfo, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryInfo{
			ID:          string(c.ID),
			Name:        c.Name,
			Description: c.Description,
			Limit:       c.Limit,
		})
	}
	return out
}

// Scale renders a scale-up result. Weights keep four decimals, costs two.
func Scale(result compliance.ScaleResult) ScaleView {
	view := ScaleView{
		Target:    result.Target,
		Factor:    result.Factor,
		Items:     make([]ScaledItemView, 0, len(result.Ingredients)),
		TotalCost: Money(result.TotalCost),
	}
	for _, ing := range result.Ingredients {
		view.Items = append(view.Items, ScaledItemView{
			Name:     ing.Name,
			Original: ing.Original,
			Scaled:   Round(ing.Scaled, 4),
			Cost:     Money(ing.Cost),
		})
	}
	return view
}

// Money rounds an amount to cents.
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Round rounds v to places decimals, half away from zero.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(int32(places)).InexactFloat64()
}
