package compliance

import "github.com/shopspring/decimal"

// SafetyMargin is applied to the tightest per-ingredient limit before it becomes
// the formula limit.
const SafetyMargin = 0.99

// IngredientFigures are the derived values for one formula row. Shares are
// fractions in [0, 1].
type IngredientFigures struct {
	Name          string
	Weight        float64
	Concentration float64
	PureWeight    float64
	WeightShare   float64
	PureShare     float64

	// DesignCalc is IFRALimit / WeightShare, FinalCalc is IFRALimit / PureShare.
	// Both are nil when the row has no limit or a zero share.
	DesignCalc     *float64
	DesignExceeded bool
	FinalCalc      *float64
	FinalExceeded  bool

	Cost decimal.Decimal
}

// FormulaFigures aggregates the per-row figures of a formula.
type FormulaFigures struct {
	Ingredients []IngredientFigures
	TotalWeight float64
	TotalPure   float64

	// ActiveRatio is TotalPure / TotalWeight expressed in percent.
	ActiveRatio float64

	DesignLimit float64
	FinalLimit  float64

	// DesignBinding and FinalBinding index the row that sets each limit, or -1.
	DesignBinding int
	FinalBinding  int

	TotalCost decimal.Decimal
}

// Evaluate derives concentrations, shares, IFRA design/final limits and costs
// for the given rows. Rows keep their input order in the result.
func Evaluate(ingredients []Ingredient) FormulaFigures {
	totalWeight, totalPure := totals(ingredients)

	figures := FormulaFigures{
		Ingredients:   make([]IngredientFigures, len(ingredients)),
		TotalWeight:   totalWeight,
		TotalPure:     totalPure,
		DesignBinding: -1,
		FinalBinding:  -1,
		TotalCost:     decimal.Zero,
	}
	if totalWeight > 0 {
		figures.ActiveRatio = totalPure / totalWeight * 100
	}

	for i, ing := range ingredients {
		row := IngredientFigures{
			Name:          ing.Name,
			Weight:        ing.Weight,
			Concentration: Concentration(ing.Dilution),
			PureWeight:    PureWeight(ing.Weight, ing.Dilution),
		}
		row.WeightShare = share(ing.Weight, totalWeight)
		row.PureShare = share(row.PureWeight, totalPure)

		if limit, ok := limitOf(ing); ok {
			if row.WeightShare > 0 {
				calc := limit / row.WeightShare
				row.DesignCalc = &calc
			}
			if row.PureShare > 0 {
				calc := limit / row.PureShare
				row.FinalCalc = &calc
			}
		}

		row.Cost = costOf(ing.Weight, ing)
		figures.TotalCost = figures.TotalCost.Add(row.Cost)
		figures.Ingredients[i] = row
	}

	designMin, designAt := argmin(figures.Ingredients, func(r IngredientFigures) *float64 { return r.DesignCalc })
	finalMin, finalAt := argmin(figures.Ingredients, func(r IngredientFigures) *float64 { return r.FinalCalc })

	if designAt >= 0 {
		figures.DesignLimit = designMin * SafetyMargin
		figures.DesignBinding = designAt
	}
	if finalAt >= 0 {
		figures.FinalLimit = finalMin * SafetyMargin
		figures.FinalBinding = finalAt
	}

	for i := range figures.Ingredients {
		row := &figures.Ingredients[i]
		row.DesignExceeded = exceeded(row.DesignCalc, figures.DesignLimit, i == figures.DesignBinding)
		row.FinalExceeded = exceeded(row.FinalCalc, figures.FinalLimit, i == figures.FinalBinding)
	}

	return figures
}

// argmin returns the smallest present value and its index. Ties keep the first
// occurrence so results stay reproducible.
func argmin(rows []IngredientFigures, value func(IngredientFigures) *float64) (float64, int) {
	best, at := 0.0, -1
	for i, row := range rows {
		v := value(row)
		if v == nil {
			continue
		}
		if at < 0 || *v < best {
			best, at = *v, i
		}
	}
	return best, at
}

func exceeded(calc *float64, limit float64, binding bool) bool {
	if calc == nil || limit == 0 {
		return false
	}
	return binding || *calc < limit
}
