package compliance

import (
	"errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyFormula is returned when a formula has no positive total weight.
	ErrEmptyFormula = errors.New("compliance: formula is empty")
	// ErrInvalidTarget is returned when the target quantity produces a non-finite factor.
	ErrInvalidTarget = errors.New("compliance: invalid target quantity")
)

// ScaledIngredient is a row scaled to a production quantity.
type ScaledIngredient struct {
	Name     string
	Original float64
	Scaled   float64
	Cost     decimal.Decimal
}

// ScaleResult is a formula scaled linearly to a target quantity.
type ScaleResult struct {
	Target      float64
	Factor      float64
	Ingredients []ScaledIngredient
	TotalCost   decimal.Decimal
}

// Scale multiplies every row by target / total weight. Limits are share based
// and are not rechecked.
func Scale(ingredients []Ingredient, target float64) (ScaleResult, error) {
	totalWeight, _ := totals(ingredients)
	if totalWeight <= 0 {
		return ScaleResult{}, ErrEmptyFormula
	}

	factor := target / totalWeight
	if !finite(factor) {
		return ScaleResult{}, ErrInvalidTarget
	}

	result := ScaleResult{
		Target:      target,
		Factor:      factor,
		Ingredients: make([]ScaledIngredient, 0, len(ingredients)),
		TotalCost:   decimal.Zero,
	}
	for _, ing := range ingredients {
		scaled := ing.Weight * factor
		cost := costOf(scaled, ing)
		result.TotalCost = result.TotalCost.Add(cost)
		result.Ingredients = append(result.Ingredients, ScaledIngredient{
			Name:     ing.Name,
			Original: ing.Weight,
			Scaled:   scaled,
			Cost:     cost,
		})
	}
	return result, nil
}
