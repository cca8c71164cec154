// Package compliance derives concentration, IFRA limit and hazard figures from
// formula rows. Every function is a pure computation over its arguments: nothing
// here logs, touches storage or keeps state between calls.
package compliance

import (
	"math"

	"github.com/shopspring/decimal"
)

// Ingredient is a single weighed row of a formula as handed over by the data layer.
type Ingredient struct {
	Name   string
	Weight float64

	// Dilution is the fraction of Weight that is pure material. Nil or zero
	// means the row carries no solvent at all.
	Dilution *float64

	// IFRALimit is the maximum fraction of this material allowed in a finished
	// product. Nil or non-positive means unrestricted.
	IFRALimit    *float64
	PricePerUnit *float64
}

// Concentration returns the active fraction of a row. A missing or zero dilution
// reads as fully pure, never as "no active material".
func Concentration(dilution *float64) float64 {
	if dilution == nil || *dilution == 0 {
		return 1.0
	}
	return *dilution
}

// PureWeight is the active material mass contributed by a row.
func PureWeight(weight float64, dilution *float64) float64 {
	return weight * Concentration(dilution)
}

func limitOf(ing Ingredient) (float64, bool) {
	if ing.IFRALimit == nil || *ing.IFRALimit <= 0 {
		return 0, false
	}
	return *ing.IFRALimit, true
}

// costOf prices quantity units of a row. A missing price or a non-finite
// quantity or price costs nothing.
func costOf(quantity float64, ing Ingredient) decimal.Decimal {
	if ing.PricePerUnit == nil || !finite(quantity) || !finite(*ing.PricePerUnit) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(*ing.PricePerUnit))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func share(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total
}

// totals returns the raw and pure mass of the rows.
func totals(ingredients []Ingredient) (weight, pure float64) {
	for _, ing := range ingredients {
		weight += ing.Weight
		pure += PureWeight(ing.Weight, ing.Dilution)
	}
	return weight, pure
}
