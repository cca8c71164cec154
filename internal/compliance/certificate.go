package compliance

// CategoryResult is one row of an IFRA certificate.
type CategoryResult struct {
	Category Category

	// LimitPercentage is the largest share of fragrance, in percent, this formula
	// may make up in the category's product. It is zero for unrestricted categories.
	LimitPercentage float64

	// Constrained is set when at least one ingredient limit shaped LimitPercentage.
	Constrained bool
	Compliant   bool
	Restricted  []string
}

// Certificate evaluates the formula against every IFRA category in table order.
func Certificate(ingredients []Ingredient) []CategoryResult {
	_, totalPure := totals(ingredients)

	bounds := make([]pureBound, 0, len(ingredients))
	for _, ing := range ingredients {
		limit, ok := limitOf(ing)
		if !ok {
			continue
		}
		pct := share(PureWeight(ing.Weight, ing.Dilution), totalPure) * 100
		if pct <= 0 {
			continue
		}
		bounds = append(bounds, pureBound{name: ing.Name, limit: limit, purepct: pct})
	}

	results := make([]CategoryResult, 0, len(categories))
	for _, cat := range Categories() {
		results = append(results, evaluateCategory(cat, bounds))
	}
	return results
}

// CertifyCategory evaluates the formula against a single category.
func CertifyCategory(ingredients []Ingredient, id CategoryID) (CategoryResult, bool) {
	for _, row := range Certificate(ingredients) {
		if row.Category.ID == id {
			return row, true
		}
	}
	return CategoryResult{}, false
}

type pureBound struct {
	name    string
	limit   float64
	purepct float64 // share of the pure mass, 0..100
}

func evaluateCategory(cat Category, bounds []pureBound) CategoryResult {
	result := CategoryResult{Category: cat, Compliant: true, Restricted: []string{}}
	if cat.Unrestricted() {
		return result
	}
	catLimit := *cat.Limit

	maxFragrance := 0.0
	for _, b := range bounds {
		allowed := b.limit / b.purepct * 100
		if !result.Constrained || allowed < maxFragrance {
			maxFragrance = allowed
			result.Constrained = true
		}
		if b.purepct*catLimit/100 > b.limit {
			result.Restricted = append(result.Restricted, b.name)
		}
	}

	if result.Constrained {
		result.LimitPercentage = min(maxFragrance, 100)
	} else {
		result.LimitPercentage = catLimit * 100
	}
	result.Compliant = len(result.Restricted) == 0
	return result
}
