package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesTable(t *testing.T) {
	t.Parallel()

	cats := Categories()
	require.Len(t, cats, 18)
	assert.Equal(t, Category1, cats[0].ID)
	assert.Equal(t, Category12, cats[17].ID)
	assert.True(t, cats[17].Unrestricted())

	cats[3].Name = "mutated"
	*cats[3].Limit = 9
	fresh, ok := LookupCategory(Category4)
	require.True(t, ok)
	assert.Equal(t, "Category 4", fresh.Name)
	assert.InDelta(t, 0.306, *fresh.Limit, tolerance)

	_, ok = LookupCategory("cat99")
	assert.False(t, ok)
}

func TestCertificateWorkedExample(t *testing.T) {
	t.Parallel()

	rows := Certificate([]Ingredient{
		{Name: "Restricted", Weight: 500, IFRALimit: ptr(0.02)},
		{Name: "Diluted", Weight: 500, Dilution: ptr(0.1)},
	})
	require.Len(t, rows, 18)

	byID := map[CategoryID]CategoryResult{}
	for _, row := range rows {
		byID[row.Category.ID] = row
	}

	fine := byID[Category4]
	assert.True(t, fine.Constrained)
	// 0.02 / 90.909...% * 100
	assert.InDelta(t, 0.022, fine.LimitPercentage, 1e-9)
	assert.False(t, fine.Compliant)
	assert.Equal(t, []string{"Restricted"}, fine.Restricted)

	// 90.909 * 0.019 / 100 = 0.0173 stays under 0.02
	lips := byID[Category1]
	assert.True(t, lips.Compliant)
	assert.Empty(t, lips.Restricted)

	oral := byID[Category6]
	assert.True(t, oral.Compliant)

	lotion := byID[Category5A]
	assert.False(t, lotion.Compliant)
}

func TestCertificateUnrestrictedCategoryAlwaysCompliant(t *testing.T) {
	t.Parallel()

	formulas := [][]Ingredient{
		nil,
		{{Name: "x", Weight: 1000, IFRALimit: ptr(0.00001)}},
		{{Name: "y", Weight: 10, Dilution: ptr(0.5), IFRALimit: ptr(0.2)}, {Name: "z", Weight: 990}},
	}
	for _, rows := range formulas {
		result, ok := CertifyCategory(rows, Category12)
		require.True(t, ok)
		assert.True(t, result.Compliant)
		assert.Empty(t, result.Restricted)
		assert.False(t, result.Constrained)
	}
}

func TestCertificateWithoutLimitsUsesCategoryCeiling(t *testing.T) {
	t.Parallel()

	result, ok := CertifyCategory([]Ingredient{{Name: "free", Weight: 100}}, Category10B)
	require.True(t, ok)
	assert.False(t, result.Constrained)
	assert.True(t, result.Compliant)
	assert.InDelta(t, 35.0, result.LimitPercentage, tolerance)
}

func TestCertificateCapsLimitAtHundred(t *testing.T) {
	t.Parallel()

	// A generous limit on a tiny share allows more than the whole product.
	result, ok := CertifyCategory([]Ingredient{
		{Name: "trace", Weight: 1, IFRALimit: ptr(0.5)},
		{Name: "bulk", Weight: 999},
	}, Category4)
	require.True(t, ok)
	assert.True(t, result.Constrained)
	assert.Equal(t, 100.0, result.LimitPercentage)
	assert.True(t, result.Compliant)
}

func TestCertificateMatchesFinalCalc(t *testing.T) {
	t.Parallel()

	rows := []Ingredient{
		{Name: "a", Weight: 40, Dilution: ptr(0.2), IFRALimit: ptr(0.03)},
		{Name: "b", Weight: 60, IFRALimit: ptr(0.5)},
	}
	figures := Evaluate(rows)
	result, ok := CertifyCategory(rows, Category4)
	require.True(t, ok)

	// Both paths share one pure-share basis; the certificate limit is the
	// smallest final calc before the 100 cap.
	tightest := min(*figures.Ingredients[0].FinalCalc, *figures.Ingredients[1].FinalCalc)
	assert.InDelta(t, min(tightest, 100), result.LimitPercentage, 1e-9)
}
