package compliance

// CategoryID identifies one of the fixed IFRA product categories.
type CategoryID string

const (
	Category1   CategoryID = "cat1"
	Category2   CategoryID = "cat2"
	Category3   CategoryID = "cat3"
	Category4   CategoryID = "cat4"
	Category5A  CategoryID = "cat5a"
	Category5B  CategoryID = "cat5b"
	Category5C  CategoryID = "cat5c"
	Category5D  CategoryID = "cat5d"
	Category6   CategoryID = "cat6"
	Category7A  CategoryID = "cat7a"
	Category7B  CategoryID = "cat7b"
	Category8   CategoryID = "cat8"
	Category9   CategoryID = "cat9"
	Category10A CategoryID = "cat10a"
	Category10B CategoryID = "cat10b"
	Category11A CategoryID = "cat11a"
	Category11B CategoryID = "cat11b"
	Category12  CategoryID = "cat12"

	// DefaultCategory is fine fragrance.
	DefaultCategory = Category4
)

// Category describes a finished-product use context and its fragrance ceiling.
type Category struct {
	ID          CategoryID
	Name        string
	Description string

	// Limit is the category ceiling as a fraction. Nil means unrestricted.
	Limit *float64
}

// Unrestricted reports whether the category carries no ceiling.
func (c Category) Unrestricted() bool {
	return c.Limit == nil
}

func ceiling(v float64) *float64 { return &v }

var categories = []Category{
	{Category1, "Category 1", "Products applied to the lips", ceiling(0.019)},
	{Category2, "Category 2", "Products applied to the axillae (armpit)", ceiling(0.017)},
	{Category3, "Category 3", "Products applied to the face/body using fingertips", ceiling(0.017)},
	{Category4, "Category 4", "Products related to fine fragrance", ceiling(0.306)},
	{Category5A, "Category 5A", "Body lotion products applied to the body using the hands (palms), primarily leave-on", ceiling(0.083)},
	{Category5B, "Category 5B", "Face moisturizer products applied to the face using the hands (palms), primarily leave-on", ceiling(0.024)},
	{Category5C, "Category 5C", "Hand cream products applied to the hands using the hands (palms), primarily leave-on", ceiling(0.035)},
	{Category5D, "Category 5D", "Baby Creams, baby Oils and baby talc", ceiling(0.008)},
	{Category6, "Category 6", "Products with oral and lip exposure", ceiling(0.001)},
	{Category7A, "Category 7A", "Rinse-off products applied to the hair with some hand contact", ceiling(0.039)},
	{Category7B, "Category 7B", "Leave-on products applied to the hair with some hand contact", ceiling(0.039)},
	{Category8, "Category 8", "Products with significant anogenital exposure", ceiling(0.008)},
	{Category9, "Category 9", "Products with body and hand exposure, primarily rinse off", ceiling(0.114)},
	{Category10A, "Category 10A", "Household care excluding aerosol products", ceiling(0.114)},
	{Category10B, "Category 10B", "Household aerosol/spray products", ceiling(0.35)},
	{Category11A, "Category 11A", "Products with intended skin contact but minimal transfer of fragrance to skin from inert substrate without UV exposure", ceiling(0.008)},
	{Category11B, "Category 11B", "Products with intended skin contact but minimal transfer of fragrance to skin from inert substrate with potential UV exposure", ceiling(0.008)},
	{Category12, "Category 12", "Products not intended for direct skin contact, minimal or insignificant transfer to skin", nil},
}

var categoryIndex = func() map[CategoryID]int {
	index := make(map[CategoryID]int, len(categories))
	for i, c := range categories {
		index[c.ID] = i
	}
	return index
}()

// Categories returns the fixed category table in IFRA order. The slice is a copy.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = c
		if c.Limit != nil {
			out[i].Limit = ceiling(*c.Limit)
		}
	}
	return out
}

// LookupCategory finds a category by id.
func LookupCategory(id CategoryID) (Category, bool) {
	i, ok := categoryIndex[id]
	if !ok {
		return Category{}, false
	}
	c := categories[i]
	if c.Limit != nil {
		c.Limit = ceiling(*c.Limit)
	}
	return c, true
}
