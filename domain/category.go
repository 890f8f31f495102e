package domain

// Category is the editorial category attached to issues, topics and
// per-category political scores.
type Category string

const (
	CategoryPolitics      Category = "politics"
	CategoryEconomy       Category = "economy"
	CategorySociety       Category = "society"
	CategoryCulture       Category = "culture"
	CategoryTechnology    Category = "technology"
	CategoryInternational Category = "international"
)

// Categories returns all score categories in aggregation order.
func Categories() []Category {
	return []Category{
		CategoryPolitics,
		CategoryEconomy,
		CategorySociety,
		CategoryCulture,
		CategoryTechnology,
		CategoryInternational,
	}
}
