package dto

// AllCategories is the category value clients send to mean "no category filter".
const AllCategories = "all"

type ProductFilter struct {
	Category string `query:"category"`
	Search   string `query:"search"`
}

// CategoryFilter returns the category to match exactly, or "" when the filter
// is absent or the sentinel.
func (f ProductFilter) CategoryFilter() string {
	if f.Category == AllCategories {
		return ""
	}
	return f.Category
}

type AddToCartParam struct {
	ProductID string
	Quantity  int
}

type UpdateQuantityParam struct {
	ItemID   string
	Quantity int
}
