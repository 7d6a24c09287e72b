package enums

import "fmt"

// Category identifies the fixed product taxonomy.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFashion     Category = "fashion"
	CategoryGrocery     Category = "grocery"
	CategoryFurniture   Category = "furniture"
	CategoryBooks       Category = "books"
	CategoryCustom      Category = "custom"

	// CategoryAll is a filter-only value: it is never a valid product
	// category but bypasses category filtering in the catalog view.
	CategoryAll Category = "all"
)

var validCategories = []Category{
	CategoryElectronics,
	CategoryFashion,
	CategoryGrocery,
	CategoryFurniture,
	CategoryBooks,
	CategoryCustom,
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the value is a known product Category.
// CategoryAll is not valid here; it only exists as a filter.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input into a product Category.
func ParseCategory(value string) (Category, error) {
	for _, candidate := range validCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}

// ParseCategoryFilter accepts any product category plus CategoryAll.
func ParseCategoryFilter(value string) (Category, error) {
	if value == string(CategoryAll) {
		return CategoryAll, nil
	}
	return ParseCategory(value)
}
