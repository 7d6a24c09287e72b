package catalog

import (
	"sort"
	"strings"

	"github.com/shopverse/shopverse/pkg/enums"
	"github.com/shopverse/shopverse/pkg/models"
)

// filterAndSort recomputes the view from the full catalog: category
// filter, then case-insensitive substring match against name,
// description and brand, then sort. A trimmed-empty query and
// CategoryAll each bypass their stage. SortDefault applies no sort, so
// catalog insertion order survives; the other comparators use a stable
// sort so equal elements keep that order too.
func filterAndSort(products []models.Product, category enums.Category, search string, sortBy enums.SortOption) []models.Product {
	result := make([]models.Product, 0, len(products))

	query := strings.ToLower(strings.TrimSpace(search))
	for _, product := range products {
		if category != enums.CategoryAll && product.Category != category {
			continue
		}
		if query != "" && !matchesQuery(product, query) {
			continue
		}
		result = append(result, product)
	}

	switch sortBy {
	case enums.SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DiscountedPrice().LessThan(result[j].DiscountedPrice())
		})
	case enums.SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[j].DiscountedPrice().LessThan(result[i].DiscountedPrice())
		})
	case enums.SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case enums.SortPopularity:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].ReviewCount > result[j].ReviewCount
		})
	}

	return result
}

func matchesQuery(product models.Product, query string) bool {
	return strings.Contains(strings.ToLower(product.Name), query) ||
		strings.Contains(strings.ToLower(product.Description), query) ||
		strings.Contains(strings.ToLower(product.Brand), query)
}
