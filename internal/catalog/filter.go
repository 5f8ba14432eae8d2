package catalog

import (
	"sort"
	"strings"

	"github.com/novamart-dev/storefront-session/pkg/enums"
	"github.com/novamart-dev/storefront-session/pkg/money"
)

// CategoryAll matches every category.
const CategoryAll = "All"

// Criteria describes one shop-view query. The zero value matches everything
// in catalog order.
type Criteria struct {
	SearchQuery string
	Category    string
	PriceRange  enums.PriceRange
	SortKey     enums.SortKey
}

var (
	priceUnderBound = money.ParseThreshold(50)
	priceUpperBound = money.ParseThreshold(200)
)

// Filter applies search, category, price band, and sort to products, in that
// fixed order. It is a pure function: identical inputs yield identical
// output, and the input slice is never reordered in place.
func Filter(products []Product, criteria Criteria) []Product {
	result := make([]Product, 0, len(products))
	result = append(result, products...)

	if query := strings.TrimSpace(criteria.SearchQuery); query != "" {
		result = filterInPlace(result, matchesQuery(query))
	}

	if criteria.Category != "" && criteria.Category != CategoryAll {
		result = filterInPlace(result, func(p Product) bool {
			return p.Category == criteria.Category
		})
	}

	if band, ok := priceBand(criteria.PriceRange); ok {
		// Products whose price does not parse are excluded from every band.
		result = filterInPlace(result, func(p Product) bool {
			return p.Price.Valid() && band(p.Price)
		})
	}

	switch criteria.SortKey {
	case enums.SortKeyPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Cmp(result[j].Price) < 0
		})
	case enums.SortKeyPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Cmp(result[j].Price) > 0
		})
	default:
		// Featured keeps catalog order.
	}

	return result
}

// Categories returns the distinct product categories in first-seen order,
// prefixed with the catch-all entry, the way the shop sidebar lists them.
func Categories(products []Product) []string {
	seen := map[string]struct{}{}
	categories := []string{CategoryAll}
	for _, product := range products {
		if product.Category == "" {
			continue
		}
		if _, ok := seen[product.Category]; ok {
			continue
		}
		seen[product.Category] = struct{}{}
		categories = append(categories, product.Category)
	}
	return categories
}

func matchesQuery(query string) func(Product) bool {
	lowered := strings.ToLower(query)
	return func(p Product) bool {
		return strings.Contains(strings.ToLower(p.Name), lowered) ||
			strings.Contains(strings.ToLower(p.Description), lowered) ||
			strings.Contains(strings.ToLower(p.Category), lowered)
	}
}

func priceBand(priceRange enums.PriceRange) (func(money.Price) bool, bool) {
	switch priceRange {
	case enums.PriceRangeUnder50:
		return func(p money.Price) bool {
			return p.Cmp(priceUnderBound) < 0
		}, true
	case enums.PriceRangeMid:
		return func(p money.Price) bool {
			return p.Cmp(priceUnderBound) >= 0 && p.Cmp(priceUpperBound) <= 0
		}, true
	case enums.PriceRangePremium:
		return func(p money.Price) bool {
			return p.Cmp(priceUpperBound) > 0
		}, true
	default:
		return nil, false
	}
}

func filterInPlace(products []Product, keep func(Product) bool) []Product {
	filtered := products[:0]
	for _, product := range products {
		if keep(product) {
			filtered = append(filtered, product)
		}
	}
	return filtered
}
