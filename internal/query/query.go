// Package query transforms an item snapshot into the filtered, ordered view
// the dashboard displays, plus derived aggregates. All functions are pure:
// they never mutate their input and never fail on well-formed data.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"sweetbliss/internal/domain"
)

// lowStockThreshold is fixed; callers cannot tune it.
const lowStockThreshold = 10

// DefaultCategories is the known category set the dashboard charts over,
// zero-filled when absent from the data.
var DefaultCategories = []string{
	"Dry Sweet",
	"Bengali Sweet",
	"Traditional",
	"Milk Sweet",
	"Syrup-based",
}

// SortKey selects the ordering of a filtered item list.
type SortKey string

const (
	SortName      SortKey = "name"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortStockAsc  SortKey = "stock-asc"
	SortStockDesc SortKey = "stock-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// Criteria is a request-scoped filter/sort specification. The zero value
// means "everything, original order".
type Criteria struct {
	Search   string
	Category string // "" or "all" matches every category
	Sort     SortKey
}

// comparator reports whether a must sort before b. A nil comparator leaves
// the input order untouched, which is the contract for unrecognized keys.
type comparator func(coll *collate.Collator, a, b domain.Item) bool

func (k SortKey) comparator() comparator {
	switch k {
	case SortName, SortNameAsc:
		return func(c *collate.Collator, a, b domain.Item) bool {
			return c.CompareString(a.Name, b.Name) < 0
		}
	case SortNameDesc:
		return func(c *collate.Collator, a, b domain.Item) bool {
			return c.CompareString(b.Name, a.Name) < 0
		}
	case SortStockAsc:
		return func(_ *collate.Collator, a, b domain.Item) bool { return a.Stock < b.Stock }
	case SortStockDesc:
		return func(_ *collate.Collator, a, b domain.Item) bool { return b.Stock < a.Stock }
	case SortPriceAsc:
		return func(_ *collate.Collator, a, b domain.Item) bool { return a.Price < b.Price }
	case SortPriceDesc:
		return func(_ *collate.Collator, a, b domain.Item) bool { return b.Price < a.Price }
	default:
		return nil
	}
}

func (c Criteria) matches(it domain.Item) bool {
	if c.Search != "" && !strings.Contains(strings.ToLower(it.Name), strings.ToLower(c.Search)) {
		return false
	}
	if c.Category != "" && c.Category != "all" && it.Category.Name != c.Category {
		return false
	}
	return true
}

// FilterAndSort returns the items matching crit, ordered by crit.Sort. The
// sort is stable, so ties and unrecognized sort keys preserve input order.
// The input slice is left untouched.
func FilterAndSort(items []domain.Item, crit Criteria) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if crit.matches(it) {
			out = append(out, it)
		}
	}

	cmp := crit.Sort.comparator()
	if cmp == nil || len(out) < 2 {
		return out
	}
	// Collators carry an internal buffer, so build one per call rather than
	// sharing across requests.
	coll := collate.New(language.English)
	sort.SliceStable(out, func(i, j int) bool { return cmp(coll, out[i], out[j]) })
	return out
}

// AggregateByCategory derives per-category stats from the categories present
// in the data. Items without a category name are skipped rather than
// aborting the aggregation.
func AggregateByCategory(items []domain.Item) map[string]domain.CategoryStats {
	out := make(map[string]domain.CategoryStats)
	for _, it := range items {
		name := it.Category.Name
		if name == "" {
			continue
		}
		s := out[name]
		s.ItemCount++
		s.TotalStock += it.Stock
		s.TotalValue += float64(it.Stock) * it.Price
		out[name] = s
	}
	return out
}

// CategoryStock pairs a category name with its total stock, in chart order.
type CategoryStock struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// SeededStockByCategory totals stock for each name in names, in order,
// reporting zero for categories absent from the data. The dashboard seeds
// this with DefaultCategories so its charts keep a fixed shape.
func SeededStockByCategory(items []domain.Item, names []string) []CategoryStock {
	totals := make(map[string]int, len(names))
	for _, it := range items {
		totals[it.Category.Name] += it.Stock
	}
	out := make([]CategoryStock, 0, len(names))
	for _, n := range names {
		out = append(out, CategoryStock{Name: n, Stock: totals[n]})
	}
	return out
}

// LowStockCount counts items with stock below the fixed threshold.
func LowStockCount(items []domain.Item) int {
	n := 0
	for _, it := range items {
		if it.Stock < lowStockThreshold {
			n++
		}
	}
	return n
}

// Stats computes the dashboard summary over a snapshot.
func Stats(items []domain.Item) domain.DashboardStats {
	s := domain.DashboardStats{TotalItems: len(items)}
	for _, it := range items {
		s.TotalStock += it.Stock
		s.TotalValue += float64(it.Stock) * it.Price
	}
	s.LowStockItems = LowStockCount(items)
	return s
}
