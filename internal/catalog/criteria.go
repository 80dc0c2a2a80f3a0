// internal/catalog/criteria.go
package catalog

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// AllCategories is the category sentinel meaning "no category filter".
const AllCategories = "All"

type SortMode string

const (
	SortRelevance    SortMode = "relevance"
	SortPriceLowHigh SortMode = "price-low-high"
	SortPriceHighLow SortMode = "price-high-low"
	SortRating       SortMode = "rating"
	SortNewest       SortMode = "newest"
)

// ParseSortMode maps unknown or empty values to SortRelevance.
func ParseSortMode(s string) SortMode {
	switch mode := SortMode(s); mode {
	case SortPriceLowHigh, SortPriceHighLow, SortRating, SortNewest:
		return mode
	default:
		return SortRelevance
	}
}

// PriceRange is inclusive on both ends. Max may be +Inf.
type PriceRange struct {
	Min float64
	Max float64
}

// Unbounded is the [0, +Inf] range used when no price filter is selected.
func Unbounded() PriceRange {
	return PriceRange{Min: 0, Max: math.Inf(1)}
}

func (r PriceRange) Contains(price float64) bool {
	return r.Min <= price && price <= r.Max
}

func (r PriceRange) IsUnbounded() bool {
	return r.Min <= 0 && math.IsInf(r.Max, 1)
}

// Criteria is the full set of listing inputs owned by the caller.
type Criteria struct {
	Category string
	Query    string
	Sort     SortMode
	Price    PriceRange
	Brands   []string
}

func DefaultCriteria() Criteria {
	return Criteria{
		Category: AllCategories,
		Sort:     SortRelevance,
		Price:    Unbounded(),
	}
}

// ToggleBrand adds brand when absent and removes it when present. The returned
// criteria never shares its brand slice with the receiver.
func (c Criteria) ToggleBrand(brand string) Criteria {
	brands := make([]string, 0, len(c.Brands)+1)
	found := false
	for _, b := range c.Brands {
		if b == brand {
			found = true
			continue
		}
		brands = append(brands, b)
	}
	if !found {
		brands = append(brands, brand)
	}
	c.Brands = brands
	return c
}

// ClearSearch resets the query and the category, keeping sort, price and brands.
func (c Criteria) ClearSearch() Criteria {
	c.Query = ""
	c.Category = AllCategories
	return c
}

// HasActiveSearch reports whether a query or a category narrows the listing.
func (c Criteria) HasActiveSearch() bool {
	return c.Query != "" || c.categoryFiltered()
}

// Title is the heading shown above the results.
func (c Criteria) Title() string {
	if c.Query != "" {
		return `Search results for "` + c.Query + `"`
	}
	if c.categoryFiltered() {
		return c.Category
	}
	return ""
}

func (c Criteria) categoryFiltered() bool {
	return c.Category != "" && c.Category != AllCategories
}

// key identifies the criteria for the result cache. Brand order and repeats
// are irrelevant to the result so they are normalized. Free-text parts are
// quoted, so no brand, category or query can collide with a separator.
func (c Criteria) key(filtersDuringSearch bool) string {
	brands := slices.Clone(c.Brands)
	slices.Sort(brands)
	brands = slices.Compact(brands)

	var b strings.Builder
	b.WriteString(strconv.Quote(c.Category))
	b.WriteByte(' ')
	b.WriteString(strconv.Quote(c.Query))
	b.WriteByte(' ')
	b.WriteString(string(ParseSortMode(string(c.Sort))))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(c.Price.Min, 'g', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(c.Price.Max, 'g', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatBool(filtersDuringSearch))
	b.WriteString(" [")
	for i, brand := range brands {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(brand))
	}
	b.WriteByte(']')
	return b.String()
}
