// internal/catalog/metadata.go
package catalog

import (
	"math"

	"github.com/javajoker/storefront/internal/utils"
)

type SortOption struct {
	Value SortMode `json:"value"`
	Label string   `json:"label"`
}

// PricePreset is one selectable price bucket. A nil Max means "and above".
type PricePreset struct {
	Label string   `json:"label"`
	Min   float64  `json:"min"`
	Max   *float64 `json:"max"`
}

// Range converts the preset into the engine's inclusive range.
func (p PricePreset) Range() PriceRange {
	if p.Max == nil {
		return PriceRange{Min: p.Min, Max: math.Inf(1)}
	}
	return PriceRange{Min: p.Min, Max: *p.Max}
}

var sortOptions = []SortOption{
	{Value: SortRelevance, Label: "Relevance"},
	{Value: SortPriceLowHigh, Label: "Price: Low to High"},
	{Value: SortPriceHighLow, Label: "Price: High to Low"},
	{Value: SortRating, Label: "Customer Rating"},
	{Value: SortNewest, Label: "Newest First"},
}

var priceBounds = [][2]float64{
	{0, 1000},
	{1000, 5000},
	{5000, 10000},
	{10000, 25000},
	{25000, 50000},
	{50000, math.Inf(1)},
}

func SortOptions() []SortOption {
	out := make([]SortOption, len(sortOptions))
	copy(out, sortOptions)
	return out
}

// PricePresets returns the price buckets offered by the filter panel.
func PricePresets() []PricePreset {
	presets := make([]PricePreset, 0, len(priceBounds))
	for _, b := range priceBounds {
		preset := PricePreset{Min: b[0]}
		switch {
		case math.IsInf(b[1], 1):
			preset.Label = "Above " + utils.FormatPrice(b[0])
		case b[0] == 0:
			preset.Label = "Under " + utils.FormatPrice(b[1])
			preset.Max = &b[1]
		default:
			preset.Label = utils.FormatPrice(b[0]) + " - " + utils.FormatPrice(b[1])
			preset.Max = &b[1]
		}
		presets = append(presets, preset)
	}
	return presets
}

// FilterMetadata is everything the filter panel needs to render.
type FilterMetadata struct {
	SortOptions  []SortOption  `json:"sort_options"`
	PricePresets []PricePreset `json:"price_presets"`
	Brands       []string      `json:"brands"`
	Categories   []string      `json:"categories"`
}
