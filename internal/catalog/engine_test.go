package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/storefront/internal/models"
)

func testCatalog() []models.Product {
	return []models.Product{
		{ID: "1", Title: "Galaxy Phone", Price: 500, Rating: 4.1, Category: "Electronics", Brand: "Samsung", Description: "A big screen"},
		{ID: "2", Title: "Noise Cancelling Headphones", Price: 100, Rating: 4.7, Category: "Electronics", Brand: "Sony", Description: "Quiet travel"},
		{ID: "3", Title: "Running Shoes", Price: 200, Rating: 4.1, Category: "Fashion", Brand: "Nike", Description: "Light and fast"},
		{ID: "4", Title: "Camera", Price: 900, Rating: 4.9, Category: "Electronics", Brand: "Sony", Description: "Full frame sensor"},
		{ID: "5", Title: "Denim Jeans", Price: 200, Rating: 3.8, Category: "Fashion", Brand: "Levi's", Description: "Slim fit"},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilterDefaultCriteriaKeepsCatalogOrder(t *testing.T) {
	result := Filter(testCatalog(), DefaultCriteria())
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(result))
}

func TestFilterCategoryIsExactAndCaseSensitive(t *testing.T) {
	c := DefaultCriteria()
	c.Category = "Fashion"
	result := Filter(testCatalog(), c)
	assert.Equal(t, []string{"3", "5"}, ids(result))
	for _, p := range result {
		assert.Equal(t, "Fashion", p.Category)
	}

	c.Category = "fashion"
	assert.Empty(t, Filter(testCatalog(), c))
}

func TestFilterEmptyCategoryMeansAll(t *testing.T) {
	c := DefaultCriteria()
	c.Category = ""
	assert.Len(t, Filter(testCatalog(), c), 5)
}

func TestFilterSearchMatchesAnyTextField(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title", "headphones", []string{"2"}},
		{"brand", "SONY", []string{"2", "4"}},
		{"category", "fash", []string{"3", "5"}},
		{"description", "sensor", []string{"4"}},
		{"no match", "xyz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCriteria()
			c.Query = tt.query
			assert.Equal(t, tt.want, ids(Filter(testCatalog(), c)))
		})
	}
}

func TestFilterSearchSkipsPriceAndBrandFilters(t *testing.T) {
	c := DefaultCriteria()
	c.Query = "sony"
	c.Price = PriceRange{Min: 0, Max: 150}
	c.Brands = []string{"Nike"}

	// Both Sony products match even though one is above the price bound and
	// neither is a Nike product.
	assert.Equal(t, []string{"2", "4"}, ids(Filter(testCatalog(), c)))
}

func TestFilterSearchStillRespectsCategory(t *testing.T) {
	c := DefaultCriteria()
	c.Query = "s"
	c.Category = "Fashion"
	for _, p := range Filter(testCatalog(), c) {
		assert.Equal(t, "Fashion", p.Category)
	}
}

func TestFilterStrictAppliesPriceAndBrandDuringSearch(t *testing.T) {
	c := DefaultCriteria()
	c.Query = "sony"
	c.Price = PriceRange{Min: 0, Max: 150}
	assert.Equal(t, []string{"2"}, ids(FilterStrict(testCatalog(), c)))

	c.Price = Unbounded()
	c.Brands = []string{"Nike"}
	assert.Empty(t, FilterStrict(testCatalog(), c))
}

func TestFilterPriceRangeIsInclusive(t *testing.T) {
	c := DefaultCriteria()
	c.Price = PriceRange{Min: 200, Max: 500}
	assert.Equal(t, []string{"1", "3", "5"}, ids(Filter(testCatalog(), c)))
}

func TestFilterBrands(t *testing.T) {
	c := DefaultCriteria()
	c.Brands = []string{"Sony", "Nike"}
	assert.Equal(t, []string{"2", "3", "4"}, ids(Filter(testCatalog(), c)))
}

func TestSortModes(t *testing.T) {
	tests := []struct {
		sort SortMode
		want []string
	}{
		{SortRelevance, []string{"1", "2", "3", "4", "5"}},
		{SortPriceLowHigh, []string{"2", "3", "5", "1", "4"}},
		{SortPriceHighLow, []string{"4", "1", "3", "5", "2"}},
		{SortRating, []string{"4", "2", "1", "3", "5"}},
		{SortNewest, []string{"5", "4", "3", "2", "1"}},
		{SortMode("unknown"), []string{"1", "2", "3", "4", "5"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			c := DefaultCriteria()
			c.Sort = tt.sort
			assert.Equal(t, tt.want, ids(Filter(testCatalog(), c)))
		})
	}
}

func TestSortIsMonotonic(t *testing.T) {
	c := DefaultCriteria()

	c.Sort = SortPriceLowHigh
	result := Filter(testCatalog(), c)
	for i := 1; i < len(result); i++ {
		assert.LessOrEqual(t, result[i-1].Price, result[i].Price)
	}

	c.Sort = SortPriceHighLow
	result = Filter(testCatalog(), c)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Price, result[i].Price)
	}

	c.Sort = SortRating
	result = Filter(testCatalog(), c)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Rating, result[i].Rating)
	}
}

func TestSortNewestIsLexicographic(t *testing.T) {
	products := []models.Product{{ID: "2"}, {ID: "10"}, {ID: "9"}}
	c := DefaultCriteria()
	c.Sort = SortNewest
	assert.Equal(t, []string{"9", "2", "10"}, ids(Filter(products, c)))
}

func TestSortNaNOrdersLowest(t *testing.T) {
	products := []models.Product{
		{ID: "a", Rating: math.NaN()},
		{ID: "b", Rating: 3},
		{ID: "c", Rating: 0},
	}
	c := DefaultCriteria()
	c.Sort = SortRating
	assert.Equal(t, []string{"b", "c", "a"}, ids(Filter(products, c)))
}

func TestFilterScenarioPriceLowHigh(t *testing.T) {
	products := []models.Product{
		{ID: "a", Price: 100},
		{ID: "b", Price: 500},
		{ID: "c", Price: 200},
	}
	c := DefaultCriteria()
	c.Sort = SortPriceLowHigh

	result := Filter(products, c)
	prices := []float64{result[0].Price, result[1].Price, result[2].Price}
	assert.Equal(t, []float64{100, 200, 500}, prices)

	c.Query = "xyz"
	c.Price = PriceRange{Min: 0, Max: 1000}
	c.Brands = []string{"Any"}
	assert.Empty(t, Filter(products, c))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := testCatalog()
	c := DefaultCriteria()
	c.Sort = SortPriceHighLow
	Filter(products, c)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(products))
}

func TestFilterIsDeterministic(t *testing.T) {
	c := DefaultCriteria()
	c.Sort = SortRating
	c.Brands = []string{"Sony", "Samsung", "Nike"}
	assert.Equal(t, Filter(testCatalog(), c), Filter(testCatalog(), c))
}

func TestEngineMatchesFilter(t *testing.T) {
	engine := NewEngine(testCatalog())

	c := DefaultCriteria()
	c.Sort = SortPriceLowHigh
	c.Brands = []string{"Sony", "Nike"}

	first := engine.Filter(c)
	second := engine.Filter(c)
	assert.Equal(t, Filter(testCatalog(), c), first)
	assert.Equal(t, first, second)
}

func TestEngineCacheIgnoresBrandOrder(t *testing.T) {
	engine := NewEngine(testCatalog())

	a := DefaultCriteria()
	a.Brands = []string{"Sony", "Nike"}
	b := DefaultCriteria()
	b.Brands = []string{"Nike", "Sony"}

	assert.Equal(t, engine.Filter(a), engine.Filter(b))
	assert.Len(t, engine.cache, 1)
}

func TestEngineResultsAreIndependentCopies(t *testing.T) {
	engine := NewEngine(testCatalog())

	result := engine.Filter(DefaultCriteria())
	require.NotEmpty(t, result)
	result[0].Title = "changed"

	assert.Equal(t, "Galaxy Phone", engine.Filter(DefaultCriteria())[0].Title)
}

func TestEngineCacheIsBounded(t *testing.T) {
	engine := NewEngine(testCatalog(), WithCacheSize(2))

	for _, q := range []string{"a", "b", "c", "d"} {
		c := DefaultCriteria()
		c.Query = q
		engine.Filter(c)
	}
	assert.LessOrEqual(t, len(engine.cache), 2)
}

func TestEngineWithoutCache(t *testing.T) {
	engine := NewEngine(testCatalog(), WithCacheSize(0))
	assert.Nil(t, engine.cache)
	assert.Len(t, engine.Filter(DefaultCriteria()), 5)
}

func TestEngineFiltersDuringSearchOption(t *testing.T) {
	c := DefaultCriteria()
	c.Query = "sony"
	c.Price = PriceRange{Min: 0, Max: 150}

	quirk := NewEngine(testCatalog())
	strict := NewEngine(testCatalog(), WithFiltersDuringSearch(true))

	assert.False(t, quirk.FiltersDuringSearch())
	assert.True(t, strict.FiltersDuringSearch())
	assert.Equal(t, []string{"2", "4"}, ids(quirk.Filter(c)))
	assert.Equal(t, []string{"2"}, ids(strict.Filter(c)))
	assert.Equal(t, []string{"2"}, ids(quirk.FilterWith(c, true)))
}

func TestEngineFind(t *testing.T) {
	engine := NewEngine(testCatalog())

	p, ok := engine.Find("3")
	require.True(t, ok)
	assert.Equal(t, "Running Shoes", p.Title)

	_, ok = engine.Find("missing")
	assert.False(t, ok)
}

func TestAvailableBrands(t *testing.T) {
	products := []models.Product{{Brand: "Sony"}, {Brand: "Sony"}, {Brand: "Apple"}}
	assert.Equal(t, []string{"Apple", "Sony"}, AvailableBrands(products))
	assert.Empty(t, AvailableBrands(nil))
}

func TestCriteriaKeyDistinguishesBrandSets(t *testing.T) {
	a := DefaultCriteria()
	a.Brands = []string{"A\x01B"}
	b := DefaultCriteria()
	b.Brands = []string{"A", "B"}
	assert.NotEqual(t, a.key(false), b.key(false))

	c := DefaultCriteria()
	c.Query = "x\x00y"
	d := DefaultCriteria()
	d.Query = "x"
	d.Category = "y"
	assert.NotEqual(t, c.key(false), d.key(false))

	dup := DefaultCriteria()
	dup.Brands = []string{"Sony", "Sony"}
	one := DefaultCriteria()
	one.Brands = []string{"Sony"}
	assert.Equal(t, one.key(true), dup.key(true))
	assert.NotEqual(t, one.key(true), one.key(false))
}

func TestEngineCacheSeparatesCollidingBrandNames(t *testing.T) {
	products := []models.Product{
		{ID: "1", Brand: "A\x01B"},
		{ID: "2", Brand: "A"},
		{ID: "3", Brand: "B"},
	}
	engine := NewEngine(products)

	joined := DefaultCriteria()
	joined.Brands = []string{"A\x01B"}
	split := DefaultCriteria()
	split.Brands = []string{"A", "B"}

	assert.Equal(t, []string{"1"}, ids(engine.Filter(joined)))
	assert.Equal(t, []string{"2", "3"}, ids(engine.Filter(split)))
}

func TestEngineResultFeaturesAreIndependent(t *testing.T) {
	products := []models.Product{{ID: "1", Features: []string{"USB-C", "5G"}}}
	engine := NewEngine(products)

	first := engine.Filter(DefaultCriteria())
	first[0].Features[0] = "changed"
	assert.Equal(t, "USB-C", engine.Filter(DefaultCriteria())[0].Features[0])

	found, ok := engine.Find("1")
	require.True(t, ok)
	found.Features[1] = "changed"
	assert.Equal(t, "5G", engine.Products()[0].Features[1])

	products[0].Features[0] = "changed"
	assert.Equal(t, "USB-C", engine.Products()[0].Features[0])

	uncached := NewEngine(engine.Products(), WithCacheSize(0))
	uncached.Filter(DefaultCriteria())[0].Features[0] = "changed"
	assert.Equal(t, "USB-C", uncached.Filter(DefaultCriteria())[0].Features[0])
}
