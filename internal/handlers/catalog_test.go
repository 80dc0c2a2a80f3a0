package handlers

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/javajoker/storefront/internal/catalog"
)

func queryContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/v1/products?"+query, nil)
	return c
}

func TestCriteriaFromQueryDefaults(t *testing.T) {
	assert.Equal(t, catalog.DefaultCriteria(), criteriaFromQuery(queryContext("")))
}

func TestCriteriaFromQuery(t *testing.T) {
	c := criteriaFromQuery(queryContext("category=Books&q=habits&sort=rating&price_min=100&price_max=500&brand=Penguin,+Vintage&brand=Picador"))

	assert.Equal(t, "Books", c.Category)
	assert.Equal(t, "habits", c.Query)
	assert.Equal(t, catalog.SortRating, c.Sort)
	assert.Equal(t, catalog.PriceRange{Min: 100, Max: 500}, c.Price)
	assert.Equal(t, []string{"Penguin", "Vintage", "Picador"}, c.Brands)
}

func TestCriteriaFromQueryIgnoresMalformedValues(t *testing.T) {
	c := criteriaFromQuery(queryContext("sort=cheapest&price_min=abc&price_max=lots"))

	assert.Equal(t, catalog.SortRelevance, c.Sort)
	assert.Zero(t, c.Price.Min)
	assert.True(t, math.IsInf(c.Price.Max, 1))
}

func TestCriteriaFromQueryToggleBrand(t *testing.T) {
	c := criteriaFromQuery(queryContext("brand=Sony,Apple&toggle_brand=Sony&toggle_brand=Nike"))
	assert.Equal(t, []string{"Apple", "Nike"}, c.Brands)
}

func TestCriteriaFromQueryClearSearch(t *testing.T) {
	c := criteriaFromQuery(queryContext("category=Books&q=habits&sort=rating&brand=Penguin&clear=search"))

	assert.Equal(t, catalog.AllCategories, c.Category)
	assert.Empty(t, c.Query)
	assert.Equal(t, catalog.SortRating, c.Sort)
	assert.Equal(t, []string{"Penguin"}, c.Brands)
}
