// internal/catalog/engine.go
package catalog

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/javajoker/storefront/internal/models"
)

// Filter applies criteria to products and returns a new, sorted slice. It
// never modifies products. A non-empty query short-circuits the price and
// brand checks; see FilterStrict for the variant that keeps them.
func Filter(products []models.Product, c Criteria) []models.Product {
	return filter(products, c, false)
}

// FilterStrict behaves like Filter but keeps applying the price and brand
// checks while a search query is active.
func FilterStrict(products []models.Product, c Criteria) []models.Product {
	return filter(products, c, true)
}

func filter(products []models.Product, c Criteria, filtersDuringSearch bool) []models.Product {
	m := newMatcher(c, filtersDuringSearch)

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if m.match(p) {
			result = append(result, p)
		}
	}

	sortProducts(result, ParseSortMode(string(c.Sort)))
	return result
}

type matcher struct {
	category            string
	query               string
	price               PriceRange
	brands              map[string]struct{}
	filtersDuringSearch bool
}

func newMatcher(c Criteria, filtersDuringSearch bool) matcher {
	m := matcher{
		category:            c.Category,
		query:               strings.ToLower(c.Query),
		price:               c.Price,
		filtersDuringSearch: filtersDuringSearch,
	}
	if m.category == "" {
		m.category = AllCategories
	}
	if len(c.Brands) > 0 {
		m.brands = make(map[string]struct{}, len(c.Brands))
		for _, b := range c.Brands {
			m.brands[b] = struct{}{}
		}
	}
	return m
}

func (m matcher) match(p models.Product) bool {
	if m.category != AllCategories && p.Category != m.category {
		return false
	}

	if m.query != "" {
		if !m.matchQuery(p) {
			return false
		}
		if !m.filtersDuringSearch {
			return true
		}
	}

	if !m.price.Contains(p.Price) {
		return false
	}

	if m.brands != nil {
		if _, ok := m.brands[p.Brand]; !ok {
			return false
		}
	}

	return true
}

func (m matcher) matchQuery(p models.Product) bool {
	return strings.Contains(strings.ToLower(p.Title), m.query) ||
		strings.Contains(strings.ToLower(p.Brand), m.query) ||
		strings.Contains(strings.ToLower(p.Category), m.query) ||
		strings.Contains(strings.ToLower(p.Description), m.query)
}

// sortProducts sorts in place with a stable sort. cmp.Compare orders NaN
// below every number, so malformed prices and ratings sort as lowest.
func sortProducts(products []models.Product, mode SortMode) {
	switch mode {
	case SortPriceLowHigh:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceHighLow:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortRating:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case SortNewest:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return strings.Compare(b.ID, a.ID)
		})
	}
}

// Engine binds Filter to one immutable catalog and memoizes results by
// criteria. The cache is an optimization only: a cached result is always
// identical to a fresh computation.
type Engine struct {
	products            []models.Product
	filtersDuringSearch bool
	cacheSize           int

	mu    sync.RWMutex
	cache map[string][]models.Product
}

type Option func(*Engine)

// WithFiltersDuringSearch keeps price and brand filters active while a query is set.
func WithFiltersDuringSearch(enabled bool) Option {
	return func(e *Engine) {
		e.filtersDuringSearch = enabled
	}
}

// WithCacheSize bounds the number of memoized criteria. Zero disables caching.
func WithCacheSize(n int) Option {
	return func(e *Engine) {
		e.cacheSize = n
	}
}

func NewEngine(products []models.Product, opts ...Option) *Engine {
	e := &Engine{
		products:  cloneProducts(products),
		cacheSize: 256,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cacheSize > 0 {
		e.cache = make(map[string][]models.Product)
	}
	return e
}

// Products returns a copy of the catalog in its original order.
func (e *Engine) Products() []models.Product {
	return cloneProducts(e.products)
}

func (e *Engine) FiltersDuringSearch() bool {
	return e.filtersDuringSearch
}

// Filter runs the engine with its configured search behavior.
func (e *Engine) Filter(c Criteria) []models.Product {
	return e.run(c, e.filtersDuringSearch)
}

// FilterWith overrides the configured search behavior for one call.
func (e *Engine) FilterWith(c Criteria, filtersDuringSearch bool) []models.Product {
	return e.run(c, filtersDuringSearch)
}

func (e *Engine) run(c Criteria, filtersDuringSearch bool) []models.Product {
	if e.cache == nil {
		return cloneProducts(filter(e.products, c, filtersDuringSearch))
	}

	key := c.key(filtersDuringSearch)

	e.mu.RLock()
	cached, ok := e.cache[key]
	e.mu.RUnlock()
	if ok {
		return cloneProducts(cached)
	}

	result := filter(e.products, c, filtersDuringSearch)

	e.mu.Lock()
	if len(e.cache) >= e.cacheSize {
		clear(e.cache)
	}
	e.cache[key] = result
	e.mu.Unlock()

	return cloneProducts(result)
}

// Find returns a copy of the product with the given id.
func (e *Engine) Find(id string) (models.Product, bool) {
	for _, p := range e.products {
		if p.ID == id {
			p.Features = slices.Clone(p.Features)
			return p, true
		}
	}
	return models.Product{}, false
}

// cloneProducts copies products deeply enough that callers can modify any
// field, including Features, without touching the catalog or the cache.
func cloneProducts(products []models.Product) []models.Product {
	out := slices.Clone(products)
	for i := range out {
		out[i].Features = slices.Clone(out[i].Features)
	}
	return out
}
