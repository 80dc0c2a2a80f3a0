// internal/services/catalog_service.go
package services

import (
	"fmt"
	"slices"

	"github.com/javajoker/storefront/internal/catalog"
	"github.com/javajoker/storefront/internal/models"
)

// CatalogService serves the read-only catalog loaded at startup.
type CatalogService struct {
	engine     *catalog.Engine
	categories []models.Category
	brands     []string
	byID       map[string]models.Product
}

func NewCatalogService(seed *catalog.Seed, opts ...catalog.Option) *CatalogService {
	byID := make(map[string]models.Product, len(seed.Products))
	for _, p := range seed.Products {
		byID[p.ID] = p
	}

	return &CatalogService{
		engine:     catalog.NewEngine(seed.Products, opts...),
		categories: slices.Clone(seed.Categories),
		brands:     catalog.AvailableBrands(seed.Products),
		byID:       byID,
	}
}

// ListResult is one filtered listing plus the data for its results header.
type ListResult struct {
	Products         []models.Product
	Title            string
	HasActiveFilters bool
}

// List filters the catalog. strict overrides the configured search behavior
// when non-nil.
func (s *CatalogService) List(criteria catalog.Criteria, strict *bool) ListResult {
	var products []models.Product
	if strict != nil {
		products = s.engine.FilterWith(criteria, *strict)
	} else {
		products = s.engine.Filter(criteria)
	}

	return ListResult{
		Products:         products,
		Title:            criteria.Title(),
		HasActiveFilters: criteria.HasActiveSearch(),
	}
}

func (s *CatalogService) Get(id string) (models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return p, nil
}

func (s *CatalogService) Detail(id string) (catalog.Detail, error) {
	p, err := s.Get(id)
	if err != nil {
		return catalog.Detail{}, err
	}
	return catalog.NewDetail(p), nil
}

// Brands is computed once from the full catalog, not from any filtered view.
func (s *CatalogService) Brands() []string {
	return slices.Clone(s.brands)
}

func (s *CatalogService) Categories() []models.Category {
	return slices.Clone(s.categories)
}

func (s *CatalogService) FilterMetadata() catalog.FilterMetadata {
	names := make([]string, 0, len(s.categories)+1)
	names = append(names, catalog.AllCategories)
	for _, c := range s.categories {
		names = append(names, c.Name)
	}

	return catalog.FilterMetadata{
		SortOptions:  catalog.SortOptions(),
		PricePresets: catalog.PricePresets(),
		Brands:       s.Brands(),
		Categories:   names,
	}
}

func (s *CatalogService) ProductCount() int {
	return len(s.byID)
}
