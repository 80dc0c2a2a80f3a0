// internal/catalog/brands.go
package catalog

import (
	"slices"

	"github.com/javajoker/storefront/internal/models"
)

// AvailableBrands lists the distinct brands of the full catalog in
// lexicographic order.
func AvailableBrands(products []models.Product) []string {
	seen := make(map[string]struct{}, len(products))
	brands := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	slices.Sort(brands)
	return brands
}
