// internal/handlers/catalog.go
package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront/internal/catalog"
	"github.com/javajoker/storefront/internal/i18n"
	"github.com/javajoker/storefront/internal/services"
	"github.com/javajoker/storefront/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	criteria := criteriaFromQuery(c)

	var strict *bool
	if strictStr := c.Query("strict"); strictStr != "" {
		if v, err := strconv.ParseBool(strictStr); err == nil {
			strict = &v
		}
	}

	result := h.catalogService.List(criteria, strict)
	page := utils.Paginate(result.Products, utils.GetPaginationParams(c))

	message := i18n.T(i18n.KeySearchNoResults)
	if len(result.Products) > 0 {
		message = i18n.T(i18n.KeySearchResultsFound, len(result.Products))
	}

	utils.PaginatedResponse(c, page, gin.H{
		"title":              result.Title,
		"message":            message,
		"has_active_filters": result.HasActiveFilters,
		"criteria": gin.H{
			"category": criteria.Category,
			"q":        criteria.Query,
			"sort":     criteria.Sort,
			"brands":   criteria.Brands,
		},
	})
}

// GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	detail, err := h.catalogService.Detail(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProduct)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, detail)
}

// GET /brands
func (h *CatalogHandler) GetBrands(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"brands": h.catalogService.Brands(),
	})
}

// GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": h.catalogService.Categories(),
	})
}

// GET /filters
func (h *CatalogHandler) GetFilterMetadata(c *gin.Context) {
	utils.SuccessResponse(c, h.catalogService.FilterMetadata())
}

// criteriaFromQuery reads listing criteria. Malformed numbers are ignored,
// leaving that bound open.
func criteriaFromQuery(c *gin.Context) catalog.Criteria {
	criteria := catalog.DefaultCriteria()

	if category := c.Query("category"); category != "" {
		criteria.Category = category
	}
	criteria.Query = c.Query("q")
	criteria.Sort = catalog.ParseSortMode(c.Query("sort"))

	if priceMinStr := c.Query("price_min"); priceMinStr != "" {
		if priceMin, err := strconv.ParseFloat(priceMinStr, 64); err == nil {
			criteria.Price.Min = priceMin
		}
	}

	if priceMaxStr := c.Query("price_max"); priceMaxStr != "" {
		if priceMax, err := strconv.ParseFloat(priceMaxStr, 64); err == nil {
			criteria.Price.Max = priceMax
		}
	}

	for _, brand := range c.QueryArray("brand") {
		for _, b := range strings.Split(brand, ",") {
			if b = strings.TrimSpace(b); b != "" {
				criteria.Brands = append(criteria.Brands, b)
			}
		}
	}

	// toggle_brand flips brands in or out of the set above; clear=search
	// drops the query and category while keeping sort, price and brands.
	for _, brand := range c.QueryArray("toggle_brand") {
		if brand = strings.TrimSpace(brand); brand != "" {
			criteria = criteria.ToggleBrand(brand)
		}
	}
	if c.Query("clear") == "search" {
		criteria = criteria.ClearSearch()
	}

	return criteria
}
