// internal/catalog/detail.go
package catalog

import (
	"math"

	"github.com/javajoker/storefront/internal/models"
	"github.com/javajoker/storefront/internal/utils"
)

const maxStars = 5

// Detail is the product overlay: the product plus its display-ready values.
type Detail struct {
	Product                models.Product `json:"product"`
	FormattedPrice         string         `json:"formatted_price"`
	FormattedOriginalPrice string         `json:"formatted_original_price,omitempty"`
	DiscountLabel          string         `json:"discount_label,omitempty"`
	Savings                float64        `json:"savings"`
	FormattedSavings       string         `json:"formatted_savings,omitempty"`
	FilledStars            int            `json:"filled_stars"`
}

func NewDetail(p models.Product) Detail {
	d := Detail{
		Product:        p,
		FormattedPrice: utils.FormatPrice(p.Price),
		FilledStars:    filledStars(p.Rating),
	}

	if p.OriginalPrice != nil {
		d.FormattedOriginalPrice = utils.FormatPrice(*p.OriginalPrice)
		d.Savings = *p.OriginalPrice - p.Price
	}
	if d.Savings > 0 {
		d.FormattedSavings = utils.FormatPrice(d.Savings)
	} else {
		d.Savings = 0
	}

	if p.Discount != nil && *p.Discount != 0 {
		d.DiscountLabel = utils.FormatNumber(*p.Discount) + "% OFF"
	}

	return d
}

func filledStars(rating float64) int {
	if math.IsNaN(rating) || rating <= 0 {
		return 0
	}
	stars := int(math.Floor(rating))
	if stars > maxStars {
		return maxStars
	}
	return stars
}
