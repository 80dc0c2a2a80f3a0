// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxLimit = 100

// PaginationParams is optional on listings: Limit 0 returns everything.
type PaginationParams struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type PaginationResult struct {
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"total_pages"`
	Data       interface{} `json:"data"`
}

func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	if page < 1 {
		page = 1
	}
	if limit < 0 {
		limit = 0
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return PaginationParams{
		Page:  page,
		Limit: limit,
	}
}

// Paginate slices items for the requested page.
func Paginate[T any](items []T, params PaginationParams) PaginationResult {
	total := len(items)

	if params.Limit <= 0 {
		totalPages := 0
		if total > 0 {
			totalPages = 1
		}
		return PaginationResult{
			Page:       1,
			Limit:      total,
			Total:      int64(total),
			TotalPages: totalPages,
			Data:       items,
		}
	}

	if params.Page < 1 {
		params.Page = 1
	}

	// Pages past the end are empty; checked before multiplying so a huge
	// page number cannot overflow the offset.
	start := total
	if params.Page-1 <= total/params.Limit {
		start = min((params.Page-1)*params.Limit, total)
	}
	end := total
	if params.Limit < total-start {
		end = start + params.Limit
	}

	return PaginationResult{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      int64(total),
		TotalPages: int(math.Ceil(float64(total) / float64(params.Limit))),
		Data:       items[start:end],
	}
}

func SetPaginationHeaders(c *gin.Context, result PaginationResult) {
	c.Header("X-Total-Count", strconv.FormatInt(result.Total, 10))
	c.Header("X-Page", strconv.Itoa(result.Page))
	c.Header("X-Per-Page", strconv.Itoa(result.Limit))
	c.Header("X-Total-Pages", strconv.Itoa(result.TotalPages))
}
