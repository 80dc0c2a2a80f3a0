package utils

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/v1/products?"+query, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		query string
		want  PaginationParams
	}{
		{"", PaginationParams{Page: 1, Limit: 0}},
		{"page=3&limit=10", PaginationParams{Page: 3, Limit: 10}},
		{"page=0&limit=-5", PaginationParams{Page: 1, Limit: 0}},
		{"page=abc&limit=500", PaginationParams{Page: 1, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPaginationParams(contextWithQuery(tt.query)))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	all := Paginate(items, PaginationParams{Page: 1, Limit: 0})
	assert.Equal(t, items, all.Data)
	assert.Equal(t, 5, all.Limit)
	assert.Equal(t, 1, all.TotalPages)

	second := Paginate(items, PaginationParams{Page: 2, Limit: 2})
	assert.Equal(t, []int{3, 4}, second.Data)
	assert.Equal(t, int64(5), second.Total)
	assert.Equal(t, 3, second.TotalPages)

	beyond := Paginate(items, PaginationParams{Page: 9, Limit: 2})
	assert.Equal(t, []int{}, beyond.Data)

	empty := Paginate([]int{}, PaginationParams{Page: 1})
	assert.Equal(t, 0, empty.TotalPages)
}

func TestPaginateHugePageIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}

	params := GetPaginationParams(contextWithQuery("page=92233720368547760&limit=100"))
	result := Paginate(items, params)
	assert.Equal(t, []int{}, result.Data)
	assert.Equal(t, int64(3), result.Total)
	assert.Equal(t, 1, result.TotalPages)

	result = Paginate(items, PaginationParams{Page: math.MaxInt, Limit: 2})
	assert.Equal(t, []int{}, result.Data)
	assert.Equal(t, math.MaxInt, result.Page)

	result = Paginate(items, PaginationParams{Page: 2, Limit: math.MaxInt})
	assert.Equal(t, []int{}, result.Data)
}

func TestPaginateLastPartialPage(t *testing.T) {
	result := Paginate([]int{1, 2, 3, 4, 5}, PaginationParams{Page: 3, Limit: 2})
	assert.Equal(t, []int{5}, result.Data)
}
