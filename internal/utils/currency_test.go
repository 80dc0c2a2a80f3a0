package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{499, "₹499"},
		{1000, "₹1,000"},
		{29990, "₹29,990"},
		{134900, "₹1,34,900"},
		{242490, "₹2,42,490"},
		{12345678, "₹1,23,45,678"},
		{1899.5, "₹1,899.5"},
		{-500, "-₹500"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.amount))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1.235", FormatNumber(1.23456))
	assert.Equal(t, "12,34,567.891", FormatNumber(1234567.891))
	assert.Equal(t, "2.5", FormatNumber(2.500))
	assert.Equal(t, "0", FormatNumber(-0.0001))
	assert.Equal(t, "-1,00,000", FormatNumber(-100000))
	assert.Equal(t, "NaN", FormatNumber(math.NaN()))
	assert.Equal(t, "∞", FormatNumber(math.Inf(1)))
	assert.Equal(t, "-∞", FormatNumber(math.Inf(-1)))
}
