package repository

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name             string
		page, pageSize   int
		wantPage, wantSz int
	}{
		{"passes valid values through", 3, 10, 3, 10},
		{"zero page becomes first page", 0, 6, 1, 6},
		{"negative page becomes first page", -4, 6, 1, 6},
		{"zero page size falls back to default", 2, 0, 2, DefaultPageSize},
		{"negative page size falls back to default", 2, -1, 2, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := normalizePage(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSz, size)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, offset(1, 6))
	assert.Equal(t, 12, offset(3, 6))
	assert.Equal(t, 0, offset(0, 0), "normalized before use")
}

func TestOffset_Saturates(t *testing.T) {
	page, size := normalizePage(math.MaxInt/3, 6)

	skip := offset(page, size)
	assert.GreaterOrEqual(t, skip, 0)
	assert.Equal(t, math.MaxInt, skip)

	assert.Equal(t, math.MaxInt, offset(math.MaxInt, math.MaxInt))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 6))
	assert.Equal(t, 1, totalPages(1, 6))
	assert.Equal(t, 1, totalPages(6, 6))
	assert.Equal(t, 2, totalPages(7, 6))
	assert.Equal(t, 3, totalPages(15, 6))
	assert.Equal(t, 0, totalPages(15, 0), "division by zero yields zero pages")
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, clampPage(1, 0))
	assert.Equal(t, 1, clampPage(5, 0))
	assert.Equal(t, 3, clampPage(9, 3))
	assert.Equal(t, 2, clampPage(2, 3))
	assert.Equal(t, 1, clampPage(-2, 3))
}

func TestSearchPattern(t *testing.T) {
	assert.Equal(t, "%%", searchPattern(""))
	assert.Equal(t, "%lee%", searchPattern("lee"))
	assert.Equal(t, `%100\%%`, searchPattern("100%"))
	assert.Equal(t, `%a\_b%`, searchPattern("a_b"))
	assert.Equal(t, `%c:\\d%`, searchPattern(`c:\d`))
}
