package repository

import (
	"math"
	"strings"
)

// DefaultPageSize is the number of invoices shown per table page.
const DefaultPageSize = 6

// normalizePage clamps page to at least 1 and substitutes the default page
// size for non-positive values.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// offset is the number of rows skipped before page. It saturates at
// math.MaxInt instead of overflowing, so OFFSET is never negative.
func offset(page, pageSize int) int {
	page, pageSize = normalizePage(page, pageSize)
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}

// totalPages is ceil(totalItems / pageSize), or 0 when pageSize is 0.
func totalPages(totalItems int64, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((totalItems + size - 1) / size)
}

// clampPage keeps page within [1, max(pages, 1)].
func clampPage(page, pages int) int {
	upper := pages
	if upper < 1 {
		upper = 1
	}
	return max(1, min(page, upper))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchPattern turns a user query into an ILIKE "contains" pattern. LIKE
// metacharacters in the query match literally.
func searchPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}
