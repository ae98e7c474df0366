package pagination

import (
	"fmt"
	"math"
)

// Offset returns the row offset for a 1-based page.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// TotalPages returns the number of pages needed for total rows.
func TotalPages(limit int, total int64) int {
	if limit <= 0 || total == 0 {
		return 1
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// Showing renders "21-40 of 150 results" for a page.
func Showing(page, limit int, total int64) string {
	if total == 0 {
		return "0 results"
	}
	start := int64(Offset(page, limit)) + 1
	end := int64(page * limit)
	if end > total || limit <= 0 {
		end = total
	}
	return fmt.Sprintf("%d-%d of %d results", start, end, total)
}
