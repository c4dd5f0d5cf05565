// Package pagination holds the page-number arithmetic shared by list queries
// and transports.
package pagination

import "math"

// Normalize maps absent or non-positive page numbers to the first page.
func Normalize(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// Offset is the number of rows skipped before page. Pages too far out to
// address without overflow get the largest offset a multiple of size allows,
// which lies past any real result set.
func Offset(page, size int) int {
	page = Normalize(page)
	if size <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/size {
		return math.MaxInt / size * size
	}
	return (page - 1) * size
}

// TotalPages is the number of pages needed for total rows; zero rows give zero pages.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
