package product

import (
	"strconv"

	"github.com/murkotick/catalog-admin/internal/app/product/dto"
)

// The page token is the next page number. Callers may send either "page"
// or the "pageToken" from a previous reply.
func encodePageToken(page *dto.ProductPage) string {
	if page == nil || !page.HasNext {
		return ""
	}
	return strconv.Itoa(page.Page + 1)
}

func decodePageToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	return strconv.Atoi(token)
}
