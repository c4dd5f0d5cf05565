package product

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// priceText keeps the submitted price as text. It accepts a JSON string or
// a JSON number so that "9.90" and 9.90 both work and bad input can be echoed.
type priceText string

func (p *priceText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = priceText(s)
		return nil
	}
	*p = priceText(b)
	return nil
}

type createProductRequest struct {
	Name       string    `json:"name"`
	Price      priceText `json:"price"`
	CategoryID int64     `json:"categoryId"`
}

type updateProductRequest struct {
	ProductID  int64     `json:"productId"`
	Version    int64     `json:"version"`
	Name       string    `json:"name"`
	Price      priceText `json:"price"`
	CategoryID int64     `json:"categoryId"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}

// parseID returns 0 for anything that is not a positive integer; callers
// treat 0 as an absent product.
func parseID(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
