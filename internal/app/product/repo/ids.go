package repo

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// IDSource yields positive int64 keys for stores that cannot generate them.
type IDSource func() int64

// RandomID derives a positive int64 from a random UUID. Spanner spreads
// writes better on random keys than on sequences.
func RandomID() int64 {
	for {
		u := uuid.New()
		if id := int64(binary.BigEndian.Uint64(u[:8]) >> 1); id > 0 {
			return id
		}
	}
}
