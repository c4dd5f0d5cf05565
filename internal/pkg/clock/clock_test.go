package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("x", 3600))
	c := NewFake(start)

	assert.Equal(t, time.UTC, c.Now().Location())
	assert.True(t, c.Now().Equal(start))

	next := c.Advance(time.Minute)
	assert.Equal(t, next, c.Now())
	assert.True(t, next.Equal(start.Add(time.Minute)))

	c.Set(start)
	assert.True(t, c.Now().Equal(start))
}

func TestRealClock_UTC(t *testing.T) {
	assert.Equal(t, time.UTC, RealClock{}.Now().Location())
}
