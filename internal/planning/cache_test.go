package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	c := NewCache()
	v := c.Version()

	_, ok := c.Get("2024-06", v)
	require.False(t, ok)

	overuse := map[string][]OveruseEntry{"2024-06-12": {{Equipment: "Tent", Required: 6, Available: 5, Shortage: 1}}}
	c.Put("2024-06", v, overuse)

	got, ok := c.Get("2024-06", v)
	require.True(t, ok)
	assert.Equal(t, overuse, got)
}

func TestCacheBumpInvalidates(t *testing.T) {
	c := NewCache()
	v := c.Version()
	c.Put("2024-06", v, map[string][]OveruseEntry{})

	newV := c.Bump()
	require.NotEqual(t, v, newV)

	_, ok := c.Get("2024-06", v)
	assert.False(t, ok)
	_, ok = c.Get("2024-06", newV)
	assert.False(t, ok)
}

func TestCacheStalePutDiscarded(t *testing.T) {
	c := NewCache()
	v := c.Version()

	// a write landed while this result was being computed
	c.Bump()
	c.Put("2024-06", v, map[string][]OveruseEntry{})

	_, ok := c.Get("2024-06", c.Version())
	assert.False(t, ok)
}
