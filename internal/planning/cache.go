package planning

import "sync"

// Cache memoizes month overuse results keyed by (yearMonth, snapshot
// version). Every successful project or equipment write must call Bump,
// which drops all cached months, so a stale result is unreachable by
// construction. The engine itself never touches the cache; it belongs to
// the caller.
type Cache struct {
	mu      sync.RWMutex
	version uint64
	months  map[string]map[string][]OveruseEntry
}

func NewCache() *Cache {
	return &Cache{months: make(map[string]map[string][]OveruseEntry)}
}

// Version returns the current snapshot version. Callers read it once per
// computation and pass the same value to Get and Put.
func (c *Cache) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Bump invalidates every cached month and returns the new version.
func (c *Cache) Bump() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	c.months = make(map[string]map[string][]OveruseEntry)
	return c.version
}

// Get returns the cached overuse map for yearMonth if it was computed at
// the given version.
func (c *Cache) Get(yearMonth string, version uint64) (map[string][]OveruseEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if version != c.version {
		return nil, false
	}
	m, ok := c.months[yearMonth]
	return m, ok
}

// Put stores a computed overuse map. Results computed against a snapshot
// that has since changed are discarded.
func (c *Cache) Put(yearMonth string, version uint64, overuse map[string][]OveruseEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version != c.version {
		return
	}
	c.months[yearMonth] = overuse
}
