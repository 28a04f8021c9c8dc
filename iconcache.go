package dock

import "container/list"

// IconCache memoizes decoded icons by path. Icons are decoded once at the
// oversampled resolution and scaled per frame by the compositor. When a
// capacity is set the least recently used entry is evicted first.
type IconCache struct {
	capacity   int
	resolution int
	strength   float64
	entries    map[string]*list.Element
	order      *list.List // front is most recently used

	// load is swapped out in tests.
	load func(path string, size int, strength float64) (*Icon, error)
}

type cacheEntry struct {
	path string
	icon *Icon
}

// NewIconCache creates a cache. capacity <= 0 means unbounded.
func NewIconCache(capacity int) *IconCache {
	return &IconCache{
		capacity:   max(capacity, 0),
		resolution: DefaultMinIconResolution,
		strength:   DefaultSharpenStrength,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		load:       loadIcon,
	}
}

// SetSharpenStrength sets the unsharp mask strength for subsequent loads.
func (c *IconCache) SetSharpenStrength(s float64) {
	c.strength = s
}

// Resolution returns the edge length icons are currently decoded at.
func (c *IconCache) Resolution() int {
	return c.resolution
}

// Len returns the number of cached icons.
func (c *IconCache) Len() int {
	return c.order.Len()
}

// Get returns a cached icon without loading.
func (c *IconCache) Get(path string) (*Icon, bool) {
	el, ok := c.entries[path]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).icon, true
}

// GetOrLoad returns the icon for path, decoding it at resolution on a miss.
// A resolution different from the cached one drops every entry first.
// Load failures are logged and reported as a miss; they are not cached, so a
// later rebuild retries the file.
func (c *IconCache) GetOrLoad(path string, resolution int) (*Icon, bool) {
	if path == "" {
		return nil, false
	}
	if resolution != c.resolution {
		c.Clear()
		c.resolution = resolution
	}
	if ic, ok := c.Get(path); ok {
		return ic, true
	}
	ic, err := c.load(path, resolution, c.strength)
	if err != nil {
		Logger().Warn("icon load failed", "path", path, "err", err)
		return nil, false
	}
	c.put(path, ic)
	return ic, true
}

// Rebuild drops every entry and loads each icon path referenced by items.
// Returns the number of icons that failed to load.
func (c *IconCache) Rebuild(items []Item, resolution int) int {
	c.Clear()
	c.resolution = resolution
	failed := 0
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.Icon == "" || it.IsSeparator() || seen[it.Icon] {
			continue
		}
		seen[it.Icon] = true
		if _, ok := c.GetOrLoad(it.Icon, resolution); !ok {
			failed++
		}
	}
	Logger().Debug("icon cache rebuilt", "icons", c.Len(), "failed", failed, "resolution", resolution)
	return failed
}

// Clear removes every entry.
func (c *IconCache) Clear() {
	clear(c.entries)
	c.order.Init()
}

func (c *IconCache) put(path string, ic *Icon) {
	c.entries[path] = c.order.PushFront(&cacheEntry{path: path, icon: ic})
	for c.capacity > 0 && c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).path)
	}
}
