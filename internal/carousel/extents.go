package carousel

type extentKey struct {
	index         int
	width, height Constraint
}

// extentCache memoizes item extents by index and constraints. A nil cache is
// valid and never hits.
type extentCache struct {
	sizes map[extentKey]Size
}

func newExtentCache() *extentCache {
	return &extentCache{sizes: make(map[extentKey]Size)}
}

func (c *extentCache) get(index int, width, height Constraint) (Size, bool) {
	if c == nil {
		return Size{}, false
	}
	s, ok := c.sizes[extentKey{index: index, width: width, height: height}]
	return s, ok
}

func (c *extentCache) put(index int, width, height Constraint, s Size) {
	if c == nil {
		return
	}
	c.sizes[extentKey{index: index, width: width, height: height}] = s
}

func (c *extentCache) reset() {
	if c == nil {
		return
	}
	clear(c.sizes)
}

func (c *extentCache) len() int {
	if c == nil {
		return 0
	}
	return len(c.sizes)
}
