// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after creation.
// The display list uses it to memoize text extents, which are measured
// repeatedly while bounding, indexing and picking text primitives.
package cache
