// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, *opentype.Font](8)
//	f, err := c.GetOrLoad(path, func() (*opentype.Font, error) { return parse(path) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
