package cache

import (
	"errors"
	"testing"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int](0)
	if _, ok := c.Get("a"); ok {
		t.Error("Get() on empty cache should miss")
	}
	c.Set("a", 1)
	c.Set("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %d, %v; want 2, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", c.Len())
	}
}

func TestCache_GetOrLoad(t *testing.T) {
	c := New[string, int](0)
	calls := 0
	load := func() (int, error) {
		calls++
		return 7, nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrLoad("k", load)
		if err != nil || v != 7 {
			t.Fatalf("GetOrLoad() = %d, %v; want 7, nil", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}
}

func TestCache_GetOrLoadError(t *testing.T) {
	c := New[string, int](0)
	boom := errors.New("boom")
	if _, err := c.GetOrLoad("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("GetOrLoad() error = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Error("failed load should not be cached")
	}
}

func TestCache_Eviction(t *testing.T) {
	c := New[int, int](4)
	for i := 0; i < 4; i++ {
		c.Set(i, i)
	}
	// Touch 0 so it survives.
	c.Get(0)
	c.Set(4, 4)

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 after eviction", c.Len())
	}
	if _, ok := c.Get(0); !ok {
		t.Error("recently used entry was evicted")
	}
	if _, ok := c.Get(4); !ok {
		t.Error("newest entry was evicted")
	}
	if _, ok := c.Get(1); ok {
		t.Error("oldest entry should be evicted")
	}
}
