package linesolver

import (
	"container/list"
	"crypto/sha256"
	"encoding/binary"
	"sync"

	"github.com/katalvlaran/nonogrid/color"
)

// cacheKey is a content hash of (description, line): two equal lines under
// the same description collide to the same key regardless of which Board
// or which solver invocation produced them, so the cache stays valid
// across probing's many speculative re-solves of the same few recurring
// lines.
type cacheKey [32]byte

// cacheEntry is either a refined line or a recorded infeasibility; both are
// safe to cache forever for a given key, since the key is derived from
// content, not identity.
type cacheEntry struct {
	result     []color.Color
	infeasible bool
}

// Cache is a bounded, concurrency-safe LRU memoizer for Solve. Hit rate is
// high in practice: propagate.Driver and probe.Engine resubmit the same
// rows and columns many times as other lines narrow them incrementally.
type Cache struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List // most-recently-used at the front
	index    map[cacheKey]*list.Element
}

// entryNode is stored in Cache.ll; it carries the key alongside the value
// so eviction can remove the matching map entry.
type entryNode struct {
	key   cacheKey
	entry cacheEntry
}

// NewCache builds a Cache holding at most capacity entries. A
// non-positive capacity disables caching (Cache.Solve calls the
// package-level Solve directly and stores nothing) — useful for
// benchmarking the DP in isolation.
func NewCache(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		ll:       list.New(),
		index:    make(map[cacheKey]*list.Element, capacity),
	}
}

// hashLine derives the content key for (d, line). d is hashed as its
// printed (size, color) pairs; a Binary line cell is hashed via its
// String() form and a Multi cell via its bitmask, since Multi.String
// renders every unsolved mask alike as "*".
func hashLine(d color.Description, line []color.Color) cacheKey {
	h := sha256.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(d)))
	h.Write(buf[:])
	for _, b := range d {
		binary.LittleEndian.PutUint64(buf[:], uint64(b.Size))
		h.Write(buf[:])
		h.Write([]byte(b.Color.String()))
		h.Write([]byte{0})
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(len(line)))
	h.Write(buf[:])
	for _, c := range line {
		if m, ok := c.(color.Multi); ok {
			binary.LittleEndian.PutUint64(buf[:], uint64(m.Mask()))
			h.Write(buf[:])
		} else {
			h.Write([]byte(c.String()))
		}
		h.Write([]byte{0})
	}

	var key cacheKey
	copy(key[:], h.Sum(nil))

	return key
}

// Solve behaves like the package-level Solve, but first consults c and, on
// a miss, stores the outcome (result or infeasibility) before returning.
func (c *Cache) Solve(d color.Description, line []color.Color) ([]color.Color, error) {
	if c.capacity <= 0 {
		return Solve(d, line)
	}

	key := hashLine(d, line)

	c.mu.Lock()
	if elem, ok := c.index[key]; ok {
		c.ll.MoveToFront(elem)
		entry := elem.Value.(*entryNode).entry
		c.mu.Unlock()
		if entry.infeasible {
			return nil, ErrInfeasible
		}

		return entry.result, nil
	}
	c.mu.Unlock()

	result, err := Solve(d, line)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.index[key]; !ok {
		c.put(key, result, err != nil)
	}

	return result, err
}

// put inserts a fresh entry, evicting the least-recently-used one if the
// cache is at capacity. Caller must hold c.mu.
func (c *Cache) put(key cacheKey, result []color.Color, infeasible bool) {
	if c.ll.Len() >= c.capacity {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			delete(c.index, oldest.Value.(*entryNode).key)
		}
	}

	node := &entryNode{key: key, entry: cacheEntry{result: result, infeasible: infeasible}}
	c.index[key] = c.ll.PushFront(node)
}

// Len reports the number of entries currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ll.Len()
}
