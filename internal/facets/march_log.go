package facets

import (
	"fmt"
	"sort"
	"sync"
)

type Category uint8

const (
	Hit     Category = iota // march found a face
	Miss                    // march exhausted the depth range
	Reject                  // ray column lies outside the bounding box
	Recover                 // pixel evaluation panicked and was recovered
)

var categoryNames = [...]string{
	Hit:     "hit",
	Miss:    "miss",
	Reject:  "bbox_reject",
	Recover: "recovered",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", c)
}

type MarchLog struct {
	Category Category
	Px, Py   int
	Z        int // depth of the hit, if any
	Value    uint8
}

type MarchLogCache struct {
	mu     sync.Mutex
	counts map[Category]int
	last   map[Category]MarchLog
}

var cache = newMarchLogCache()

func newMarchLogCache() *MarchLogCache {
	return &MarchLogCache{
		counts: make(map[Category]int),
		last:   make(map[Category]MarchLog),
	}
}

func logMarch(category Category, px, py, z int, value uint8) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.counts[category]++
	cache.last[category] = MarchLog{Category: category, Px: px, Py: py, Z: z, Value: value}
}

func marchStats() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	keys := make([]int, 0, len(cache.counts))
	for k := range cache.counts {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)
	for _, k := range keys {
		c := Category(k)
		fmt.Printf("March %s: %d pixels (last %+v)\n", c, cache.counts[c], cache.last[c])
	}
}
