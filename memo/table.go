package memo

import (
	"sync"
	"sync/atomic"
)

// Table is a bounded memoization store with two rotating generations. When
// the active generation fills up to maxSize entries it becomes the fallback
// and a fresh generation takes over, so the table retains at most two
// generations of results and never grows without bound. All fields touched
// after construction are atomic, so load and store may run concurrently.
type Table struct {
	gens    [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

// NewTable creates a table bounded to maxSize entries per generation.
func NewTable(maxSize uint32) *Table {
	if maxSize == 0 {
		panic("memo: table size must be greater than 0")
	}
	t := &Table{maxSize: maxSize}
	t.gens[0].Store(&sync.Map{})
	t.gens[1].Store(&sync.Map{})
	return t
}

func (t *Table) load(key uint64) (any, bool) {
	head := t.headIdx.Load()
	if v, ok := t.gens[head].Load().Load(key); ok {
		return v, true
	}
	if v, ok := t.gens[1-head].Load().Load(key); ok {
		return v, true
	}
	return nil, false
}

func (t *Table) store(key uint64, value any) {
	if swapped := t.size.CompareAndSwap(t.maxSize, 0); swapped {
		// Install the fresh generation before flipping the head, so a
		// concurrent load through the new head never sees stale entries.
		next := 1 - t.headIdx.Load()
		t.gens[next].Store(&sync.Map{})
		t.headIdx.Store(next)
	}
	t.gens[t.headIdx.Load()].Load().Store(key, value)
	t.size.Add(1)
}
