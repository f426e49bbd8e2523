// SPDX-License-Identifier: MIT

package bipartite

import "sync"

// store maps (size class, canonical key) to a solved subsquare.
// Entries are write-once: put never replaces an existing entry and returns
// whichever solution ends up stored.
type store interface {
	get(size int, k subsetKey) (solution, bool)
	put(size int, k subsetKey, s solution) solution
	entries() int64
}

var (
	_ store = (*memo)(nil)
	_ store = (*lockedMemo)(nil)
)

// memo is the single-goroutine store. classes[m] is allocated on the first
// insert of size m.
type memo struct {
	classes []map[subsetKey]solution
	n       int64
}

// newMemo sizes the class index for subsquares up to maxSize.
func newMemo(maxSize int) *memo {
	return &memo{classes: make([]map[subsetKey]solution, maxSize+1)}
}

func (m *memo) get(size int, k subsetKey) (solution, bool) {
	cls := m.classes[size]
	if cls == nil {
		return solution{}, false
	}
	s, ok := cls[k]

	return s, ok
}

func (m *memo) put(size int, k subsetKey, s solution) solution {
	cls := m.classes[size]
	if cls == nil {
		cls = make(map[subsetKey]solution)
		m.classes[size] = cls
	}
	if prev, ok := cls[k]; ok {
		return prev
	}
	cls[k] = s
	m.n++

	return s
}

func (m *memo) entries() int64 { return m.n }

// lockedClass is one size class guarded by its own lock.
type lockedClass struct {
	mu sync.RWMutex
	m  map[subsetKey]solution
}

// lockedMemo is the concurrent store: one RWMutex per size class and
// insert-if-absent semantics. All classes are allocated up front so the
// class index itself is never written after construction.
type lockedMemo struct {
	classes []lockedClass
	mu      sync.Mutex // guards n
	n       int64
}

// newLockedMemo sizes the class index for subsquares up to maxSize.
func newLockedMemo(maxSize int) *lockedMemo {
	lm := &lockedMemo{classes: make([]lockedClass, maxSize+1)}
	for i := range lm.classes {
		lm.classes[i].m = make(map[subsetKey]solution)
	}

	return lm
}

func (lm *lockedMemo) get(size int, k subsetKey) (solution, bool) {
	cls := &lm.classes[size]
	cls.mu.RLock()
	s, ok := cls.m[k]
	cls.mu.RUnlock()

	return s, ok
}

func (lm *lockedMemo) put(size int, k subsetKey, s solution) solution {
	cls := &lm.classes[size]
	cls.mu.Lock()
	if prev, ok := cls.m[k]; ok {
		cls.mu.Unlock()
		return prev
	}
	cls.m[k] = s
	cls.mu.Unlock()

	lm.mu.Lock()
	lm.n++
	lm.mu.Unlock()

	return s
}

func (lm *lockedMemo) entries() int64 {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	return lm.n
}
