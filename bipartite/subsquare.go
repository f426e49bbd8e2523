// SPDX-License-Identifier: MIT

package bipartite

import (
	"math"
	"sync"
	"sync/atomic"
)

// solver holds the state of one top-level solve: a row-major snapshot of a
// square weight matrix and the memo. It never outlives the MinCostMatch
// call that created it.
type solver struct {
	n        int       // order of the square matrix
	w        []float64 // row-major weights, w[r*n+c]
	memo     store
	parallel bool

	calls atomic.Int64
	hits  atomic.Int64
}

// newSolver wraps an n×n row-major snapshot. The parallel mode gets the
// lock-protected store.
func newSolver(n int, w []float64, parallel bool) *solver {
	s := &solver{n: n, w: w, parallel: parallel}
	if parallel {
		s.memo = newLockedMemo(n)
	} else {
		s.memo = newMemo(n)
	}

	return s
}

// weight returns w(r, c).
func (s *solver) weight(r, c int) float64 { return s.w[r*s.n+c] }

// stats snapshots the counters.
func (s *solver) stats() Stats {
	return Stats{
		Calls:       s.calls.Load(),
		Hits:        s.hits.Load(),
		Subproblems: s.memo.entries(),
	}
}

// subsquare returns the minimum-cost perfect matching between rows and cols.
// Precondition: len(rows) == len(cols) >= 1. The inputs are not modified.
func (s *solver) subsquare(rows, cols []int) solution {
	s.calls.Add(1)

	m := len(rows)
	if m == 1 {
		return solution{pairs: []int{rows[0], cols[0]}, cost: s.weight(rows[0], cols[0])}
	}

	rs, cs := sortedCopy(rows), sortedCopy(cols)
	key := encodeKey(rs, cs)
	if sol, ok := s.memo.get(m, key); ok {
		s.hits.Add(1)
		return sol
	}

	return s.memo.put(m, key, s.grind(rs, cs))
}

// grind tries the largest row rs[m-1] against every column of cs in
// ascending order and keeps the strictly cheapest candidate (first found on ties).
// rs and cs must be sorted.
func (s *solver) grind(rs, cs []int) solution {
	m := len(rs)
	r, rest := rs[m-1], rs[:m-1]

	var (
		best     solution
		bestCol  = -1
		bestCost = math.Inf(1)
		sub      solution
		cost     float64
	)
	for i, c := range cs {
		sub = s.subsquare(rest, without(cs, i))
		cost = sub.cost + s.weight(r, c)
		if bestCol < 0 || cost < bestCost {
			best, bestCol, bestCost = sub, c, cost
		}
	}

	return merge(rs, best, bestCol, bestCost)
}

// grindParallel is grind with one goroutine per column. Candidates are
// collected by position and reduced in ascending column order with the same
// strict comparison, so the lowest column index wins ties.
func (s *solver) grindParallel(rs, cs []int) solution {
	m := len(rs)
	r, rest := rs[m-1], rs[:m-1]

	subs := make([]solution, len(cs))
	var wg sync.WaitGroup
	for i := range cs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			subs[i] = s.subsquare(rest, without(cs, i))
		}(i)
	}
	wg.Wait()

	bestIdx, bestCost := -1, math.Inf(1)
	for i, c := range cs {
		if cost := subs[i].cost + s.weight(r, c); bestIdx < 0 || cost < bestCost {
			bestIdx, bestCost = i, cost
		}
	}

	return merge(rs, subs[bestIdx], cs[bestIdx], bestCost)
}

// merge extends sub (matching rs[:m-1]) with the pair (rs[m-1], col).
// sub's rows are exactly rs[:m-1] in ascending order, so its column half
// lines up with rs.
func merge(rs []int, sub solution, col int, cost float64) solution {
	m := len(rs)
	pairs := make([]int, 2*m)
	copy(pairs, rs)
	copy(pairs[m:], sub.pairs[sub.size():])
	pairs[2*m-1] = col

	return solution{pairs: pairs, cost: cost}
}
