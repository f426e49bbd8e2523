// SPDX-License-Identifier: MIT

package bipartite

import (
	"encoding/binary"
	"slices"
)

// subsetKey identifies a (row subset, column subset) pair regardless of the
// order its indices were supplied in. It is a plain string so it can be
// compared with == and used as a map key.
//
// Layout: uvarint(rows[0]) … uvarint(rows[m-1]) uvarint(cols[0]) … uvarint(cols[m-1]),
// both halves ascending. Uvarints are self-delimiting and both halves have
// the same length m, so the encoding is injective within a size class.
type subsetKey string

// canonicalKey sorts copies of rows and cols and encodes them.
// The inputs are not modified.
func canonicalKey(rows, cols []int) subsetKey {
	return encodeKey(sortedCopy(rows), sortedCopy(cols))
}

// encodeKey encodes already sorted halves.
func encodeKey(rows, cols []int) subsetKey {
	buf := make([]byte, 0, 2*(len(rows)+len(cols)))
	for _, r := range rows {
		buf = binary.AppendUvarint(buf, uint64(r))
	}
	for _, c := range cols {
		buf = binary.AppendUvarint(buf, uint64(c))
	}

	return subsetKey(buf)
}

// sortedCopy returns an ascending copy of idx.
func sortedCopy(idx []int) []int {
	cp := slices.Clone(idx)
	slices.Sort(cp)

	return cp
}

// without returns a copy of idx with position i removed.
func without(idx []int, i int) []int {
	out := make([]int, 0, len(idx)-1)
	out = append(out, idx[:i]...)

	return append(out, idx[i+1:]...)
}
