package bipartite_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatch/bipartite"
	"github.com/katalvlaran/lvmatch/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shapes lists every rows×cols combination up to 5×5.
func shapes() [][2]int {
	var out [][2]int
	for r := 1; r <= 5; r++ {
		for c := 1; c <= 5; c++ {
			out = append(out, [2]int{r, c})
		}
	}

	return out
}

// TestProperties_ValidOptimalConsistent checks, on random instances of every
// shape up to 5×5, that the assignment is valid, its cost matches the reported
// cost, and the cost equals the brute-force optimum.
func TestProperties_ValidOptimalConsistent(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(seedDet))
	const trials = 12

	for _, sh := range shapes() {
		rows, cols := sh[0], sh[1]
		for k := 0; k < trials; k++ {
			var a [][]float64
			if k%2 == 0 {
				a = randomInts(rng, rows, cols, 10)
			} else {
				a = randomFloats(rng, rows, cols, 100)
			}
			m := mustDense(a)

			res, err := bipartite.MinCostMatch(m)
			require.NoError(t, err)

			require.NoErrorf(t, bipartite.ValidateAssignment(rows, cols, res.Assignment),
				"%dx%d trial %d: %v", rows, cols, k, res.Assignment)

			sum, err := bipartite.AssignmentCost(m, res.Assignment)
			require.NoError(t, err)
			assert.InDeltaf(t, sum, res.Cost, epsCost, "%dx%d trial %d: cost consistency", rows, cols, k)
			assert.InDeltaf(t, bruteForce(a), res.Cost, epsCost, "%dx%d trial %d: optimality", rows, cols, k)
		}
	}
}

// TestProperties_TransposeSymmetry verifies that w and wᵀ have the same optimum
// and that the assignments are inverse to each other when the optimum is unique.
func TestProperties_TransposeSymmetry(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(seedDet + 1))
	for _, sh := range shapes() {
		// Floats make ties practically impossible, so both sides pick one optimum.
		a := randomFloats(rng, sh[0], sh[1], 50)
		m := mustDense(a)
		mt, err := matrix.Transpose(m)
		require.NoError(t, err)

		res, err := bipartite.MinCostMatch(m)
		require.NoError(t, err)
		resT, err := bipartite.MinCostMatch(mt)
		require.NoError(t, err)

		assert.InDelta(t, res.Cost, resT.Cost, epsCost)
		for r, c := range res.Assignment {
			if c == bipartite.Unassigned {
				continue
			}
			assert.Equalf(t, r, resT.Assignment[c], "%v: row %d→%d not mirrored", sh, r, c)
		}
	}
}

// TestProperties_PaddingMatchesTransposePath compares, for rows < cols, the
// padded square solve with the transpose path run on the dual matrix.
func TestProperties_PaddingMatchesTransposePath(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(seedDet + 2))
	for rows := 1; rows <= 4; rows++ {
		for cols := rows + 1; cols <= 5; cols++ {
			a := randomInts(rng, rows, cols, 20)
			m := mustDense(a)

			// Manual padding: BIG = 1 + 2·max, subtract BIG·skew.
			maxW, err := matrix.MaxValue(m)
			require.NoError(t, err)
			big := 1 + 2*maxW
			skew := cols - rows
			padded, err := matrix.PadRows(m, skew, big)
			require.NoError(t, err)
			sq, err := bipartite.MinCostMatch(padded)
			require.NoError(t, err)
			paddedCost := sq.Cost - big*float64(skew)

			// The dual (cols×rows) goes through the transpose path.
			dual, err := matrix.Transpose(m)
			require.NoError(t, err)
			viaDual, err := bipartite.MinCostMatch(dual)
			require.NoError(t, err)

			assert.InDeltaf(t, viaDual.Cost, paddedCost, epsCost, "%dx%d", rows, cols)
			for _, c := range sq.Assignment[rows:] {
				assert.NotEqual(t, bipartite.Unassigned, c, "padding rows are matched in the square")
			}
		}
	}
}

// TestProperties_ParallelEqualsSequential verifies identical assignments and costs.
func TestProperties_ParallelEqualsSequential(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(seedDet + 3))
	for _, sh := range shapes() {
		// Small integer range forces many ties.
		a := randomInts(rng, sh[0], sh[1], 3)

		seq, err := bipartite.MinCostMatchRows(a)
		require.NoError(t, err)
		par, err := bipartite.MinCostMatchRows(a, bipartite.WithParallel(true))
		require.NoError(t, err)

		assert.Equalf(t, seq.Assignment, par.Assignment, "%v", sh)
		assert.Equalf(t, seq.Cost, par.Cost, "%v", sh)
	}
}

// TestProperties_Deterministic verifies repeated runs return the same answer.
func TestProperties_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 4))
	a := randomInts(rng, 6, 6, 4)

	first, err := bipartite.MinCostMatchRows(a)
	require.NoError(t, err)
	for rep := 0; rep < 5; rep++ {
		again, err := bipartite.MinCostMatchRows(a)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
