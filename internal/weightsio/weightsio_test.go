package weightsio_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvmatch/internal/weightsio"
	"github.com/katalvlaran/lvmatch/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"yaml list", "- [4, 1, 3]\n- [2, 0, 5]\n"},
		{"yaml block list", "-\n  - 4\n  - 1\n  - 3\n-\n  - 2\n  - 0\n  - 5\n"},
		{"yaml mapping", "weights:\n  - [4, 1, 3]\n  - [2, 0, 5]\n"},
		{"json list", `[[4, 1, 3], [2, 0, 5]]`},
		{"json mapping", `{"weights": [[4, 1, 3], [2, 0, 5]]}`},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := weightsio.Read(strings.NewReader(tc.doc))
			require.NoError(t, err)
			assert.Equal(t, 2, m.Rows())
			assert.Equal(t, 3, m.Cols())
			assert.Equal(t, []float64{4, 1, 3, 2, 0, 5}, m.Values())
		})
	}
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want []error
	}{
		{"empty", "", []error{weightsio.ErrEmptyDocument}},
		{"scalar", "42\n", []error{weightsio.ErrMalformed}},
		{"not numbers", "- [a, b]\n", []error{weightsio.ErrMalformed}},
		{"syntax", "[[1, 2]\n", []error{weightsio.ErrMalformed}},
		{"ragged", "- [1, 2]\n- [3]\n", []error{weightsio.ErrMalformed, matrix.ErrDimensionMismatch}},
		{"missing weights", "other: 1\n", []error{weightsio.ErrMalformed, matrix.ErrInvalidDimensions}},
		{"empty list", "[]\n", []error{weightsio.ErrMalformed, matrix.ErrInvalidDimensions}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := weightsio.Read(strings.NewReader(tc.doc))
			for _, want := range tc.want {
				require.ErrorIs(t, err, want)
			}
		})
	}
}
