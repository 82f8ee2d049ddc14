package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hrpsym/bridge"
	"github.com/katalvlaran/hrpsym/shape"
)

func TestSymmetryCount(t *testing.T) {
	n, err := bridge.SymmetryCount(nil)
	require.NoError(t, err)
	require.Equal(t, uint64(1), n)

	n, err = bridge.SymmetryCount([]uint{3, 3, 1})
	require.NoError(t, err)
	require.Equal(t, uint64(8), n)

	_, err = bridge.SymmetryCount([]uint{2, 0})
	require.ErrorIs(t, err, shape.ErrZeroExtent)
}

func TestPermutationSet(t *testing.T) {
	recs, err := bridge.PermutationSet([]uint{})
	require.NoError(t, err)
	require.Equal(t, []bridge.Record{{Value: []uint32{0}}}, recs)

	recs, err = bridge.PermutationSet([]uint{2})
	require.NoError(t, err)
	require.Equal(t, []bridge.Record{
		{Value: []uint32{0, 1}},
		{Value: []uint32{1, 0}},
	}, recs)

	for _, dims := range [][]uint{{2, 2}, {2, 2, 2}, {3, 1, 2}} {
		n, err := bridge.SymmetryCount(dims)
		require.NoError(t, err)
		recs, err := bridge.PermutationSet(dims)
		require.NoError(t, err)
		require.Len(t, recs, int(n))
	}

	_, err = bridge.PermutationSet([]uint{0})
	require.ErrorIs(t, err, shape.ErrZeroExtent)
}
