package parr_test

import (
	"testing"

	"github.com/teenjuna/parr"
	"github.com/teenjuna/parr/internal/testing/require"
)

func TestOptions(t *testing.T) {
	require.PanicWithError(t, "capacity can't be < 0", func() {
		parr.WithCapacity(-1)
	})

	arr := parr.New[int](parr.WithCapacity(8))
	require.Equal(t, arr.Len(), 0)
	require.Equal(t, arr.Cap(), 8)

	// A preallocated buffer absorbs pushes without growing.
	for i := range 8 {
		arr.Push(i)
	}
	require.Equal(t, arr.Cap(), 8)

	arr.Push(8)
	require.Equal(t, arr.Cap(), 16)
}
