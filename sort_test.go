package parr_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/teenjuna/parr"
	"github.com/teenjuna/parr/internal/testing/require"
)

func byN(a, b *Item) int {
	return a.N - b.N
}

func keyN(key int, e *Item) int {
	return key - e.N
}

func TestSort(t *testing.T) {
	arr := parr.New[*Item]()
	for i := 100; i > 0; i-- {
		arr.Push(&Item{N: i})
	}

	arr.Sort(byN)

	sorted := slices.Collect(arr.Iter())
	require.True(t, slices.IsSortedFunc(sorted, byN))
	require.Equal(t, arr.Len(), 100)
}

func TestSortInsertIsStable(t *testing.T) {
	arr := parr.New[*Item]()
	for i := range 100 {
		arr.Push(&Item{ID: "first", N: 100 - i})
		arr.Push(&Item{ID: "second", N: 100 - i})
	}

	arr.SortInsert(byN)

	sorted := slices.Collect(arr.Iter())
	require.True(t, slices.IsSortedFunc(sorted, byN))
	for i := 0; i < len(sorted); i += 2 {
		require.Equal(t, sorted[i].N, sorted[i+1].N)
		require.Equal(t, sorted[i].ID, "first")
		require.Equal(t, sorted[i+1].ID, "second")
	}
}

func TestSortLiveRangeOnly(t *testing.T) {
	arr := parr.New[*Item]()
	for i := range 10 {
		arr.Push(&Item{N: i})
	}
	for range 5 {
		arr.Dequeue()
	}
	arr.Push(&Item{N: 0})

	arr.Sort(byN)

	sorted := slices.Collect(arr.Iter())
	require.Equal(t, len(sorted), 6)
	require.True(t, slices.IsSortedFunc(sorted, byN))

	first, ok := arr.First()
	require.True(t, ok)
	require.Equal(t, first.N, 0)
}

func TestFind(t *testing.T) {
	arr := parr.New[*Item]()
	for _, n := range rand.Perm(1000) {
		arr.Push(&Item{N: n})
	}
	arr.Sort(byN)

	for _, key := range []int{0, 1, 499, 998, 999} {
		i, ok := parr.FindIndex(arr, keyN, key)
		require.True(t, ok)
		require.Equal(t, i, key)

		e, ok := parr.FindElement(arr, keyN, key)
		require.True(t, ok)
		require.Equal(t, e.N, key)
	}

	_, ok := parr.FindIndex(arr, keyN, 1000)
	require.False(t, ok)
	_, ok = parr.FindElement(arr, keyN, -1)
	require.False(t, ok)
}

func TestFindFirstOfEqual(t *testing.T) {
	arr := parr.New[*Item]()
	arr.Push(&Item{N: 1})
	arr.Push(&Item{N: 2})
	arr.Push(&Item{N: 2})
	arr.Push(&Item{N: 3})

	i, ok := parr.FindIndex(arr, keyN, 2)
	require.True(t, ok)
	require.Equal(t, i, 1)
}

func TestFindEmpty(t *testing.T) {
	arr := parr.New[*Item]()
	_, ok := parr.FindIndex(arr, keyN, 1)
	require.False(t, ok)
	_, ok = parr.FindElement(arr, keyN, 1)
	require.False(t, ok)
}
