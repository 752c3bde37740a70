package parr

import "slices"

// SortInsert sorts the array ascending per cmp using an insertion sort.
// The sort is stable but O(n²), so it is only suitable for small or nearly
// sorted arrays. cmp must return a positive number when a > b, zero when
// a == b and a negative number when a < b.
func (a *Array[E]) SortInsert(cmp func(a, b E) int) {
	live := a.live()
	for j := 1; j < len(live); j++ {
		for i := j; i > 0 && cmp(live[i-1], live[i]) > 0; i-- {
			live[i-1], live[i] = live[i], live[i-1]
		}
	}
}

// Sort sorts the array ascending per cmp in O(n log n). The sort is not
// guaranteed to be stable; use [Array.SortInsert] when stability matters.
func (a *Array[E]) Sort(cmp func(a, b E) int) {
	slices.SortFunc(a.live(), cmp)
}

// FindIndex binary-searches the array for an element comparing equal to key
// and returns its index, or false if there is none. cmp compares a key
// against an element with the usual three-way contract.
//
// The array must already be sorted ascending consistently with cmp (see
// [Array.Sort]); the result is unspecified otherwise. When several elements
// compare equal to key, the smallest matching index is returned. O(log n).
func FindIndex[E comparable, K any](a *Array[E], cmp func(key K, e E) int, key K) (int, bool) {
	i, ok := slices.BinarySearchFunc(a.live(), key, func(e E, key K) int {
		return -cmp(key, e)
	})
	if !ok {
		return 0, false
	}
	return i, true
}

// FindElement is like [FindIndex] but returns the matching element itself.
func FindElement[E comparable, K any](a *Array[E], cmp func(key K, e E) int, key K) (E, bool) {
	i, ok := FindIndex(a, cmp, key)
	if !ok {
		var zero E
		return zero, false
	}
	return a.data[a.off+i], true
}
