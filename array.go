// Package parr provides a dynamic, sortable, multi-purpose container of
// comparable elements.
//
// An [Array] is a contiguous buffer with a multi-purpose interface, allowing
// it to act as a plain dynamic array, a stack, a FIFO queue, a binary-searchable
// list, or all of the above at once. What data structure it acts as depends
// only on the operations used on it: an Array that is only ever modified
// through [Array.Push] and [Array.Pop] is effectively a stack.
//
// An Array never owns the values it stores: they are not copied, merged or
// released, and their lifetimes are entirely the caller's concern. Fallible
// operations report failure through an explicit second result instead of a
// sentinel value, so stored elements can never be confused with "absent".
//
// An Array is not thread-safe.
package parr

import (
	"iter"
	"slices"
)

// Array is a growable container of E. The zero value is an empty Array ready
// for use.
//
// Internally, live elements occupy the contiguous slots [off, off+length) of
// the backing slice. Logical index i always maps to physical slot off+i.
// Dequeue advances off instead of shifting elements, and a full buffer grows
// either by an in-place compaction (when the dead prefix is at least as large
// as the live region) or by a doubling reallocation, which keeps both Push
// and Dequeue amortized O(1).
type Array[E comparable] struct {
	data    []E
	off     int
	length  int
	metrics *metrics
}

// New returns an empty Array configured by the given options.
func New[E comparable](options ...Option) *Array[E] {
	cfg := newConfig(options...)

	a := Array[E]{metrics: cfg.metrics}
	if cfg.capacity > 0 {
		a.data = make([]E, cfg.capacity)
	}

	a.metrics.setLen(0)
	a.metrics.setCap(len(a.data))

	return &a
}

// Len returns the number of elements in the array.
func (a *Array[E]) Len() int {
	return a.length
}

// Cap returns the number of allocated slots in the backing buffer.
func (a *Array[E]) Cap() int {
	return len(a.data)
}

// Get returns the element at index i, or false if i is out of bounds.
func (a *Array[E]) Get(i int) (E, bool) {
	if i < 0 || i >= a.length {
		var zero E
		return zero, false
	}
	return a.data[a.off+i], true
}

// First returns the element at index 0, or false if the array is empty.
func (a *Array[E]) First() (E, bool) {
	return a.Get(0)
}

// Last returns the element at index Len()-1, or false if the array is empty.
func (a *Array[E]) Last() (E, bool) {
	return a.Get(a.length - 1)
}

// IndexOf returns the first index holding an element equal to e, or -1 if
// there is none. It is an O(n) linear scan.
func (a *Array[E]) IndexOf(e E) int {
	return slices.Index(a.live(), e)
}

// Set overwrites the element at index i. It reports false if i is out of
// bounds, in which case the array is unchanged.
func (a *Array[E]) Set(i int, e E) bool {
	if i < 0 || i >= a.length {
		return false
	}
	a.data[a.off+i] = e
	return true
}

// Push appends e and returns its index. The buffer grows as needed;
// amortized O(1).
func (a *Array[E]) Push(e E) int {
	if a.off+a.length == len(a.data) {
		a.grow()
	}
	a.data[a.off+a.length] = e
	a.length++

	a.metrics.incPushes()
	a.metrics.setLen(a.length)

	return a.length - 1
}

// Pop removes and returns the last element, or false if the array is empty.
func (a *Array[E]) Pop() (E, bool) {
	if a.length == 0 {
		var zero E
		return zero, false
	}

	a.length--
	i := a.off + a.length
	e := a.data[i]

	var zero E
	a.data[i] = zero

	a.metrics.setLen(a.length)
	return e, true
}

// Dequeue removes and returns the first element, or false if the array is
// empty. It advances the internal offset instead of shifting elements;
// amortized O(1).
func (a *Array[E]) Dequeue() (E, bool) {
	if a.length == 0 {
		var zero E
		return zero, false
	}

	e := a.data[a.off]

	var zero E
	a.data[a.off] = zero
	a.off++
	a.length--

	a.metrics.setLen(a.length)
	return e, true
}

// Insert places e at index i, shifting the elements at [i, Len()) one slot
// forward. i == Len() is permitted and appends, like Push. It reports false
// if i is out of [0, Len()], in which case the array is unchanged. O(n).
func (a *Array[E]) Insert(i int, e E) bool {
	if i < 0 || i > a.length {
		return false
	}
	if a.off+a.length == len(a.data) {
		a.grow()
	}

	p := a.off + i
	copy(a.data[p+1:a.off+a.length+1], a.data[p:a.off+a.length])
	a.data[p] = e
	a.length++

	a.metrics.setLen(a.length)
	return true
}

// Remove removes and returns the element at index i, shifting the elements
// after it one slot backward so their relative order is preserved. It reports
// false if i is out of bounds. O(n).
func (a *Array[E]) Remove(i int) (E, bool) {
	if i < 0 || i >= a.length {
		var zero E
		return zero, false
	}

	p := a.off + i
	e := a.data[p]
	copy(a.data[p:], a.data[p+1:a.off+a.length])
	a.length--

	var zero E
	a.data[a.off+a.length] = zero

	a.metrics.setLen(a.length)
	return e, true
}

// Ditch removes and returns the element at index i, moving the current last
// element into the vacated slot. Faster than Remove but does not preserve the
// order of the remaining elements. It reports false if i is out of bounds.
// O(1).
func (a *Array[E]) Ditch(i int) (E, bool) {
	if i < 0 || i >= a.length {
		var zero E
		return zero, false
	}

	e := a.data[a.off+i]
	last, _ := a.Pop()
	if i < a.length {
		a.data[a.off+i] = last
	}
	return e, true
}

// Clear removes all elements. The backing buffer is retained.
func (a *Array[E]) Clear() {
	clear(a.data)
	a.off = 0
	a.length = 0
	a.metrics.setLen(0)
}

// SetCapacity adjusts the backing buffer to most closely match the given
// capacity, never below the current length, and returns the resulting
// capacity. The live region is compacted to the start of the buffer first.
func (a *Array[E]) SetCapacity(capacity int) int {
	if capacity < a.length {
		capacity = a.length
	}
	if a.off > 0 {
		copy(a.data, a.data[a.off:a.off+a.length])
		clear(a.data[a.length:])
		a.off = 0
		a.metrics.incCompactions()
	}
	if capacity != len(a.data) {
		next := make([]E, capacity)
		copy(next, a.data[:a.length])
		a.data = next
		a.metrics.setCap(capacity)
	}
	return len(a.data)
}

// Free drops the backing buffer so it can be reclaimed by the garbage
// collector. The array is empty afterwards; further use reallocates from
// scratch.
func (a *Array[E]) Free() {
	a.data = nil
	a.off = 0
	a.length = 0
	a.metrics.setLen(0)
	a.metrics.setCap(0)
}

// Iter returns a sequence of all elements in logical order.
//
// The array must not be mutated while iterating.
func (a *Array[E]) Iter() iter.Seq[E] {
	return slices.Values(a.live())
}

func (a *Array[E]) live() []E {
	return a.data[a.off : a.off+a.length]
}

// grow makes room for at least one more element past the live region. Called
// only when off+length == cap. If the dead prefix is at least as large as the
// live region, the live region is copied to the start of the buffer, which
// reclaims the prefix without allocating and costs no more than a comparable
// reallocation would. Otherwise capacity doubles.
func (a *Array[E]) grow() {
	if len(a.data) == 0 {
		a.data = make([]E, 1)
		a.metrics.incGrows()
		a.metrics.setCap(1)
		return
	}

	if a.off >= a.length {
		copy(a.data, a.data[a.off:a.off+a.length])
		clear(a.data[a.length:])
		a.off = 0
		a.metrics.incCompactions()
		return
	}

	next := make([]E, len(a.data)*2)
	copy(next, a.data[a.off:a.off+a.length])
	a.data = next
	a.off = 0

	a.metrics.incGrows()
	a.metrics.setCap(len(a.data))
}
