package vector

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/emirpasic/gods/containers"
	"golang.org/x/exp/constraints"
)

var _ containers.Container = (*Array[int])(nil)

// Array is a contiguous growable sequence of T.
// The zero value is an empty array ready to use.
type Array[T any] struct {
	data []T // len(data) is the capacity
	size int

	// generation changes whenever elements move or the buffer is replaced.
	generation uint64
}

// New creates an empty array.
func New[T any](opts ...Option) *Array[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Array[T]{}
	if cfg.capacity > 0 {
		a.data = make([]T, cfg.capacity)
	}
	return a
}

// From creates an array holding values in order.
// The capacity equals len(values).
func From[T any](values ...T) *Array[T] {
	a := &Array[T]{}
	if len(values) == 0 {
		return a
	}
	a.data = make([]T, len(values))
	copy(a.data, values)
	a.size = len(values)
	return a
}

// reallocate moves the live elements into a fresh buffer of newCap slots.
// newCap must be at least a.size.
func (a *Array[T]) reallocate(newCap int) {
	var newData []T
	if newCap > 0 {
		newData = make([]T, newCap)
		copy(newData, a.data[:a.size])
	}
	a.data = newData
	a.generation++
}

// grow makes room for one more element.
func (a *Array[T]) grow() {
	if a.size < len(a.data) {
		return
	}
	newCap := len(a.data) * 2
	if newCap == 0 {
		newCap = 1
	}
	a.reallocate(newCap)
}

// PushBack appends v, doubling the capacity first if the array is full.
func (a *Array[T]) PushBack(v T) {
	a.grow()
	a.data[a.size] = v
	a.size++
}

// PopBack removes the last element.
// Calling PopBack on an empty array is a programming error and panics.
func (a *Array[T]) PopBack() {
	if a.size == 0 {
		panic("vector: PopBack on empty array")
	}
	a.size--
	var zero T
	a.data[a.size] = zero
	a.generation++
}

// Insert places v at index, shifting [index, size) one slot to the right.
// index == Size() appends. An out-of-range index returns an *IndexError and
// leaves the array untouched.
func (a *Array[T]) Insert(index int, v T) error {
	if index < 0 || index > a.size {
		return indexError("insert", index, a.size+1)
	}

	a.grow()
	// Highest index first so nothing is overwritten before it moves.
	for i := a.size; i > index; i-- {
		a.data[i] = a.data[i-1]
	}
	a.data[index] = v
	a.size++
	a.generation++
	return nil
}

// Erase removes the element at index, shifting [index+1, size) one slot left.
// An out-of-range index returns an *IndexError and leaves the array untouched.
func (a *Array[T]) Erase(index int) error {
	if index < 0 || index >= a.size {
		return indexError("erase", index, a.size)
	}

	for i := index; i < a.size-1; i++ {
		a.data[i] = a.data[i+1]
	}
	a.size--
	var zero T
	a.data[a.size] = zero
	a.generation++
	return nil
}

// At returns the element at index.
func (a *Array[T]) At(index int) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, indexError("at", index, a.size)
	}
	return a.data[index], nil
}

// AtPtr returns a pointer to the element at index.
// The pointer is invalidated by the next reallocation.
func (a *Array[T]) AtPtr(index int) (*T, error) {
	if index < 0 || index >= a.size {
		return nil, indexError("at", index, a.size)
	}
	return &a.data[index], nil
}

// Get returns the element at index without a range check against Size.
func (a *Array[T]) Get(index int) T {
	a.assertIndex(index)
	return a.data[index]
}

// Ptr returns a pointer to the element at index without a range check against Size.
func (a *Array[T]) Ptr(index int) *T {
	a.assertIndex(index)
	return &a.data[index]
}

// Set overwrites the element at index without a range check against Size.
func (a *Array[T]) Set(index int, v T) {
	a.assertIndex(index)
	a.data[index] = v
}

func (a *Array[T]) assertIndex(index int) {
	if debug && (index < 0 || index >= a.size) {
		panic(indexError("unchecked access", index, a.size))
	}
}

// First returns the element at index 0.
func (a *Array[T]) First() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, emptyError("first")
	}
	return a.data[0], nil
}

// FirstPtr returns a pointer to the element at index 0.
func (a *Array[T]) FirstPtr() (*T, error) {
	if a.size == 0 {
		return nil, emptyError("first")
	}
	return &a.data[0], nil
}

// Last returns the element at index Size()-1.
func (a *Array[T]) Last() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, emptyError("last")
	}
	return a.data[a.size-1], nil
}

// LastPtr returns a pointer to the element at index Size()-1.
func (a *Array[T]) LastPtr() (*T, error) {
	if a.size == 0 {
		return nil, emptyError("last")
	}
	return &a.data[a.size-1], nil
}

// MaxFunc returns the greatest element according to compare, which reports
// a negative number when x < y, zero when equal and positive when x > y.
// The first of several equal maxima is returned.
func (a *Array[T]) MaxFunc(compare func(x, y T) int) (T, error) {
	if a.size == 0 {
		var zero T
		return zero, emptyError("max")
	}
	best := a.data[0]
	for i := 1; i < a.size; i++ {
		if compare(a.data[i], best) > 0 {
			best = a.data[i]
		}
	}
	return best, nil
}

// Max returns the greatest element of a.
func Max[T constraints.Ordered](a *Array[T]) (T, error) {
	return a.MaxFunc(cmp.Compare[T])
}

// Size returns the number of live elements.
func (a *Array[T]) Size() int {
	return a.size
}

// Capacity returns the number of allocated slots.
func (a *Array[T]) Capacity() int {
	return len(a.data)
}

// IsEmpty returns true if the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.size == 0
}

// Empty is IsEmpty under the containers.Container name.
func (a *Array[T]) Empty() bool {
	return a.IsEmpty()
}

// Clear releases the buffer. Size and capacity both drop to zero.
func (a *Array[T]) Clear() {
	a.data = nil
	a.size = 0
	a.generation++
}

// Shrink reallocates the buffer to exactly Size() slots.
// It does nothing when the array is already full.
func (a *Array[T]) Shrink() {
	if a.size < len(a.data) {
		a.reallocate(a.size)
	}
}

// Reserve grows the buffer to at least n slots.
func (a *Array[T]) Reserve(n int) {
	if n > len(a.data) {
		a.reallocate(n)
	}
}

// Slice returns the live elements. The slice aliases the buffer and is
// invalidated like a cursor.
func (a *Array[T]) Slice() []T {
	if a.size == 0 {
		return nil
	}
	return a.data[:a.size]
}

// Values returns the live elements boxed as interface values.
func (a *Array[T]) Values() []interface{} {
	values := make([]interface{}, a.size)
	for i := 0; i < a.size; i++ {
		values[i] = a.data[i]
	}
	return values
}

// Clone returns an independent copy with the same size and capacity.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{size: a.size}
	if len(a.data) > 0 {
		c.data = make([]T, len(a.data))
		copy(c.data, a.data[:a.size])
	}
	return c
}

// Move transfers the buffer to a new array and leaves a empty.
func (a *Array[T]) Move() *Array[T] {
	m := &Array[T]{data: a.data, size: a.size}
	a.data = nil
	a.size = 0
	a.generation++
	return m
}

// All yields index/value pairs from front to back.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Backward yields index/value pairs from back to front.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.size - 1; i >= 0; i-- {
			// yield may have erased elements above i.
			if i >= a.size {
				continue
			}
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// String formats the live elements like a slice.
func (a *Array[T]) String() string {
	return fmt.Sprint(a.data[:a.size])
}

// Equal reports whether a and b hold the same live elements in the same order.
// Capacity is ignored. A nil array is equal to any empty array.
func Equal[T comparable](a, b *Array[T]) bool {
	if a == nil || b == nil {
		return (a == nil || a.size == 0) && (b == nil || b.size == 0)
	}
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}
