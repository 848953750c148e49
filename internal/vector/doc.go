// Package vector provides a generic dynamic array with random-access cursors.
//
// An Array owns a single contiguous buffer. It tracks the number of live
// elements (Size) separately from the number of allocated slots (Capacity).
// Appending to a full array reallocates the buffer to twice its capacity
// (or to one slot when empty) and moves the live elements across in index order.
//
// Key features:
//   - Amortized O(1) PushBack, O(n) Insert and Erase at arbitrary indices
//   - Bounds-checked access (At, First, Last) returning sentinel errors
//   - Unchecked access (Get, Ptr, Set) for hot loops
//   - Forward, const-forward, reverse and const-reverse cursors
//   - Range-over-func traversal via All and Backward
//
// Basic usage:
//
//	a := vector.From(1, 2, 3)
//	_ = a.Insert(1, 99)            // [1 99 2 3]
//	_ = a.Erase(0)                 // [99 2 3]
//	for c := a.Begin(); !c.Equal(a.End()); c.Next() {
//		fmt.Println(c.Value())
//	}
//
// Cursors borrow positions in the buffer. Any operation that reallocates or
// shifts elements invalidates them; Valid reports whether a cursor is still
// usable. Building with the vectordebug tag turns unchecked accesses and stale
// cursor dereferences into panics.
//
// An Array is not safe for concurrent use.
package vector
