package vector

// cursor is the position logic shared by every cursor kind.
// dir is +1 for forward traversal and -1 for reverse traversal.
type cursor[T any] struct {
	arr        *Array[T]
	pos        int
	dir        int
	generation uint64
}

func newCursor[T any](a *Array[T], pos, dir int) cursor[T] {
	return cursor[T]{arr: a, pos: pos, dir: dir, generation: a.generation}
}

// Next steps one element in traversal order.
func (c *cursor[T]) Next() {
	c.pos += c.dir
}

// Prev steps one element against traversal order.
func (c *cursor[T]) Prev() {
	c.pos -= c.dir
}

// Index returns the storage index the cursor refers to.
// Forward end cursors report Size(); reverse end cursors report -1.
func (c cursor[T]) Index() int {
	return c.pos
}

// Reverse returns true for reverse cursors.
func (c cursor[T]) Reverse() bool {
	return c.dir < 0
}

// Valid returns true if the cursor can be dereferenced: no reallocation or
// shift has happened since it was created and it points at a live element.
func (c cursor[T]) Valid() bool {
	if c.arr == nil || c.arr.generation != c.generation {
		return false
	}
	return c.pos >= 0 && c.pos < c.arr.size
}

// Value returns the element under the cursor.
func (c cursor[T]) Value() T {
	return *c.slot(c.pos)
}

// At returns the element k steps away in traversal order.
func (c cursor[T]) At(k int) T {
	return *c.slot(c.pos + c.dir*k)
}

func (c cursor[T]) slot(pos int) *T {
	if debug {
		if c.arr.generation != c.generation {
			panic("vector: cursor used after the array was modified")
		}
		if pos < 0 || pos >= c.arr.size {
			panic(indexError("cursor", pos, c.arr.size))
		}
	}
	return &c.arr.data[pos]
}

func (c cursor[T]) offset(k int) cursor[T] {
	c.pos += c.dir * k
	return c
}

func (c cursor[T]) distance(o cursor[T]) int {
	return c.dir * (c.pos - o.pos)
}

func (c cursor[T]) equal(o cursor[T]) bool {
	return c.arr == o.arr && c.pos == o.pos && c.dir == o.dir
}

// Cursor is a mutable random-access position in an Array.
type Cursor[T any] struct {
	cursor[T]
}

// Ptr returns a pointer to the element under the cursor.
func (c Cursor[T]) Ptr() *T {
	return c.slot(c.pos)
}

// Set overwrites the element under the cursor.
func (c Cursor[T]) Set(v T) {
	*c.slot(c.pos) = v
}

// Add returns a cursor k steps further in traversal order.
func (c Cursor[T]) Add(k int) Cursor[T] {
	return Cursor[T]{c.offset(k)}
}

// Sub returns a cursor k steps back in traversal order.
func (c Cursor[T]) Sub(k int) Cursor[T] {
	return Cursor[T]{c.offset(-k)}
}

// Distance returns the number of steps from o to c in traversal order.
func (c Cursor[T]) Distance(o Cursor[T]) int {
	return c.distance(o.cursor)
}

// Equal returns true if both cursors refer to the same position.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.equal(o.cursor)
}

// Const returns a read-only cursor at the same position.
func (c Cursor[T]) Const() ConstCursor[T] {
	return ConstCursor[T]{c.cursor}
}

// ConstCursor is a read-only random-access position in an Array.
type ConstCursor[T any] struct {
	cursor[T]
}

// Add returns a cursor k steps further in traversal order.
func (c ConstCursor[T]) Add(k int) ConstCursor[T] {
	return ConstCursor[T]{c.offset(k)}
}

// Sub returns a cursor k steps back in traversal order.
func (c ConstCursor[T]) Sub(k int) ConstCursor[T] {
	return ConstCursor[T]{c.offset(-k)}
}

// Distance returns the number of steps from o to c in traversal order.
func (c ConstCursor[T]) Distance(o ConstCursor[T]) int {
	return c.distance(o.cursor)
}

// Equal returns true if both cursors refer to the same position.
func (c ConstCursor[T]) Equal(o ConstCursor[T]) bool {
	return c.equal(o.cursor)
}

// Begin returns a cursor at the first element.
func (a *Array[T]) Begin() Cursor[T] {
	return Cursor[T]{newCursor(a, 0, 1)}
}

// End returns a cursor one past the last element. It must not be dereferenced.
func (a *Array[T]) End() Cursor[T] {
	return Cursor[T]{newCursor(a, a.size, 1)}
}

// CBegin returns a read-only cursor at the first element.
func (a *Array[T]) CBegin() ConstCursor[T] {
	return ConstCursor[T]{newCursor(a, 0, 1)}
}

// CEnd returns a read-only cursor one past the last element.
func (a *Array[T]) CEnd() ConstCursor[T] {
	return ConstCursor[T]{newCursor(a, a.size, 1)}
}

// RBegin returns a reverse cursor at the last element.
func (a *Array[T]) RBegin() Cursor[T] {
	return Cursor[T]{newCursor(a, a.size-1, -1)}
}

// REnd returns a reverse cursor one before the first element.
// It must not be dereferenced.
func (a *Array[T]) REnd() Cursor[T] {
	return Cursor[T]{newCursor(a, -1, -1)}
}

// CRBegin returns a read-only reverse cursor at the last element.
func (a *Array[T]) CRBegin() ConstCursor[T] {
	return ConstCursor[T]{newCursor(a, a.size-1, -1)}
}

// CREnd returns a read-only reverse cursor one before the first element.
func (a *Array[T]) CREnd() ConstCursor[T] {
	return ConstCursor[T]{newCursor(a, -1, -1)}
}
