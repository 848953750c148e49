package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/atlas/internal/vector"
)

// Context holds the array the vec module operates on.
// The owner may swap Array between executions.
type Context struct {
	Array *vector.Array[float64]

	// MaxCapacity bounds vec.reserve. Zero means no bound.
	MaxCapacity int
}

// VectorModule implements the vec Lua module.
type VectorModule struct {
	ctx *Context
}

// NewVectorModule creates a vec module bound to ctx.
func NewVectorModule(ctx *Context) *VectorModule {
	return &VectorModule{ctx: ctx}
}

// Name returns the module name.
func (m *VectorModule) Name() string {
	return "vec"
}

// Register installs the vec table.
func (m *VectorModule) Register(L *lua.LState) error {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"push":     m.push,
		"pop":      m.pop,
		"insert":   m.insert,
		"erase":    m.erase,
		"at":       m.at,
		"set":      m.set,
		"first":    m.first,
		"last":     m.last,
		"max":      m.max,
		"size":     m.size,
		"capacity": m.capacity,
		"empty":    m.empty,
		"clear":    m.clear,
		"shrink":   m.shrink,
		"reserve":  m.reserve,
		"values":   m.values,
		"each":     m.each,
		"reach":    m.reach,
	})
	L.SetGlobal(m.Name(), mod)
	return nil
}

func (m *VectorModule) array(L *lua.LState) *vector.Array[float64] {
	if m.ctx.Array == nil {
		L.RaiseError("vec: no array available")
	}
	return m.ctx.Array
}

// push(v, ...)
func (m *VectorModule) push(L *lua.LState) int {
	arr := m.array(L)
	top := L.GetTop()
	if top == 0 {
		L.ArgError(1, "value expected")
		return 0
	}
	for i := 1; i <= top; i++ {
		arr.PushBack(float64(L.CheckNumber(i)))
	}
	return 0
}

// pop() -> value
func (m *VectorModule) pop(L *lua.LState) int {
	arr := m.array(L)
	last, err := arr.Last()
	if err != nil {
		L.RaiseError("pop: %v", err)
		return 0
	}
	arr.PopBack()
	L.Push(lua.LNumber(last))
	return 1
}

// insert(i, v)
func (m *VectorModule) insert(L *lua.LState) int {
	index := L.CheckInt(1)
	v := L.CheckNumber(2)
	if err := m.array(L).Insert(index, float64(v)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// erase(i)
func (m *VectorModule) erase(L *lua.LState) int {
	index := L.CheckInt(1)
	if err := m.array(L).Erase(index); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// at(i) -> value
func (m *VectorModule) at(L *lua.LState) int {
	index := L.CheckInt(1)
	v, err := m.array(L).At(index)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

// set(i, v)
func (m *VectorModule) set(L *lua.LState) int {
	index := L.CheckInt(1)
	v := L.CheckNumber(2)
	p, err := m.array(L).AtPtr(index)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	*p = float64(v)
	return 0
}

func (m *VectorModule) first(L *lua.LState) int {
	return pushResult(L, m.array(L).First)
}

func (m *VectorModule) last(L *lua.LState) int {
	return pushResult(L, m.array(L).Last)
}

func (m *VectorModule) max(L *lua.LState) int {
	arr := m.array(L)
	return pushResult(L, func() (float64, error) { return vector.Max(arr) })
}

func pushResult(L *lua.LState, fn func() (float64, error)) int {
	v, err := fn()
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (m *VectorModule) size(L *lua.LState) int {
	L.Push(lua.LNumber(m.array(L).Size()))
	return 1
}

func (m *VectorModule) capacity(L *lua.LState) int {
	L.Push(lua.LNumber(m.array(L).Capacity()))
	return 1
}

func (m *VectorModule) empty(L *lua.LState) int {
	L.Push(lua.LBool(m.array(L).IsEmpty()))
	return 1
}

func (m *VectorModule) clear(L *lua.LState) int {
	m.array(L).Clear()
	return 0
}

func (m *VectorModule) shrink(L *lua.LState) int {
	m.array(L).Shrink()
	return 0
}

// reserve(n)
func (m *VectorModule) reserve(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 {
		L.ArgError(1, "capacity must be non-negative")
		return 0
	}
	if m.ctx.MaxCapacity > 0 && n > m.ctx.MaxCapacity {
		L.ArgError(1, fmt.Sprintf("capacity %d exceeds limit %d", n, m.ctx.MaxCapacity))
		return 0
	}
	m.array(L).Reserve(n)
	return 0
}

// values() -> table
// Returns a Lua sequence (1-based, as Lua tables are) of the live elements.
func (m *VectorModule) values(L *lua.LState) int {
	arr := m.array(L)
	tbl := L.CreateTable(arr.Size(), 0)
	for _, v := range arr.All() {
		tbl.Append(lua.LNumber(v))
	}
	L.Push(tbl)
	return 1
}

// each(fn(i, v)) walks front to back; reach walks back to front.
// The walk stops when fn returns false. Any change to the array from fn,
// including a push that does not reallocate, raises an error.
func (m *VectorModule) each(L *lua.LState) int {
	arr := m.array(L)
	return m.walk(L, arr, arr.CBegin())
}

func (m *VectorModule) reach(L *lua.LState) int {
	arr := m.array(L)
	return m.walk(L, arr, arr.CRBegin())
}

func (m *VectorModule) walk(L *lua.LState, arr *vector.Array[float64], c vector.ConstCursor[float64]) int {
	fn := L.CheckFunction(1)
	size := arr.Size()
	for ; c.Valid(); c.Next() {
		L.Push(fn)
		L.Push(lua.LNumber(c.Index()))
		L.Push(lua.LNumber(c.Value()))
		L.Call(2, 1)
		ret := L.Get(-1)
		L.Pop(1)
		if !c.Valid() || arr.Size() != size || m.ctx.Array != arr {
			L.RaiseError("vec: array modified during iteration")
			return 0
		}
		if ret == lua.LFalse {
			return 0
		}
	}
	return 0
}
