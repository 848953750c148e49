package vector

import "testing"

// FuzzInsertErase checks that inserting then erasing at the same index
// restores the original sequence.
func FuzzInsertErase(f *testing.F) {
	f.Add([]byte{1, 2, 3}, 1, byte(99))
	f.Add([]byte{}, 0, byte(1))
	f.Add([]byte{5}, 1, byte(0))
	f.Add([]byte{1, 2, 3}, 4, byte(7))
	f.Add([]byte{1, 2, 3}, -1, byte(7))

	f.Fuzz(func(t *testing.T, initial []byte, index int, v byte) {
		a := From(initial...)
		before := a.Clone()
		capBefore := a.Capacity()

		err := a.Insert(index, v)
		if index < 0 || index > len(initial) {
			if err == nil {
				t.Fatalf("Insert(%d) on size %d should fail", index, len(initial))
			}
			if !Equal(a, before) || a.Capacity() != capBefore {
				t.Fatalf("failed Insert mutated the array")
			}
			return
		}
		if err != nil {
			t.Fatalf("Insert(%d) error: %v", index, err)
		}
		if a.Get(index) != v {
			t.Fatalf("Get(%d) = %d, want %d", index, a.Get(index), v)
		}
		for i := index; i < len(initial); i++ {
			if a.Get(i+1) != initial[i] {
				t.Fatalf("element %d not shifted", i)
			}
		}

		if err := a.Erase(index); err != nil {
			t.Fatalf("Erase(%d) error: %v", index, err)
		}
		if !Equal(a, before) {
			t.Fatalf("round trip = %v, want %v", a, before)
		}
	})
}

// FuzzErase checks that Erase removes exactly one element.
func FuzzErase(f *testing.F) {
	f.Add([]byte{1, 2, 3}, 0)
	f.Add([]byte{1, 2, 3}, 3)
	f.Add([]byte{}, 0)

	f.Fuzz(func(t *testing.T, initial []byte, index int) {
		a := From(initial...)
		err := a.Erase(index)
		if index < 0 || index >= len(initial) {
			if err == nil {
				t.Fatalf("Erase(%d) on size %d should fail", index, len(initial))
			}
			if a.Size() != len(initial) {
				t.Fatalf("failed Erase changed size")
			}
			return
		}
		if err != nil {
			t.Fatal(err)
		}
		if a.Size() != len(initial)-1 {
			t.Fatalf("Size() = %d, want %d", a.Size(), len(initial)-1)
		}
		for i := 0; i < a.Size(); i++ {
			want := initial[i]
			if i >= index {
				want = initial[i+1]
			}
			if a.Get(i) != want {
				t.Fatalf("element %d = %d, want %d", i, a.Get(i), want)
			}
		}
	})
}
