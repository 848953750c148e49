package vector

import (
	"fmt"
	"testing"
)

func BenchmarkPushBack(b *testing.B) {
	for _, n := range []int{100, 10000, 1000000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				a := New[int]()
				for j := 0; j < n; j++ {
					a.PushBack(j)
				}
			}
		})
	}
}

func BenchmarkInsertFront(b *testing.B) {
	for _, n := range []int{100, 1000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				a := New[int]()
				for j := 0; j < n; j++ {
					_ = a.Insert(0, j)
				}
			}
		})
	}
}

func BenchmarkTraversal(b *testing.B) {
	a := New[int](WithCapacity(10000))
	for j := 0; j < 10000; j++ {
		a.PushBack(j)
	}

	b.Run("cursor", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for c := a.Begin(); c.Valid(); c.Next() {
				sum += c.Value()
			}
			_ = sum
		}
	})

	b.Run("reverse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for c := a.CRBegin(); c.Valid(); c.Next() {
				sum += c.Value()
			}
			_ = sum
		}
	})

	b.Run("range", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for _, v := range a.All() {
				sum += v
			}
			_ = sum
		}
	})
}
