package stores

import (
	"cmp"
	"context"

	"go.brendoncarroll.net/state"
	"go.brendoncarroll.net/state/kv"
)

var _ Store[int64] = &Mem[int64]{}

// Mem is a sparse memory. Every address is writable.
// Addresses are kept in order, so listing them needs no sort.
type Mem[V any] struct {
	kv *kv.MemStore[int, V]
}

func NewMem[V any]() *Mem[V] {
	return &Mem[V]{kv: newMemStore[V]()}
}

func newMemStore[V any]() *kv.MemStore[int, V] {
	return kv.NewMemStore[int, V](func(a, b int) int {
		return cmp.Compare(a, b)
	})
}

func (s *Mem[V]) Get(addr int) (V, bool) {
	v, err := kv.Get(context.TODO(), s.kv, addr)
	if err != nil {
		if state.IsErrNotFound[int](err) {
			var zero V
			return zero, false
		}
		panic(err)
	}
	return v, true
}

func (s *Mem[V]) Put(addr int, v V) bool {
	if err := s.kv.Put(context.TODO(), addr, v); err != nil {
		panic(err)
	}
	return true
}

func (s *Mem[V]) Delete(addr int) {
	if err := s.kv.Delete(context.TODO(), addr); err != nil {
		panic(err)
	}
}

// All returns every address holding a value, in ascending order.
func (s *Mem[V]) All() (ret []int) {
	if err := kv.ForEach(context.TODO(), s.kv, state.TotalSpan[int](), func(addr int) error {
		ret = append(ret, addr)
		return nil
	}); err != nil {
		panic(err)
	}
	return ret
}

func (s *Mem[V]) Len() int {
	return s.kv.Len()
}

func (s *Mem[V]) Clear() {
	for _, addr := range s.All() {
		s.Delete(addr)
	}
}

func (s *Mem[V]) Clone() *Mem[V] {
	ret := NewMem[V]()
	for _, addr := range s.All() {
		v, _ := s.Get(addr)
		ret.Put(addr, v)
	}
	return ret
}
