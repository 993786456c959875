package stores

var _ Store[int64] = CoW[int64]{}

// CoW is a copy-on-write memory.
// Reads consult Write first and fall back to Read. Writes only touch Write.
// The address space is fixed to that of Read.
type CoW[V any] struct {
	Write *Mem[V]
	Read  *Base[V]
}

func NewCoW[V any](base *Base[V]) CoW[V] {
	return CoW[V]{Write: NewMem[V](), Read: base}
}

func (s CoW[V]) Get(addr int) (V, bool) {
	if s.Write.Len() == 0 {
		return s.Read.Get(addr)
	}
	if v, ok := s.Write.Get(addr); ok {
		return v, true
	}
	return s.Read.Get(addr)
}

func (s CoW[V]) Put(addr int, v V) bool {
	if addr < 0 || addr >= s.Read.Len() {
		return false
	}
	return s.Write.Put(addr, v)
}

func (s CoW[V]) Len() int {
	return s.Read.Len()
}

// Dirty returns the addresses which have been written since the last Reset.
func (s CoW[V]) Dirty() []int {
	return s.Write.All()
}

// Reset discards every write, restoring the contents of Read.
func (s CoW[V]) Reset() {
	s.Write.Clear()
}

// Clone returns a CoW sharing Read, with a private copy of Write.
func (s CoW[V]) Clone() CoW[V] {
	return CoW[V]{Write: s.Write.Clone(), Read: s.Read}
}
