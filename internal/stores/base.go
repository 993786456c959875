package stores

var _ Getter[int64] = &Base[int64]{}

// Base is a read-only image.
type Base[V any] struct {
	cells []V
}

// NewBase takes ownership of cells. The caller must not modify cells afterwards.
func NewBase[V any](cells []V) *Base[V] {
	return &Base[V]{cells: cells}
}

func (b *Base[V]) Get(addr int) (V, bool) {
	if addr < 0 || addr >= len(b.cells) {
		var zero V
		return zero, false
	}
	return b.cells[addr], true
}

func (b *Base[V]) Len() int {
	return len(b.cells)
}
