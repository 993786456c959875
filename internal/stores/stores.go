// package stores provides word addressed memories for the IntCode machine.
//
// A Base is an immutable image which may be shared between any number of
// machines. A Mem is a sparse, private set of overwritten cells. CoW layers a
// Mem over a Base.
package stores

// Getter is implemented by every memory in this package.
type Getter[V any] interface {
	// Get returns the value at addr, or false if there is no value there.
	Get(addr int) (V, bool)
}

// Store is a Getter which also accepts writes.
type Store[V any] interface {
	Getter[V]
	// Put sets the value at addr, returning false if addr is not writable.
	Put(addr int, v V) bool
}
