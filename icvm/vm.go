// package icvm implements the IntCode machine: a stored-program interpreter
// whose memory is a copy-on-write view over a shared program image.
//
// Execution is pull based. Next runs the program until it outputs a value or
// stops, so the outputs of a machine form a lazy sequence which the caller
// drives. The only suspension point is the output instruction.
package icvm

import (
	"context"
	"fmt"
	"iter"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"intcode.dev/intcode"
	"intcode.dev/intcode/internal/ringbuf"
	"intcode.dev/intcode/internal/stores"
)

type Word = intcode.Word

// ctxCheckInterval is how many steps Run and Collect take between checks of the context.
const ctxCheckInterval = 1 << 12

// Machine is an IntCode machine.
// A Machine is not safe for concurrent use, but clones of a machine may run concurrently.
type Machine struct {
	mem   stores.CoW[Word]
	input ringbuf.RingBuf[Word]
	pc    int
	steps uint64
	err   error
}

// New creates a machine which will run prog, with inputs queued for its input instructions.
// prog is shared, not copied, and must not be modified afterwards.
func New(prog intcode.Program, inputs ...Word) *Machine {
	return &Machine{
		mem:   stores.NewCoW(stores.NewBase[Word](prog)),
		input: ringbuf.FromSlice(inputs),
	}
}

// Reset restores the machine to the state New left it in, with a new input queue.
func (m *Machine) Reset(inputs ...Word) {
	m.mem.Reset()
	m.input.Clear()
	m.PushInput(inputs...)
	m.pc = 0
	m.steps = 0
	m.err = nil
}

// Clone returns an independent copy of m.
// The program image is shared, everything else is copied.
func (m *Machine) Clone() *Machine {
	return &Machine{
		mem:   m.mem.Clone(),
		input: m.input.Clone(),
		pc:    m.pc,
		steps: m.steps,
		err:   m.err,
	}
}

// Next runs the machine until it outputs a value, which is returned with true.
// If the machine halts or faults first, Next returns false, as do all later calls.
// A fault looks the same as a halt to the caller of Next: check Err after Next returns false.
func (m *Machine) Next() (Word, bool) {
	for m.isAlive() {
		if out, ok := m.step(); ok {
			return out, true
		}
	}
	return 0, false
}

// Outputs returns the remaining outputs of the machine as a sequence.
// Each value is produced by a call to Next.
// The sequence ends on a halt or a fault alike, so check Err once it is exhausted.
func (m *Machine) Outputs() iter.Seq[Word] {
	return func(yield func(Word) bool) {
		for {
			out, ok := m.Next()
			if !ok || !yield(out) {
				return
			}
		}
	}
}

// Run runs the machine until it halts, discarding outputs.
// It returns the fault if the program is aborted, or the context's error
// if ctx is done first. In the latter case the machine can be resumed.
func (m *Machine) Run(ctx context.Context) error {
	return m.drain(ctx, nil)
}

// Collect runs the machine until it halts and returns the outputs produced on the way.
// Outputs already pulled with Next are not included.
func (m *Machine) Collect(ctx context.Context) ([]Word, error) {
	var outs []Word
	err := m.drain(ctx, func(out Word) {
		outs = append(outs, out)
	})
	return outs, err
}

func (m *Machine) drain(ctx context.Context, fn func(Word)) error {
	for m.isAlive() {
		if m.steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if out, ok := m.step(); ok && fn != nil {
			fn(out)
		}
	}
	if m.err != nil {
		logctx.Debug(ctx, "machine faulted", zap.Error(m.err))
		return m.err
	}
	logctx.Debug(ctx, "machine halted", zap.Uint64("steps", m.steps), zap.Int("size", m.mem.Len()))
	return nil
}

// PushInput appends values to the input queue.
func (m *Machine) PushInput(vs ...Word) {
	for _, v := range vs {
		m.input.PushBack(v)
	}
}

// Pending returns the number of queued inputs.
func (m *Machine) Pending() int {
	return m.input.Len()
}

// Read returns the value at addr. It panics if addr is outside of memory.
func (m *Machine) Read(addr int) Word {
	v, ok := m.mem.Get(addr)
	if !ok {
		panic(fmt.Sprintf("icvm: read of %v", ErrAddress{Addr: Word(addr), Size: m.mem.Len()}))
	}
	return v
}

// Write sets the value at addr. It panics if addr is outside of memory.
func (m *Machine) Write(addr int, v Word) {
	if !m.mem.Put(addr, v) {
		panic(fmt.Sprintf("icvm: write of %v", ErrAddress{Addr: Word(addr), Size: m.mem.Len()}))
	}
}

// Dirty returns the addresses written since the machine was created or reset, in ascending order.
func (m *Machine) Dirty() []int {
	return m.mem.Dirty()
}

// Size is the number of cells of memory. It never changes.
func (m *Machine) Size() int {
	return m.mem.Len()
}

func (m *Machine) PC() int {
	return m.pc
}

// Steps returns the number of instructions executed since the machine was created or reset.
func (m *Machine) Steps() uint64 {
	return m.steps
}

// Halted is true once the program has stopped without a fault.
func (m *Machine) Halted() bool {
	return m.err == nil && m.pc >= m.mem.Len()
}

// Err returns the *Fault which aborted the program, if any.
func (m *Machine) Err() error {
	return m.err
}

func (m *Machine) isAlive() bool {
	return m.pc < m.mem.Len() && m.err == nil
}

func (m *Machine) fail(err error) {
	m.err = &Fault{PC: m.pc, Step: m.steps, Err: err}
}
