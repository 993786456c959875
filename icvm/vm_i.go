package icvm

// step decodes and executes the instruction at the program counter.
// If the instruction is an output, the value is returned with true.
func (m *Machine) step() (Word, bool) {
	w, _ := m.mem.Get(m.pc)
	ix, err := Decode(w)
	if err != nil {
		m.fail(err)
		return 0, false
	}
	var args [3]Word
	for i := 0; i < ix.Op.Arity(); i++ {
		addr := m.pc + 1 + i
		arg, ok := m.mem.Get(addr)
		if !ok {
			m.fail(ErrAddress{Addr: Word(addr), Size: m.mem.Len()})
			return 0, false
		}
		args[i] = arg
	}

	switch ix.Op {
	case OpAdd:
		m.binary(ix, args, func(a, b Word) Word { return a + b })
	case OpMul:
		m.binary(ix, args, func(a, b Word) Word { return a * b })
	case OpLess:
		m.binary(ix, args, func(a, b Word) Word { return boolWord(a < b) })
	case OpEqual:
		m.binary(ix, args, func(a, b Word) Word { return boolWord(a == b) })
	case OpIn:
		m.in(args[0])
	case OpOut:
		return m.out(ix, args[0])
	case OpJumpTrue:
		m.jump(ix, args, func(c Word) bool { return c != 0 })
	case OpJumpFalse:
		m.jump(ix, args, func(c Word) bool { return c == 0 })
	case OpHalt:
		m.steps++
		m.pc = m.mem.Len()
	default:
		panic(ix)
	}
	return 0, false
}

// load resolves a read operand.
func (m *Machine) load(mode Mode, arg Word) (Word, bool) {
	if mode == Immediate {
		return arg, true
	}
	addr, ok := m.addr(arg)
	if !ok {
		return 0, false
	}
	v, _ := m.mem.Get(addr)
	return v, true
}

// store writes v to the address dst.
func (m *Machine) store(dst Word, v Word) bool {
	addr, ok := m.addr(dst)
	if !ok {
		return false
	}
	return m.mem.Put(addr, v)
}

// addr checks that x is an address in memory.
func (m *Machine) addr(x Word) (int, bool) {
	if x < 0 || x >= Word(m.mem.Len()) {
		m.fail(ErrAddress{Addr: x, Size: m.mem.Len()})
		return 0, false
	}
	return int(x), true
}

// binary implements the instructions which combine two operands and store the result in the third.
func (m *Machine) binary(ix Instr, args [3]Word, fn func(a, b Word) Word) {
	a, ok := m.load(ix.Modes[0], args[0])
	if !ok {
		return
	}
	b, ok := m.load(ix.Modes[1], args[1])
	if !ok {
		return
	}
	if !m.store(args[2], fn(a, b)) {
		return
	}
	m.steps++
	m.pc += ix.Op.Len()
}

// in pops the front of the input queue into dst.
// The value is only consumed if it could be stored.
func (m *Machine) in(dst Word) {
	if m.input.Len() == 0 {
		m.fail(ErrInputStarved)
		return
	}
	if !m.store(dst, m.input.At(0)) {
		return
	}
	m.input.PopFront()
	m.steps++
	m.pc += OpIn.Len()
}

func (m *Machine) out(ix Instr, arg Word) (Word, bool) {
	v, ok := m.load(ix.Modes[0], arg)
	if !ok {
		return 0, false
	}
	m.steps++
	m.pc += OpOut.Len()
	return v, true
}

// jump sets the program counter to the second operand if cond holds for the first,
// otherwise it moves on to the next instruction.
// A target past the end of memory stops the machine as if it had halted.
func (m *Machine) jump(ix Instr, args [3]Word, cond func(Word) bool) {
	c, ok := m.load(ix.Modes[0], args[0])
	if !ok {
		return
	}
	if !cond(c) {
		m.steps++
		m.pc += ix.Op.Len()
		return
	}
	target, ok := m.load(ix.Modes[1], args[1])
	if !ok {
		return
	}
	if target < 0 {
		m.fail(ErrAddress{Addr: target, Size: m.mem.Len()})
		return
	}
	m.steps++
	if target > Word(m.mem.Len()) {
		target = Word(m.mem.Len())
	}
	m.pc = int(target)
}

func boolWord(x bool) Word {
	if x {
		return 1
	}
	return 0
}
