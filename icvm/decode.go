package icvm

import "fmt"

// Op is an IntCode opcode: the low two decimal digits of an instruction word.
type Op uint8

const (
	OpAdd       Op = 1
	OpMul       Op = 2
	OpIn        Op = 3
	OpOut       Op = 4
	OpJumpTrue  Op = 5
	OpJumpFalse Op = 6
	OpLess      Op = 7
	OpEqual     Op = 8
	OpHalt      Op = 99
)

func (op Op) Valid() bool {
	switch op {
	case OpAdd, OpMul, OpIn, OpOut, OpJumpTrue, OpJumpFalse, OpLess, OpEqual, OpHalt:
		return true
	}
	return false
}

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpIn:
		return "in"
	case OpOut:
		return "out"
	case OpJumpTrue:
		return "jt"
	case OpJumpFalse:
		return "jf"
	case OpLess:
		return "lt"
	case OpEqual:
		return "eq"
	case OpHalt:
		return "halt"
	default:
		return fmt.Sprintf("op(%d)", uint8(op))
	}
}

// Arity is the number of operand cells following the instruction word.
func (op Op) Arity() int {
	switch op {
	case OpAdd, OpMul, OpLess, OpEqual:
		return 3
	case OpJumpTrue, OpJumpFalse:
		return 2
	case OpIn, OpOut:
		return 1
	default:
		return 0
	}
}

// Len is the number of cells the instruction occupies.
// For the jumps this is how far the program counter advances when the jump is not taken.
func (op Op) Len() int {
	return op.Arity() + 1
}

// target returns the index of the operand written by op, or -1 if op writes nothing.
func (op Op) target() int {
	switch op {
	case OpAdd, OpMul, OpLess, OpEqual:
		return 2
	case OpIn:
		return 0
	default:
		return -1
	}
}

// Mode says how an operand is interpreted.
type Mode uint8

const (
	// Position operands are addresses of the value.
	Position Mode = 0
	// Immediate operands are the value.
	Immediate Mode = 1
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Instr is a decoded instruction word.
type Instr struct {
	Op    Op
	Modes [3]Mode
}

// Decode decodes an instruction word.
// The modes are taken from the decimal digits above the opcode, the hundreds digit
// for the first operand, thousands for the second, ten thousands for the third.
// Digits beyond the arity of the opcode are ignored.
func Decode(w Word) (Instr, error) {
	if w < 0 {
		return Instr{}, ErrUnknownOpcode{Word: w}
	}
	op := Op(w % 100)
	if !op.Valid() {
		return Instr{}, ErrUnknownOpcode{Word: w}
	}
	ix := Instr{Op: op}
	digits := w / 100
	for i := 0; i < op.Arity(); i++ {
		d := digits % 10
		digits /= 10
		if d != Word(Position) && d != Word(Immediate) {
			return Instr{}, ErrBadMode{Word: w, Param: i, Mode: d}
		}
		ix.Modes[i] = Mode(d)
	}
	if i := op.target(); i >= 0 && ix.Modes[i] != Position {
		return Instr{}, ErrBadMode{Word: w, Param: i, Mode: Word(ix.Modes[i]), Target: true}
	}
	return ix, nil
}
