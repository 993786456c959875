package icvm

import (
	"fmt"
	"io"
	"strconv"

	"intcode.dev/intcode"
)

// Disassemble writes a disassembly of the instruction at pc to w and returns the
// position of the next instruction.
// A cell which does not decode, or whose operands would run past the end of
// the program, is written as data and the next position is pc+1.
func Disassemble(prog intcode.Program, pc int, w io.Writer) (next int, err error) {
	ix, err := Decode(prog[pc])
	if err != nil || pc+ix.Op.Len() > len(prog) {
		_, err = fmt.Fprintf(w, "data %d", prog[pc])
		return pc + 1, err
	}
	b := []byte(ix.Op.String())
	for i := 0; i < ix.Op.Arity(); i++ {
		if i == 0 {
			b = append(b, ' ')
		} else {
			b = append(b, ", "...)
		}
		arg := prog[pc+1+i]
		if ix.Modes[i] == Position {
			b = append(b, '[')
			b = strconv.AppendInt(b, arg, 10)
			b = append(b, ']')
		} else {
			b = strconv.AppendInt(b, arg, 10)
		}
	}
	_, err = w.Write(b)
	return pc + ix.Op.Len(), err
}

// DisassembleAll writes a disassembly of the whole program to w, one instruction per line,
// each prefixed with its address.
// The sweep is linear, so data which happens to decode is shown as instructions.
func DisassembleAll(prog intcode.Program, w io.Writer) error {
	for pc := 0; pc < len(prog); {
		if _, err := fmt.Fprintf(w, "%6d\t", pc); err != nil {
			return err
		}
		var err error
		if pc, err = Disassemble(prog, pc, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
