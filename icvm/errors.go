package icvm

import (
	"errors"
	"fmt"
)

// ErrInputStarved is the cause of a Fault raised when an input instruction
// finds the input queue empty.
var ErrInputStarved = errors.New("input requested with an empty input queue")

// ErrNoOutput is returned by Ring when the loop halts before the last stage produced anything.
var ErrNoOutput = errors.New("no output produced")

type ErrUnknownOpcode struct {
	Word Word
}

func (e ErrUnknownOpcode) Error() string {
	return fmt.Sprintf("unknown opcode in instruction word %d", e.Word)
}

// ErrBadMode is returned for a mode digit which is not a known mode,
// or for a write target which is not in position mode.
type ErrBadMode struct {
	Word   Word
	Param  int
	Mode   Word
	Target bool
}

func (e ErrBadMode) Error() string {
	if e.Target {
		return fmt.Sprintf("instruction word %d: write target (parameter %d) must be in position mode, have mode %d", e.Word, e.Param+1, e.Mode)
	}
	return fmt.Sprintf("instruction word %d: parameter %d has unknown mode %d", e.Word, e.Param+1, e.Mode)
}

// ErrAddress is the cause of a Fault raised when the program touches an
// address outside of memory.
type ErrAddress struct {
	Addr Word
	Size int
}

func (e ErrAddress) Error() string {
	return fmt.Sprintf("address %d out of range [0, %d)", e.Addr, e.Size)
}

// ErrStageOutput is returned by Series when a stage does not produce exactly one output.
type ErrStageOutput struct {
	Stage int
	Count int
}

func (e ErrStageOutput) Error() string {
	return fmt.Sprintf("stage %d produced %d outputs, expected 1", e.Stage, e.Count)
}

// Fault is the error latched by a machine when it aborts a program.
// Err is the cause.
type Fault struct {
	PC   int
	Step uint64
	Err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at pc=%d after %d steps: %v", f.PC, f.Step, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
