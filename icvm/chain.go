package icvm

import (
	"context"
	"fmt"

	"intcode.dev/intcode"
)

// Series runs prog once per phase, in order. Each stage is given its phase and then
// the output of the previous stage, signal for the first stage.
// Each stage must produce exactly one output; the output of the last stage is returned.
// A single machine is reused for every stage.
func Series(ctx context.Context, prog intcode.Program, phases []Word, signal Word) (Word, error) {
	m := New(prog)
	for i, phase := range phases {
		m.Reset(phase, signal)
		outs, err := m.Collect(ctx)
		if err != nil {
			return 0, fmt.Errorf("stage %d: %w", i, err)
		}
		if len(outs) != 1 {
			return 0, ErrStageOutput{Stage: i, Count: len(outs)}
		}
		signal = outs[0]
	}
	return signal, nil
}

// Ring runs one machine per phase, connected in a loop: the output of each stage is the
// next input of the following stage, and the output of the last stage goes back to the first.
// Each machine is first given its phase, and the first stage is then given signal.
// Stages are pulled in order, one output at a time, until a stage halts.
// Ring returns the last output of the last stage.
//
// The context is only checked between rounds.
func Ring(ctx context.Context, prog intcode.Program, phases []Word, signal Word) (Word, error) {
	if len(phases) == 0 {
		return signal, nil
	}
	ms := make([]*Machine, len(phases))
	for i, phase := range phases {
		ms[i] = New(prog, phase)
	}
	var (
		last    Word
		hasLast bool
	)
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		for i, m := range ms {
			m.PushInput(signal)
			out, ok := m.Next()
			if !ok {
				if err := m.Err(); err != nil {
					return 0, fmt.Errorf("stage %d: %w", i, err)
				}
				if !hasLast {
					return 0, ErrNoOutput
				}
				return last, nil
			}
			signal = out
		}
		last, hasLast = signal, true
	}
}
