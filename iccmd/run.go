package iccmd

import (
	"context"
	"fmt"
	"slices"

	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"

	"intcode.dev/intcode"
	"intcode.dev/intcode/icvm"
)

var run = star.Command{
	Metadata: star.Metadata{
		Short: "run a program, printing each output as it is produced",
	},
	Flags: []star.IParam{programParam, inputParam},
	F: func(c star.Context) error {
		ctx := c.Context
		prog := programParam.Load(c)
		logLoaded(ctx, prog)
		m := icvm.New(prog, inputParam.LoadAll(c)...)
		for out := range m.Outputs() {
			c.Printf("%d\n", out)
		}
		if err := m.Err(); err != nil {
			return err
		}
		logctx.Info(ctx, "halted", zap.Uint64("steps", m.Steps()))
		return nil
	},
}

var dump = star.Command{
	Metadata: star.Metadata{
		Short: "seed memory, run a program to completion and print memory cells",
	},
	Flags: []star.IParam{programParam, inputParam, setParam, addrParam},
	F: func(c star.Context) error {
		ctx := c.Context
		prog := programParam.Load(c)
		logLoaded(ctx, prog)
		m := icvm.New(prog, inputParam.LoadAll(c)...)
		// the last assignment to an address wins
		sets := make(map[int]Word)
		for _, a := range setParam.LoadAll(c) {
			sets[a.Addr] = a.Value
		}
		setAddrs := maps.Keys(sets)
		slices.Sort(setAddrs)
		for _, addr := range setAddrs {
			if err := checkAddr(m, addr); err != nil {
				return err
			}
			m.Write(addr, sets[addr])
		}
		addrs := addrParam.LoadAll(c)
		if len(addrs) == 0 {
			addrs = []int{0}
		}
		for _, addr := range addrs {
			if err := checkAddr(m, addr); err != nil {
				return err
			}
		}
		if err := m.Run(ctx); err != nil {
			return err
		}
		for _, addr := range addrs {
			c.Printf("%d\t%d\n", addr, m.Read(addr))
		}
		return nil
	},
}

var dis = star.Command{
	Metadata: star.Metadata{
		Short: "disassemble a program",
	},
	Flags: []star.IParam{programParam},
	F: func(c star.Context) error {
		return icvm.DisassembleAll(programParam.Load(c), c.StdOut)
	},
}

func checkAddr(m *icvm.Machine, addr int) error {
	if addr < 0 || addr >= m.Size() {
		return fmt.Errorf("address %d is outside of memory [0, %d)", addr, m.Size())
	}
	return nil
}

func logLoaded(ctx context.Context, prog intcode.Program) {
	logctx.Info(ctx, "loaded program", zap.Stringer("id", prog.ID()), zap.Int("size", len(prog)))
}
