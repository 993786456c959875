package icvm

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"intcode.dev/intcode"
	"intcode.dev/intcode/internal/testutil"
)

func TestMachineProperties(t *testing.T) {
	ctx := testutil.QuietContext(t)
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("echo outputs its only input", prop.ForAll(
		func(v int64) bool {
			m := New(intcode.Program{3, 0, 4, 0, 99}, v)
			outs, err := m.Collect(ctx)
			return err == nil && len(outs) == 1 && outs[0] == v
		},
		gen.Int64(),
	))

	properties.Property("add reads both operands before writing", prop.ForAll(
		func(a, b int64) bool {
			m := New(intcode.Program{1, 5, 6, 0, 99, a, b})
			return m.Run(ctx) == nil && m.Read(0) == a+b && m.Read(5) == a && m.Read(6) == b
		},
		gen.Int64Range(-1<<40, 1<<40),
		gen.Int64Range(-1<<40, 1<<40),
	))

	properties.Property("mul of position operands", prop.ForAll(
		func(a, b int64) bool {
			m := New(intcode.Program{2, 5, 6, 5, 99, a, b})
			return m.Run(ctx) == nil && m.Read(5) == a*b
		},
		gen.Int64Range(-1<<20, 1<<20),
		gen.Int64Range(-1<<20, 1<<20),
	))

	properties.Property("comparisons write 1 or 0", prop.ForAll(
		func(a, b int64) bool {
			lt := New(intcode.Program{1107, a, b, 7, 4, 7, 99, -1})
			eq := New(intcode.Program{1108, a, b, 7, 4, 7, 99, -1})
			ltOut, ltOK := lt.Next()
			eqOut, eqOK := eq.Next()
			return ltOK && eqOK && ltOut == boolWord(a < b) && eqOut == boolWord(a == b)
		},
		gen.Int64Range(-5, 5),
		gen.Int64Range(-5, 5),
	))

	properties.Property("jumps are taken exactly when the condition holds", prop.ForAll(
		func(c int64) bool {
			jt := New(intcode.Program{1105, c, 7, 104, 0, 99, 0, 104, 1, 99})
			jf := New(intcode.Program{1106, c, 7, 104, 0, 99, 0, 104, 1, 99})
			jtOut, _ := jt.Next()
			jfOut, _ := jf.Next()
			return jtOut == boolWord(c != 0) && jfOut == boolWord(c == 0)
		},
		gen.OneGenOf(gen.Const(int64(0)), gen.Int64()),
	))

	properties.Property("reset restores the program image", prop.ForAll(
		func(image, writes []int64) bool {
			prog := intcode.Program(image)
			want := prog.Clone()
			m := New(prog)
			for i, v := range writes {
				if i >= m.Size() {
					break
				}
				m.Write(i, v)
			}
			m.Reset()
			for i := range want {
				if m.Read(i) != want[i] || prog[i] != want[i] {
					return false
				}
			}
			return len(m.Dirty()) == 0
		},
		gen.SliceOfN(8, gen.Int64()),
		gen.SliceOfN(8, gen.Int64()),
	))

	properties.Property("writes to a clone are invisible to the original", prop.ForAll(
		func(addr int, v int64) bool {
			m := New(intcode.Program{10, 11, 12, 13, 14})
			c := m.Clone()
			c.Write(addr, v)
			return m.Read(addr) == Word(10+addr) && c.Read(addr) == v
		},
		gen.IntRange(0, 4),
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
