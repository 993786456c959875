package icsearch

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"intcode.dev/intcode"
	"intcode.dev/intcode/icvm"
	"intcode.dev/intcode/internal/testutil"
)

func TestPermutations(t *testing.T) {
	var perms [][]int
	for p := range Permutations([]int{0, 1, 2}) {
		perms = append(perms, p)
	}
	require.Len(t, perms, 6)
	slices.SortFunc(perms, func(a, b []int) int { return slices.Compare(a, b) })
	require.Equal(t, [][]int{
		{0, 1, 2}, {0, 2, 1},
		{1, 0, 2}, {1, 2, 0},
		{2, 0, 1}, {2, 1, 0},
	}, perms)

	n := 0
	for range Permutations([]int{0, 1, 2, 3, 4}) {
		n++
	}
	require.Equal(t, 120, n)

	n = 0
	for range Permutations([]int{0, 1, 2, 3, 4}) {
		if n++; n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

func TestNounVerb(t *testing.T) {
	ctx := testutil.QuietContext(t)
	// memory[0] = memory[noun] + memory[verb]
	prog := intcode.Program{1, 0, 0, 0, 99, 10, 20, 30, 40, 50, 60}
	m := icvm.New(prog)

	r, err := NounVerb(ctx, m, Word(len(prog)), 159)
	require.NoError(t, err)
	require.Equal(t, Result{Noun: 4, Verb: 10, Output: 159}, r)
	require.Equal(t, Word(410), r.Answer())

	_, err = NounVerb(ctx, m, Word(len(prog)), -1)
	require.ErrorIs(t, err, ErrNotFound)

	// the original is untouched
	require.Equal(t, intcode.Program{1, 0, 0, 0, 99, 10, 20, 30, 40, 50, 60}, prog)
	require.Empty(t, m.Dirty())
}

func TestNounVerbSkipsFaults(t *testing.T) {
	ctx := testutil.QuietContext(t)
	// nouns and verbs past the end of memory fault
	prog := intcode.Program{1, 0, 0, 0, 99, 7}
	r, err := NounVerb(ctx, icvm.New(prog), 100, 14)
	require.NoError(t, err)
	require.Equal(t, Word(505), r.Answer())
}

func TestNounVerbCancel(t *testing.T) {
	ctx, cf := context.WithCancel(testutil.QuietContext(t))
	cf()
	_, err := NounVerb(ctx, icvm.New(intcode.Program{1, 0, 0, 0, 99}), 5, 0)
	require.ErrorIs(t, err, context.Canceled)

	_, err = NounVerb(testutil.QuietContext(t), icvm.New(intcode.Program{99}), 5, 0)
	require.Error(t, err)
}

func TestMaxSignal(t *testing.T) {
	t.Parallel()
	type testCase struct {
		Name     string
		Prog     string
		Phases   []Word
		Feedback bool
		Best     Best
	}
	tcs := []testCase{
		{
			Name:   "Series",
			Prog:   "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0",
			Phases: []Word{0, 1, 2, 3, 4},
			Best:   Best{Phases: []Word{4, 3, 2, 1, 0}, Signal: 43210},
		},
		{
			Name:   "Series2",
			Prog:   "3,23,3,24,1002,24,10,24,1002,23,-1,23,101,5,23,23,1,24,23,23,4,23,99,0,0",
			Phases: []Word{0, 1, 2, 3, 4},
			Best:   Best{Phases: []Word{0, 1, 2, 3, 4}, Signal: 54321},
		},
		{
			Name:     "Ring",
			Prog:     "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5",
			Phases:   []Word{5, 6, 7, 8, 9},
			Feedback: true,
			Best:     Best{Phases: []Word{9, 8, 7, 6, 5}, Signal: 139629729},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := testutil.QuietContext(t)
			prog, err := intcode.ParseString(tc.Prog)
			require.NoError(t, err)
			best, err := MaxSignal(ctx, prog, tc.Phases, tc.Feedback)
			require.NoError(t, err)
			require.Equal(t, tc.Best, best)
		})
	}
}

func TestMaxSignalFault(t *testing.T) {
	ctx := testutil.QuietContext(t)
	_, err := MaxSignal(ctx, intcode.Program{3, 0, 3, 0, 3, 0, 99}, []Word{0, 1}, false)
	require.ErrorIs(t, err, icvm.ErrInputStarved)
}
