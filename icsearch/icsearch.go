// package icsearch runs many trials of one program in parallel.
// Every trial runs on its own clone, so the program image is shared and never modified.
package icsearch

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"runtime"
	"slices"
	"sync"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"intcode.dev/intcode"
	"intcode.dev/intcode/icvm"
)

type Word = intcode.Word

var ErrNotFound = errors.New("icsearch: no trial matched")

// Result is a noun and verb, and the value the program left at address 0 when seeded with them.
type Result struct {
	Noun, Verb Word
	Output     Word
}

// Answer combines the noun and verb as 100*noun + verb.
func (r Result) Answer() Word {
	return 100*r.Noun + r.Verb
}

// NounVerb looks for the noun and verb which make the program leave target at address 0.
// Each trial clones m, writes the noun to address 1 and the verb to address 2, and runs
// to completion. Nouns and verbs range over [0, max).
// Trials which fault do not match. If several pairs match, the one with the lowest
// Answer is returned.
func NounVerb(ctx context.Context, m *icvm.Machine, max, target Word) (Result, error) {
	if m.Size() < 3 {
		return Result{}, fmt.Errorf("icsearch: program of %d cells has no room for a noun and verb", m.Size())
	}
	var (
		mu    sync.Mutex
		best  Result
		found bool
	)
	better := func(r Result) bool {
		mu.Lock()
		defer mu.Unlock()
		return !found || r.Answer() < best.Answer()
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for noun := Word(0); noun < max; noun++ {
		eg.Go(func() error {
			for verb := Word(0); verb < max; verb++ {
				r := Result{Noun: noun, Verb: verb}
				if !better(r) {
					return nil
				}
				trial := m.Clone()
				trial.Write(1, noun)
				trial.Write(2, verb)
				if err := trial.Run(ctx); err != nil {
					if errors.As(err, new(*icvm.Fault)) {
						continue
					}
					return err
				}
				if r.Output = trial.Read(0); r.Output != target {
					continue
				}
				mu.Lock()
				if !found || r.Answer() < best.Answer() {
					best, found = r, true
				}
				mu.Unlock()
				return nil
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}
	if !found {
		return Result{}, ErrNotFound
	}
	logctx.Debug(ctx, "found noun and verb", zap.Int64("noun", best.Noun), zap.Int64("verb", best.Verb))
	return best, nil
}

// Permutations yields every ordering of xs. Each yielded slice is freshly allocated.
func Permutations[T any](xs []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		p := slices.Clone(xs)
		var gen func(k int) bool
		gen = func(k int) bool {
			if k == len(p) {
				return yield(slices.Clone(p))
			}
			for i := k; i < len(p); i++ {
				p[k], p[i] = p[i], p[k]
				if !gen(k + 1) {
					return false
				}
				p[k], p[i] = p[i], p[k]
			}
			return true
		}
		gen(0)
	}
}

// Best is the phase order which produced the highest signal.
type Best struct {
	Phases []Word
	Signal Word
}

// MaxSignal tries every ordering of phases, starting from a signal of 0, and returns the
// ordering which produces the highest signal. The stages are run with icvm.Series, or
// with icvm.Ring if feedback is set.
// Ties go to the lexicographically smallest ordering.
func MaxSignal(ctx context.Context, prog intcode.Program, phases []Word, feedback bool) (Best, error) {
	run := icvm.Series
	if feedback {
		run = icvm.Ring
	}
	var (
		mu    sync.Mutex
		best  Best
		found bool
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for perm := range Permutations(phases) {
		eg.Go(func() error {
			sig, err := run(ctx, prog, perm, 0)
			if err != nil {
				return fmt.Errorf("phases %v: %w", perm, err)
			}
			mu.Lock()
			defer mu.Unlock()
			if !found || sig > best.Signal || (sig == best.Signal && slices.Compare(perm, best.Phases) < 0) {
				best, found = Best{Phases: perm, Signal: sig}, true
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Best{}, err
	}
	if !found {
		return Best{}, ErrNotFound
	}
	logctx.Debug(ctx, "best phase order", zap.Int64s("phases", best.Phases), zap.Int64("signal", best.Signal))
	return best, nil
}
