package iccmd

import (
	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"intcode.dev/intcode/icsearch"
	"intcode.dev/intcode/icvm"
)

var chain = star.Command{
	Metadata: star.Metadata{
		Short: "run one machine per phase, each feeding the next, and print the final signal",
	},
	Flags: []star.IParam{programParam, phasesParam, feedbackParam},
	F: func(c star.Context) error {
		ctx := c.Context
		prog := programParam.Load(c)
		run := icvm.Series
		if feedbackParam.Load(c) {
			run = icvm.Ring
		}
		sig, err := run(ctx, prog, phasesParam.Load(c), 0)
		if err != nil {
			return err
		}
		c.Printf("%d\n", sig)
		return nil
	},
}

var best = star.Command{
	Metadata: star.Metadata{
		Short: "find the phase order which produces the highest signal",
	},
	Flags: []star.IParam{programParam, phasesParam, feedbackParam},
	F: func(c star.Context) error {
		ctx := c.Context
		b, err := icsearch.MaxSignal(ctx, programParam.Load(c), phasesParam.Load(c), feedbackParam.Load(c))
		if err != nil {
			return err
		}
		logctx.Info(ctx, "best phase order", zap.Int64s("phases", b.Phases))
		c.Printf("%d\n", b.Signal)
		return nil
	},
}

var search = star.Command{
	Metadata: star.Metadata{
		Short: "find the noun and verb which leave target at address 0, print 100*noun+verb",
	},
	Flags: []star.IParam{programParam, targetParam, maxParam},
	F: func(c star.Context) error {
		ctx := c.Context
		m := icvm.New(programParam.Load(c))
		r, err := icsearch.NounVerb(ctx, m, maxParam.Load(c), targetParam.Load(c))
		if err != nil {
			return err
		}
		logctx.Info(ctx, "found", zap.Int64("noun", r.Noun), zap.Int64("verb", r.Verb))
		c.Printf("%d\n", r.Answer())
		return nil
	},
}
