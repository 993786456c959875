// package iccmd implements the intcode command line tool.
//
// Commands log through the logger in their context, which star.Main provides.
package iccmd

import (
	"go.brendoncarroll.net/star"
)

func Root() star.Command {
	return root
}

var root = star.NewDir(star.Metadata{
	Short: "IntCode machine",
}, map[star.Symbol]star.Command{
	"run":  run,
	"dump": dump,
	"dis":  dis,

	"chain":  chain,
	"best":   best,
	"search": search,
})
