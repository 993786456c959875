package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

func Context(t testing.TB) context.Context {
	ctx := context.Background()
	ctx, cf := context.WithCancel(ctx)
	t.Cleanup(cf)
	l, err := zap.NewDevelopment()
	require.NoError(t, err)
	ctx = logctx.NewContext(ctx, l)
	return ctx
}

// ProgramFile writes src to a file in a temporary directory and returns its path.
func ProgramFile(t testing.TB, src string) string {
	p := filepath.Join(t.TempDir(), "program.txt")
	require.NoError(t, os.WriteFile(p, []byte(src), 0o644))
	return p
}

// QuietContext is like Context, but discards logs.
// It is meant for tests which run a machine many times.
func QuietContext(t testing.TB) context.Context {
	ctx, cf := context.WithCancel(context.Background())
	t.Cleanup(cf)
	return logctx.NewContext(ctx, zap.NewNop())
}
