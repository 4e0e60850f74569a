package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/flagcell/flagcell/std/log"
	"github.com/stretchr/testify/require"
)

func TestSetupLog(t *testing.T) {
	prev := log.SetDefault(log.NewText(&bytes.Buffer{}))
	defer log.SetDefault(prev)

	logLevel = "trace"
	require.NoError(t, setupLog(CmdFlagcell, nil))
	require.True(t, log.HasTrace())

	logLevel = "chatty"
	require.Error(t, setupLog(CmdFlagcell, nil))
}

func TestReplaySubcommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "scenario.yml")
	require.NoError(t, os.WriteFile(file, []byte("value: 3\nsteps:\n  - {op: extract, expect: \"3\"}\n"), 0o644))

	prev := log.SetDefault(log.NewText(&bytes.Buffer{}))
	defer log.SetDefault(prev)

	out := &bytes.Buffer{}
	CmdFlagcell.SetOut(out)
	CmdFlagcell.SetArgs([]string{"replay", file, "--log-level", "warn"})
	require.NoError(t, CmdFlagcell.Execute())
	require.Contains(t, out.String(), "0 extract=3\n")
	require.Equal(t, log.LevelWarn, log.Default().Level())
}
