package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type testTag struct{}

func (testTag) String() string { return "cell" }

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("trace")
	require.NoError(t, err)
	require.Equal(t, LevelTrace, level)

	level, err = ParseLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, "WARN", level.String())

	_, err = ParseLevel("loud")
	require.Error(t, err)
	require.Equal(t, "UNKNOWN", Level(3).String())
}

func TestLoggerLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewText(buf)

	l.Trace(testTag{}, "hidden")
	require.Empty(t, buf.String())

	require.Equal(t, LevelInfo, l.SetLevel(LevelTrace))
	l.Trace(testTag{}, "shown", "handles", 2)
	require.Contains(t, buf.String(), "level=TRACE")
	require.Contains(t, buf.String(), "tag=cell")
	require.Contains(t, buf.String(), "handles=2")
}

func TestLoggerJson(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewJson(buf)
	l.Warn("plain", "force enable", "reason", "test")

	out := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Equal(t, "WARN", out["level"])
	require.Equal(t, "plain", out["tag"])
	require.Equal(t, "test", out["reason"])
}

func TestDefaultFatalExits(t *testing.T) {
	code := -1
	prevExit := exit
	exit = func(c int) { code = c }
	defer func() { exit = prevExit }()

	buf := &bytes.Buffer{}
	prev := SetDefault(NewText(buf))
	defer SetDefault(prev)

	Fatal(nil, "boom")
	require.Equal(t, 1, code)
	require.Contains(t, buf.String(), "level=FATAL")
	require.False(t, HasTrace())
}
