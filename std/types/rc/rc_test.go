package rc_test

import (
	"testing"

	"github.com/flagcell/flagcell/std/types/rc"
	"github.com/stretchr/testify/require"
)

func TestRcFree(t *testing.T) {
	freed := 0
	v := 42
	r := rc.New(&v, func(p *int) {
		require.Equal(t, 42, *p)
		freed++
	})

	require.Equal(t, int32(1), r.Count())
	require.Equal(t, int32(2), r.Inc())
	require.Equal(t, int32(3), r.Inc())
	require.Same(t, &v, r.Load())

	require.Equal(t, int32(2), r.Dec())
	require.Equal(t, int32(1), r.Dec())
	require.Equal(t, 0, freed)

	require.Equal(t, int32(0), r.Dec())
	require.Equal(t, 1, freed)
}

func TestRcMisuse(t *testing.T) {
	r := rc.New(1, nil)
	require.Equal(t, int32(0), r.Dec())
	require.Panics(t, func() { r.Dec() })
	require.Panics(t, func() { r.Inc() })
}

func TestRcLive(t *testing.T) {
	r := rc.New("v", nil)
	require.Equal(t, int32(1), r.Live().Unwrap())
	r.Inc()
	require.Equal(t, int32(2), r.Live().Unwrap())

	r.Dec()
	r.Dec()
	require.True(t, r.Live().IsNone())
}
