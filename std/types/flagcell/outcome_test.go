package flagcell_test

import (
	"strconv"
	"testing"

	"github.com/flagcell/flagcell/std/types/flagcell"
	"github.com/stretchr/testify/require"
)

func TestOutcomeKinds(t *testing.T) {
	var zero flagcell.Outcome[int]
	require.Equal(t, flagcell.KindEmpty, zero.Kind())
	require.False(t, zero.Ok())

	ok := flagcell.Value(3)
	v, present := ok.Get()
	require.True(t, present)
	require.Equal(t, 3, v)
	require.Equal(t, 3, ok.Unwrap())
	require.NoError(t, ok.Err())
	require.Equal(t, "Value(3)", ok.String())

	cases := []struct {
		o    flagcell.Outcome[int]
		kind flagcell.Kind
		err  error
		name string
	}{
		{flagcell.Conflict[int](), flagcell.KindConflict, flagcell.ErrConflict, "Conflict"},
		{flagcell.Empty[int](), flagcell.KindEmpty, flagcell.ErrAbsent, "Empty"},
		{flagcell.Disabled[int](), flagcell.KindDisabled, flagcell.ErrDisabled, "Disabled"},
	}
	for _, c := range cases {
		require.Equal(t, c.kind, c.o.Kind())
		require.ErrorIs(t, c.o.Err(), c.err)
		require.Equal(t, c.name, c.o.String())
		require.True(t, c.o.Option().IsNone())
		require.Panics(t, func() { c.o.Unwrap() })
	}
	require.Equal(t, "Unknown", flagcell.Kind(9).String())
}

func TestOutcomeOption(t *testing.T) {
	require.Equal(t, 4, flagcell.Value(4).Option().Unwrap())
	require.Equal(t, 0, flagcell.Disabled[int]().Option().GetOr(0))
}

func TestMapOutcome(t *testing.T) {
	mapped := flagcell.MapOutcome(flagcell.Value(12), strconv.Itoa)
	require.Equal(t, "12", mapped.Unwrap())

	failed := flagcell.MapOutcome(flagcell.Disabled[int](), strconv.Itoa)
	require.Equal(t, flagcell.KindDisabled, failed.Kind())
	require.Equal(t, flagcell.KindConflict, flagcell.MapOutcome(flagcell.Conflict[int](), strconv.Itoa).Kind())
}
