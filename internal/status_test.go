package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	require.Equal(t, StatusSoldOut, StatusFromString(" sold_out "))
	require.Equal(t, StatusCancelled, StatusFromString("cancelled"))
	require.Equal(t, Status("SOMETHING_NEW"), StatusFromString("something_new"))
}

func TestStatusPriorityOrdering(t *testing.T) {
	ranked := []Status{
		StatusTicketsAvailable,
		StatusFree,
		StatusTwoForOne,
		StatusPreview,
		StatusNoAllocation,
		StatusSoldOut,
		StatusCancelled,
	}

	for i := 1; i < len(ranked); i++ {
		require.Greater(t, ranked[i].Priority(), ranked[i-1].Priority(),
			"%s should outrank %s", ranked[i], ranked[i-1])
	}

	require.Zero(t, Status("SOMETHING_NEW").Priority())
	require.Zero(t, Status("").Priority())
	require.Equal(t, StatusNoAllocation.Priority(), StatusNoAllocationRemained.Priority())
}

func TestStatusUnavailable(t *testing.T) {
	require.True(t, StatusCancelled.Unavailable())
	require.True(t, StatusSoldOut.Unavailable())
	require.True(t, StatusNoAllocationRemained.Unavailable())
	require.False(t, StatusTicketsAvailable.Unavailable())
	require.False(t, StatusFree.Unavailable())
}

func TestStatusSoldOutLike(t *testing.T) {
	require.True(t, StatusSoldOut.SoldOutLike())
	require.True(t, StatusNoAllocation.SoldOutLike())
	require.False(t, StatusCancelled.SoldOutLike())
	require.False(t, StatusTicketsAvailable.SoldOutLike())
}
