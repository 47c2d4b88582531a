package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildReference_IgnoresDuplicates(t *testing.T) {
	t.Parallel()

	ref := buildReference([]string{"b", "a", "a", "c"})
	require.Equal(t, 3, ref.Len())
}

func TestSameKeySet_MatchesSortedOrder(t *testing.T) {
	t.Parallel()

	ref := buildReference([]string{"banana", "apple", "cherry"})
	require.True(t, sameKeySet(ref, []string{"apple", "banana", "cherry"}))
	require.False(t, sameKeySet(ref, []string{"apple", "banana"}))
	require.False(t, sameKeySet(ref, []string{"apple", "cherry", "banana"}))
}
