package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	require.True(t, Contains([]int{1, 2}, 2))
	require.False(t, Contains(nil, 2))
}
