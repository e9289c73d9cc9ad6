package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"greedy", "expectimax"}, "expectimax"))
	require.Equal(t, -1, FindIndex([]string{"greedy"}, "random"))
	require.Equal(t, -1, FindIndex([]int(nil), 3))
}

func TestClamp(t *testing.T) {
	t.Run("inside interval", func(t *testing.T) {
		require.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
	})
	t.Run("below and above interval", func(t *testing.T) {
		require.Equal(t, 0.0, Clamp(-3.2, 0.0, 1.0))
		require.Equal(t, 1.0, Clamp(7.0, 0.0, 1.0))
		require.Equal(t, 10, Clamp(11, 0, 10))
	})
}
