package lazyfsm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuccessors(t *testing.T) {
	t.Run("one", func(t *testing.T) {
		s := One("next")
		require.Equal(t, 1, s.Len())
		require.Equal(t, []string{"next"}, s.States())
	})

	t.Run("many", func(t *testing.T) {
		s := Many(1, 2, 3)
		require.Equal(t, 3, s.Len())
		require.Equal(t, []int{1, 2, 3}, s.States())
	})

	t.Run("none", func(t *testing.T) {
		s := None[int]()
		require.Zero(t, s.Len())
		require.Empty(t, s.States())
	})

	t.Run("zero value", func(t *testing.T) {
		var s Successors[int]
		require.Zero(t, s.Len())
		require.Nil(t, s.States())
	})
}

func TestSuccessors_StatesIsFresh(t *testing.T) {
	s := Many(1, 2)
	out := s.States()
	out[0] = 99
	require.Equal(t, []int{1, 2}, s.States())
}
