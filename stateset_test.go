package lazyfsm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateSet_Basics(t *testing.T) {
	s := NewStateSet(1, 2, 2, 3)

	require.Equal(t, 3, s.Len())
	require.False(t, s.IsEmpty())
	require.True(t, s.Contains(2))
	require.False(t, s.Contains(4))

	empty := NewStateSet[int]()
	require.Zero(t, empty.Len())
	require.True(t, empty.IsEmpty())
}

func TestStateSet_NilIsUsable(t *testing.T) {
	var s StateSet[string]

	require.True(t, s.IsEmpty())
	require.False(t, s.Contains("x"))
	require.Empty(t, s.Members())
	require.True(t, s.Equal(NewStateSet[string]()))
	require.Equal(t, "{}", s.String())
}

func TestStateSet_Equal(t *testing.T) {
	require.True(t, NewStateSet("a", "b").Equal(NewStateSet("b", "a")))
	require.False(t, NewStateSet("a", "b").Equal(NewStateSet("a")))
	require.False(t, NewStateSet("a").Equal(NewStateSet("b")))
	require.True(t, NewStateSet[string]().Equal(nil))
}

func TestStateSet_MembersIsFresh(t *testing.T) {
	s := NewStateSet(10, 20)
	members := s.Members()
	require.ElementsMatch(t, []int{10, 20}, members)

	members[0] = 999
	require.True(t, s.Equal(NewStateSet(10, 20)))
}

func TestStateSet_Clone(t *testing.T) {
	s := NewStateSet("a", "b")
	c := s.Clone()
	require.True(t, c.Equal(s))

	c["c"] = struct{}{}
	require.False(t, c.Equal(s))
	require.True(t, s.Equal(NewStateSet("a", "b")))

	var nilSet StateSet[string]
	cloned := nilSet.Clone()
	require.NotNil(t, cloned)
	require.True(t, cloned.IsEmpty())
}

func TestStateSet_String(t *testing.T) {
	require.Equal(t, "{}", NewStateSet[int]().String())
	require.Equal(t, "{locked}", NewStateSet("locked").String())
	// members are ordered by printed form regardless of insertion order
	require.Equal(t, "{alive dead}", NewStateSet("dead", "alive").String())
	require.Equal(t, "{1 2 3}", NewStateSet(3, 1, 2).String())
}
