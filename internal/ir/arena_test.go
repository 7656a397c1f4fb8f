package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaAllocIsOneBasedAndStable(t *testing.T) {
	a := NewArena()
	id1 := a.Alloc(&Unreachable{})
	id2 := a.Alloc(&Unreachable{})
	require.NotEqual(t, InvalidExprID, id1)
	require.NotEqual(t, id1, id2)
	require.Equal(t, ExprID(1), id1)
	require.Equal(t, ExprID(2), id2)
}

func TestArenaGetMissingAndInvalid(t *testing.T) {
	a := NewArena()
	_, ok := a.Get(InvalidExprID)
	require.False(t, ok)
	_, ok = a.Get(ExprID(99))
	require.False(t, ok)
}

func TestArenaSetRewritesInPlace(t *testing.T) {
	a := NewArena()
	id := a.Alloc(&Const{Value: ConstValue{I32: 1}})
	a.Set(id, &Const{Value: ConstValue{I32: 2}})
	got := a.MustGet(id)
	c, ok := got.(*Const)
	require.True(t, ok)
	require.Equal(t, int32(2), c.Value.I32)
}

func TestArenaTombstoneRetainsSlot(t *testing.T) {
	a := NewArena()
	id1 := a.Alloc(&Unreachable{})
	id2 := a.Alloc(&Unreachable{})

	a.Tombstone(id1)
	require.True(t, a.IsTombstoned(id1))
	_, ok := a.Get(id1)
	require.False(t, ok)

	id3 := a.Alloc(&Unreachable{})
	require.NotEqual(t, id1, id3, "tombstoned slots must never be reused for a new id")
	require.False(t, a.IsTombstoned(id2))
	require.False(t, a.IsTombstoned(id3))

	ids := a.IDs()
	require.ElementsMatch(t, []ExprID{id2, id3}, ids)
	require.Equal(t, 3, a.Len())
}

func TestArenaSetOnInvalidIDPanics(t *testing.T) {
	a := NewArena()
	require.Panics(t, func() {
		a.Set(ExprID(42), &Unreachable{})
	})
}

func TestArenaMustGetOnInvalidIDPanics(t *testing.T) {
	a := NewArena()
	require.Panics(t, func() {
		a.MustGet(ExprID(42))
	})
}
