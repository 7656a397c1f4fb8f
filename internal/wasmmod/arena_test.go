package wasmmod

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTombstoneArenaAllocGetSet(t *testing.T) {
	var a TombstoneArena[string]
	id0 := a.Alloc("a")
	id1 := a.Alloc("b")
	require.Equal(t, uint32(0), id0)
	require.Equal(t, uint32(1), id1)

	v, ok := a.Get(id1)
	require.True(t, ok)
	require.Equal(t, "b", v)

	a.Set(id0, "z")
	v, ok = a.Get(id0)
	require.True(t, ok)
	require.Equal(t, "z", v)
}

func TestTombstoneArenaDeleteResetsPayloadAndHidesEntry(t *testing.T) {
	var a TombstoneArena[string]
	id := a.Alloc("gone")
	a.Delete(id)

	_, ok := a.Get(id)
	require.False(t, ok)
	require.True(t, a.IsDead(id))
	require.Equal(t, 1, a.Len())

	var seen []string
	a.Each(func(idx uint32, v string) { seen = append(seen, v) })
	require.Empty(t, seen)
}

func TestTombstoneArenaEachSkipsDeadEntriesInAllocationOrder(t *testing.T) {
	var a TombstoneArena[int]
	a.Alloc(10)
	mid := a.Alloc(20)
	a.Alloc(30)
	a.Delete(mid)

	var seen []int
	a.Each(func(idx uint32, v int) { seen = append(seen, v) })
	require.Equal(t, []int{10, 30}, seen)
}

func TestTombstoneArenaMustGetPanicsOnDeadIndex(t *testing.T) {
	var a TombstoneArena[int]
	id := a.Alloc(1)
	a.Delete(id)

	require.Panics(t, func() { a.MustGet(id) })
}
