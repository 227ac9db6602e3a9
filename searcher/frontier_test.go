package searcher

import (
	"lookahead/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func entryWith(id int, priority float64) entry {
	return entry{state: mockState{id: id}, priority: priority}
}

func ids(f *frontier) []int {
	got := []int{}
	for i := 0; i < f.Len(); i++ {
		got = append(got, f.at(i).state.(mockState).id)
	}
	return got
}

func TestFrontierQueueAndStack(t *testing.T) {
	t.Run("pop front returns entries in insertion order", func(t *testing.T) {
		f := newFrontier()
		for i := 0; i < 20; i++ {
			f.push(entryWith(i, 0))
		}
		for i := 0; i < 20; i++ {
			require.Equal(t, i, f.popFront().state.(mockState).id)
		}
		require.Zero(t, f.Len())
	})

	t.Run("pop back returns the newest entry", func(t *testing.T) {
		f := newFrontier()
		for i := 0; i < 20; i++ {
			f.push(entryWith(i, 0))
		}
		for i := 19; i >= 0; i-- {
			require.Equal(t, i, f.popBack().state.(mockState).id)
		}
	})

	t.Run("order survives interleaved pushes and pops", func(t *testing.T) {
		f := newFrontier()
		for i := 0; i < 6; i++ {
			f.push(entryWith(i, 0))
		}
		f.popFront()
		f.popFront()
		for i := 6; i < 12; i++ {
			f.push(entryWith(i, 0))
		}
		require.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, ids(f))
	})

	t.Run("popping an empty frontier panics", func(t *testing.T) {
		f := newFrontier()
		require.Panics(t, func() { f.popFront() })
		require.Panics(t, func() { f.popBack() })
		require.Panics(t, func() { f.popMin() })
	})
}

func TestFrontierPopMin(t *testing.T) {
	t.Run("removing the lowest priority keeps the rest in order", func(t *testing.T) {
		f := newFrontier()
		f.push(entryWith(0, 3))
		f.push(entryWith(1, -2))
		f.push(entryWith(2, 5))
		f.push(entryWith(3, 1))

		got := f.popMin()

		require.Equal(t, 1, got.state.(mockState).id)
		require.Equal(t, []int{0, 2, 3}, ids(f))
	})

	t.Run("ties go to the oldest entry", func(t *testing.T) {
		f := newFrontier()
		f.push(entryWith(0, 4))
		f.push(entryWith(1, 1))
		f.push(entryWith(2, 1))

		require.Equal(t, 1, f.popMin().state.(mockState).id)
		require.Equal(t, 2, f.popMin().state.(mockState).id)
		require.Equal(t, 0, f.popMin().state.(mockState).id)
	})

	t.Run("remove at keeps the other entries in order", func(t *testing.T) {
		f := newFrontier()
		for i := 0; i < 8; i++ {
			f.push(entryWith(i, float64(i)))
		}
		for i := 0; i < 5; i++ {
			f.popFront()
		}
		for i := 8; i < 11; i++ {
			f.push(entryWith(i, float64(i)))
		}

		got := f.removeAt(1)

		require.Equal(t, 6, got.state.(mockState).id)
		require.Equal(t, []int{5, 7, 8, 9, 10}, ids(f))
		require.Equal(t, game.StateHash(5), f.at(0).state.Hash())
	})
}
