package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	t.Run("moves along the longer axis", func(t *testing.T) {
		m := blankMatch(testConfig(), Cautious)
		u := place(m, Red, 4, 4)

		step(m, u, Cell{X: 7, Y: 5})
		require.Equal(t, Cell{X: 5, Y: 4}, u.Cell())

		step(m, u, Cell{X: 4, Y: 0})
		require.Equal(t, Cell{X: 5, Y: 3}, u.Cell())
	})

	t.Run("breaks axis ties with one draw", func(t *testing.T) {
		m := blankMatch(testConfig(), Cautious)
		u := place(m, Red, 4, 4)
		probe := m.rng.copy()

		step(m, u, Cell{X: 6, Y: 6})

		want := Cell{X: 4, Y: 5}
		if probe.Float64() < 0.5 {
			want = Cell{X: 5, Y: 4}
		}
		require.Equal(t, want, u.Cell())
		require.Equal(t, probe.state, m.rng.state, "Exactly one draw should be consumed")
	})
}

func TestResolveMovement(t *testing.T) {
	t.Run("units on their target hold", func(t *testing.T) {
		m := blankMatch(testConfig(), Brave)
		u := place(m, Red, 9, 9)

		resolveMovement(m)

		require.Equal(t, Cell{X: 9, Y: 9}, u.Cell(), "A unit standing on the enemy capital should not move")
	})

	t.Run("units at home still draw for the axis", func(t *testing.T) {
		m := blankMatch(testConfig(), Greedy)
		u := place(m, Red, 0, 0)
		want := m.rng.copy()
		want.Float64() // axis tie-break; a single unit shuffles without drawing

		resolveMovement(m)

		require.Equal(t, Cell{X: 0, Y: 0}, u.Cell(), "A greedy unit on its own capital should stay put")
		require.Equal(t, want.state, m.rng.state, "Exactly one draw should be consumed")
	})

	t.Run("units on an enemy target draw nothing", func(t *testing.T) {
		m := blankMatch(testConfig(), Cautious)
		red := place(m, Red, 2, 2)
		place(m, Blue, 2, 2)
		m.Red().Capital = Capital{X: 1, Y: 1, Alive: true}
		m.Blue().Capital = Capital{X: 3, Y: 3, Alive: true}
		want := m.rng.copy()
		want.Float64() // shuffle of two units

		resolveMovement(m)

		require.Equal(t, Cell{X: 2, Y: 2}, red.Cell())
		require.Equal(t, want.state, m.rng.state)
	})

	t.Run("every unit takes at most one step", func(t *testing.T) {
		m := NewMatch(testConfig().WithSeed(99))
		before := map[int]Cell{}
		for _, f := range m.Factions {
			for _, u := range f.Units {
				before[u.ID] = u.Cell()
			}
		}

		resolveMovement(m)

		for _, f := range m.Factions {
			for _, u := range f.Units {
				require.LessOrEqual(t, manhattan(before[u.ID], u.Cell()), 1, "Unit %s moved too far", u.Label())
				require.True(t, m.inBounds(u.X, u.Y))
			}
		}
	})
}
