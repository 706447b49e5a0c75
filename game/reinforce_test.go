package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveReinforcements(t *testing.T) {
	reinforcing := func(every int) Config {
		cfg := testConfig()
		cfg.ReinforceEvery = every
		return cfg
	}

	t.Run("spawns next to the capital on the interval", func(t *testing.T) {
		m := blankMatch(reinforcing(20), Cautious)
		m.Turn = 40

		spawned := resolveReinforcements(m, narrator{m: m})

		require.Equal(t, 2, spawned, "One unit per faction")
		require.Len(t, m.Red().Units, 1)
		require.Len(t, m.Blue().Units, 1)
		require.Contains(t, []Cell{{X: 1, Y: 0}, {X: 0, Y: 1}}, m.Red().Units[0].Cell())
		require.Contains(t, []Cell{{X: 8, Y: 9}, {X: 9, Y: 8}}, m.Blue().Units[0].Cell())
	})

	t.Run("greedy levies a second unit", func(t *testing.T) {
		m := blankMatch(reinforcing(20), Greedy)
		m.Turn = 20

		spawned := resolveReinforcements(m, narrator{m: m})

		require.Equal(t, 4, spawned)
		require.ElementsMatch(t, []Cell{{X: 1, Y: 0}, {X: 0, Y: 1}},
			[]Cell{m.Red().Units[0].Cell(), m.Red().Units[1].Cell()}, "Both free neighbours should be used")
	})

	t.Run("greedy levy respects the army cap", func(t *testing.T) {
		cfg := reinforcing(20)
		cfg.ArmyCap = 1
		m := blankMatch(cfg, Greedy)
		m.Turn = 20

		resolveReinforcements(m, narrator{m: m})

		require.Len(t, m.Red().Units, 1)
	})

	t.Run("skips off-interval turns and turn zero", func(t *testing.T) {
		m := blankMatch(reinforcing(20), Cautious)
		for _, turn := range []int{0, 1, 19, 21} {
			m.Turn = turn
			require.Zero(t, resolveReinforcements(m, narrator{m: m}), "turn %d", turn)
		}
	})

	t.Run("disabled at interval zero", func(t *testing.T) {
		m := blankMatch(reinforcing(0), Cautious)
		m.Turn = 20

		require.Zero(t, resolveReinforcements(m, narrator{m: m}))
	})

	t.Run("full armies and fallen capitals get nothing", func(t *testing.T) {
		cfg := reinforcing(10)
		cfg.ArmyCap = 2
		m := blankMatch(cfg, Cautious)
		m.Turn = 10
		place(m, Red, 5, 5)
		place(m, Red, 5, 6)
		m.Blue().Capital.Alive = false

		require.Zero(t, resolveReinforcements(m, narrator{m: m}))
	})

	t.Run("occupied neighbours are skipped", func(t *testing.T) {
		m := blankMatch(reinforcing(10), Cautious)
		m.Turn = 10
		place(m, Blue, 1, 0)
		m.Blue().Capital.Alive = false

		resolveReinforcements(m, narrator{m: m})

		require.Len(t, m.Red().Units, 1)
		require.Equal(t, Cell{X: 0, Y: 1}, m.Red().Units[0].Cell())
	})

	t.Run("no free neighbour skips silently", func(t *testing.T) {
		m := blankMatch(reinforcing(10), Cautious)
		m.Turn = 10
		place(m, Blue, 1, 0)
		place(m, Blue, 0, 1)
		m.Blue().Capital.Alive = false

		require.Zero(t, resolveReinforcements(m, narrator{m: m}))
		require.Empty(t, m.Events)
	})
}
