package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRand(t *testing.T) {
	t.Run("reproduces the mulberry32 stream", func(t *testing.T) {
		r := NewRand(1)
		require.Equal(t, 0.6270739405881613, r.Float64())
		require.Equal(t, 0.002735721180215478, r.Float64())
		require.Equal(t, 0.5274470399599522, r.Float64())

		r = NewRand(42)
		require.Equal(t, 0.6011037519201636, r.Float64())
		require.Equal(t, 0.44829055899754167, r.Float64())
		require.Equal(t, 0.8524657934904099, r.Float64())
	})

	t.Run("coerces a zero seed", func(t *testing.T) {
		zero, one := NewRand(0), NewRand(1)
		for i := 0; i < 100; i++ {
			require.Equal(t, one.Float64(), zero.Float64(), "Seed 0 should behave like seed 1")
		}
	})

	t.Run("same seed gives the same stream", func(t *testing.T) {
		a, b := NewRand(987654321), NewRand(987654321)
		for i := 0; i < 1000; i++ {
			require.Equal(t, a.Float64(), b.Float64())
		}
	})

	t.Run("floats stay in [0,1)", func(t *testing.T) {
		r := NewRand(7)
		for i := 0; i < 10000; i++ {
			f := r.Float64()
			require.GreaterOrEqual(t, f, 0.0)
			require.Less(t, f, 1.0)
		}
	})

	t.Run("integer ranges are inclusive", func(t *testing.T) {
		r := NewRand(11)
		hits := map[int]int{}
		for i := 0; i < 2000; i++ {
			v := r.IntRange(-2, 2)
			require.GreaterOrEqual(t, v, -2)
			require.LessOrEqual(t, v, 2)
			hits[v]++
		}
		require.Len(t, hits, 5, "Every value in [-2,2] should be drawn")
	})

	t.Run("copies continue independently", func(t *testing.T) {
		r := NewRand(3)
		r.Float64()
		c := r.copy()
		require.Equal(t, r.Float64(), c.Float64(), "A copy should resume at the same position")
	})

	t.Run("shuffle is a permutation", func(t *testing.T) {
		r := NewRand(5)
		xs := []int{0, 1, 2, 3, 4, 5, 6, 7}
		r.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
		require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, xs)
	})

	t.Run("panics on empty Intn", func(t *testing.T) {
		require.Panics(t, func() {
			NewRand(1).Intn(0)
		})
	})
}
