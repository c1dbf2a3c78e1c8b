package movie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateStats(t *testing.T) {
	t.Run("ties for best are all reported", func(t *testing.T) {
		movies := []Movie{
			{Title: "Fight Club", Year: 1999, Rating: 8.8},
			{Title: "Inception", Year: 2010, Rating: 8.8},
			{Title: "Catwoman", Year: 2004, Rating: 2.0},
		}

		stats, err := CalculateStats(movies)
		require.NoError(t, err)

		assert.Equal(t, 3, stats.Count)
		assert.InDelta(t, 6.533, stats.Mean, 0.001)
		assert.Equal(t, "6.5", Round(stats.Mean))
		assert.Equal(t, 8.8, stats.Median)
		assert.Equal(t, []Movie{movies[0], movies[1]}, stats.Best)
		assert.Equal(t, []Movie{movies[2]}, stats.Worst)
	})

	t.Run("even count median averages the middle values", func(t *testing.T) {
		movies := []Movie{
			{Title: "a", Rating: 9},
			{Title: "b", Rating: 1},
			{Title: "c", Rating: 7},
			{Title: "d", Rating: 4},
		}

		stats, err := CalculateStats(movies)
		require.NoError(t, err)
		assert.Equal(t, 5.5, stats.Median)
		assert.Equal(t, 5.25, stats.Mean)
	})

	t.Run("single movie is both best and worst", func(t *testing.T) {
		movies := []Movie{{Title: "Fight Club", Year: 1999, Rating: 8.8}}

		stats, err := CalculateStats(movies)
		require.NoError(t, err)
		assert.Equal(t, movies, stats.Best)
		assert.Equal(t, movies, stats.Worst)
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, err := CalculateStats(nil)
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})
}

func TestRound(t *testing.T) {
	assert.Equal(t, "6.5", Round(6.5333))
	assert.Equal(t, "8.8", Round(8.8))
	assert.Equal(t, "7", Round(6.96))
}
