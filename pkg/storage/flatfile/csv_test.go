package flatfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kasuboski/moviedb/pkg/movie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV_Decode(t *testing.T) {
	t.Run("poster column is optional", func(t *testing.T) {
		movies, err := csvCodec{}.decode([]byte("title,year,rating\nFight Club,1999,8.8\nHeat,1995,8.3\n"))
		require.NoError(t, err)
		assert.Equal(t, []movie.Movie{
			{Title: "Fight Club", Year: 1999, Rating: 8.8},
			{Title: "Heat", Year: 1995, Rating: 8.3},
		}, movies)
	})

	t.Run("columns are located by header", func(t *testing.T) {
		movies, err := csvCodec{}.decode([]byte("rating,poster,title,year\n8.8,http://p,Fight Club,1999\n"))
		require.NoError(t, err)
		assert.Equal(t, []movie.Movie{{Title: "Fight Club", Year: 1999, Rating: 8.8, Poster: "http://p"}}, movies)
	})

	t.Run("quoted titles", func(t *testing.T) {
		movies, err := csvCodec{}.decode([]byte("title,year,rating,poster\n\"Crouching Tiger, Hidden Dragon\",2000,7.9,\n"))
		require.NoError(t, err)
		assert.Equal(t, "Crouching Tiger, Hidden Dragon", movies[0].Title)
	})

	t.Run("missing required column", func(t *testing.T) {
		_, err := csvCodec{}.decode([]byte("title,rating\nHeat,8.3\n"))
		assert.Error(t, err)
	})

	t.Run("invalid rating", func(t *testing.T) {
		_, err := csvCodec{}.decode([]byte("title,year,rating\nHeat,1995,great\n"))
		assert.Error(t, err)
	})
}

func TestCSV_WritesPosterColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	store := NewCSV(path)

	err := store.Add(context.Background(), movie.Movie{Title: "Heat", Year: 1995, Rating: 8.3, Poster: "http://p"})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "title,year,rating,poster\nFight Club,1999,8.8,\nHeat,1995,8.3,http://p\n", string(b))
}

func TestJSON_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.json")

	_, err := NewJSON(path).List(context.Background())
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"title": "Fight Club", "year": 1999, "rating": 8.8, "poster": ""}]`, string(b))
	assert.Contains(t, string(b), "\n    {")
}

func TestJSON_DuplicateTitlesCollapse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"title": "Heat", "year": 1995, "rating": 8.3},
		{"title": "Alien", "year": 1979, "rating": 8.5},
		{"title": "Heat", "year": 1995, "rating": 9}
	]`), 0o644))

	movies, err := NewJSON(path).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []movie.Movie{
		{Title: "Heat", Year: 1995, Rating: 9},
		{Title: "Alien", Year: 1979, Rating: 8.5},
	}, movies)
}
