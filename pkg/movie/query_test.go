package movie

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func testCatalog() []Movie {
	return []Movie{
		{Title: "Fight Club", Year: 1999, Rating: 8.8},
		{Title: "The Matrix", Year: 1999, Rating: 8.7},
		{Title: "Inception", Year: 2010, Rating: 8.8},
		{Title: "Amélie", Year: 2001, Rating: 8.3},
		{Title: "Catwoman", Year: 2004, Rating: 3.4},
	}
}

func TestSearch(t *testing.T) {
	movies := testCatalog()

	t.Run("case insensitive substring", func(t *testing.T) {
		got := Search(movies, "THE")
		assert.Equal(t, []Movie{movies[1]}, got)
	})

	t.Run("matches keep catalog order", func(t *testing.T) {
		got := Search(movies, "i")
		titles := make([]string, len(got))
		for i, m := range got {
			titles[i] = m.Title
		}
		assert.Equal(t, []string{"Fight Club", "The Matrix", "Inception", "Amélie"}, titles)
	})

	t.Run("unicode folding", func(t *testing.T) {
		got := Search(movies, "AMÉLIE")
		assert.Equal(t, []Movie{movies[3]}, got)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Search(movies, "zzz"))
	})
}

func TestSortByRating(t *testing.T) {
	movies := testCatalog()
	got := SortByRating(movies)

	assert.Equal(t, []Movie{movies[0], movies[2], movies[1], movies[3], movies[4]}, got)
	assert.Equal(t, testCatalog(), movies, "input must not be reordered")
}

func TestSortByYear(t *testing.T) {
	movies := testCatalog()

	asc := SortByYear(movies, false)
	assert.Equal(t, []Movie{movies[0], movies[1], movies[3], movies[4], movies[2]}, asc)

	desc := SortByYear(movies, true)
	assert.Equal(t, []Movie{movies[2], movies[4], movies[3], movies[0], movies[1]}, desc)

	years := func(ms []Movie) []int {
		out := make([]int, len(ms))
		for i, m := range ms {
			out[i] = m.Year
		}
		return out
	}
	reversed := years(desc)
	slices.Reverse(reversed)
	assert.Equal(t, years(asc), reversed)
}

func TestSortByYear_ExtremeYears(t *testing.T) {
	movies := []Movie{
		{Title: "A", Year: 1},
		{Title: "B", Year: math.MinInt},
		{Title: "C", Year: math.MaxInt},
	}

	asc := SortByYear(movies, false)
	assert.Equal(t, []Movie{movies[1], movies[0], movies[2]}, asc)

	desc := SortByYear(movies, true)
	assert.Equal(t, []Movie{movies[2], movies[0], movies[1]}, desc)
}

func TestFilter(t *testing.T) {
	movies := testCatalog()

	t.Run("no criteria passes everything", func(t *testing.T) {
		assert.Equal(t, movies, Filter(movies, Criteria{}))
	})

	t.Run("min rating with no match", func(t *testing.T) {
		got := Filter(movies, Criteria{MinRating: ptr(9.0)})
		assert.Empty(t, got)
	})

	t.Run("year range", func(t *testing.T) {
		got := Filter(movies, Criteria{StartYear: ptr(2000), EndYear: ptr(2005)})
		assert.Equal(t, []Movie{movies[3], movies[4]}, got)
	})

	t.Run("all predicates", func(t *testing.T) {
		got := Filter(movies, Criteria{MinRating: ptr(8.5), StartYear: ptr(1999), EndYear: ptr(1999)})
		assert.Equal(t, []Movie{movies[0], movies[1]}, got)
	})
}

func TestRandom(t *testing.T) {
	movies := testCatalog()

	r := rand.New(rand.NewPCG(1, 2))
	seen := map[string]bool{}
	for range 200 {
		m, err := Random(movies, r)
		require.NoError(t, err)
		seen[m.Title] = true
	}
	assert.Len(t, seen, len(movies))

	m, err := Random(movies, nil)
	require.NoError(t, err)
	_, ok := Find(movies, m.Title)
	assert.True(t, ok)

	_, err = Random(nil, r)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestUpsertAndRemove(t *testing.T) {
	movies := testCatalog()

	movies = Upsert(movies, Movie{Title: "The Matrix", Year: 1999, Rating: 9.1})
	assert.Len(t, movies, 5)
	assert.Equal(t, 9.1, movies[1].Rating)

	movies = Upsert(movies, Movie{Title: "Heat", Year: 1995, Rating: 8.3})
	assert.Len(t, movies, 6)
	assert.Equal(t, "Heat", movies[5].Title)

	movies, removed := Remove(movies, "Inception")
	assert.True(t, removed)
	_, ok := Find(movies, "Inception")
	assert.False(t, ok)

	_, removed = Remove(movies, "Inception")
	assert.False(t, removed)
}

func TestMovie_String(t *testing.T) {
	assert.Equal(t, "Fight Club (1999): 8.8", Movie{Title: "Fight Club", Year: 1999, Rating: 8.8}.String())
	assert.Equal(t, "Heat (1995): 9", Movie{Title: "Heat", Year: 1995, Rating: 9}.String())
}
