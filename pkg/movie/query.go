package movie

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Criteria filters a catalog. A nil field always matches.
type Criteria struct {
	MinRating *float64
	StartYear *int
	EndYear   *int
}

// Matches reports whether m satisfies every set predicate
func (c Criteria) Matches(m Movie) bool {
	if c.MinRating != nil && m.Rating < *c.MinRating {
		return false
	}
	if c.StartYear != nil && m.Year < *c.StartYear {
		return false
	}
	if c.EndYear != nil && m.Year > *c.EndYear {
		return false
	}
	return true
}

// Filter returns the movies matching c in catalog order
func Filter(movies []Movie, c Criteria) []Movie {
	result := make([]Movie, 0)
	for _, m := range movies {
		if c.Matches(m) {
			result = append(result, m)
		}
	}
	return result
}

// Search returns every movie whose title contains term, ignoring case
func Search(movies []Movie, term string) []Movie {
	fold := cases.Fold()
	needle := fold.String(term)

	result := make([]Movie, 0)
	for _, m := range movies {
		if strings.Contains(fold.String(m.Title), needle) {
			result = append(result, m)
		}
	}
	return result
}

// SortByRating returns a copy sorted by rating, highest first. Equal ratings keep catalog order.
func SortByRating(movies []Movie) []Movie {
	sorted := slices.Clone(movies)
	slices.SortStableFunc(sorted, func(a, b Movie) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		}
		return 0
	})
	return sorted
}

// SortByYear returns a copy sorted by release year. Equal years keep catalog order.
func SortByYear(movies []Movie, descending bool) []Movie {
	sorted := slices.Clone(movies)
	slices.SortStableFunc(sorted, func(a, b Movie) int {
		if descending {
			return cmp.Compare(b.Year, a.Year)
		}
		return cmp.Compare(a.Year, b.Year)
	})
	return sorted
}

// Random picks a movie uniformly. A nil r uses the global source.
func Random(movies []Movie, r *rand.Rand) (Movie, error) {
	if len(movies) == 0 {
		return Movie{}, ErrEmptyCatalog
	}

	if r == nil {
		return movies[rand.IntN(len(movies))], nil
	}
	return movies[r.IntN(len(movies))], nil
}
