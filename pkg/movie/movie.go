package movie

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

var ErrEmptyCatalog = errors.New("catalog has no movies")

// Movie is a single catalog record. Title is unique within a catalog.
type Movie struct {
	Title  string  `json:"title" yaml:"title"`
	Year   int     `json:"year" yaml:"year"`
	Rating float64 `json:"rating" yaml:"rating"`
	Poster string  `json:"poster" yaml:"poster"`
}

// String formats a movie the way the shell lists it, e.g. "Fight Club (1999): 8.8"
func (m Movie) String() string {
	return fmt.Sprintf("%s (%d): %s", m.Title, m.Year, FormatRating(m.Rating))
}

// FormatRating renders a rating without trailing zeros
func FormatRating(rating float64) string {
	return humanize.Ftoa(rating)
}

// Find returns the movie with the given title
func Find(movies []Movie, title string) (Movie, bool) {
	for _, m := range movies {
		if m.Title == title {
			return m, true
		}
	}
	return Movie{}, false
}

// Upsert replaces the movie with the same title in place or appends it
func Upsert(movies []Movie, m Movie) []Movie {
	for i := range movies {
		if movies[i].Title == m.Title {
			movies[i] = m
			return movies
		}
	}
	return append(movies, m)
}

// Remove drops the movie with the given title. The second return is false if nothing was removed.
func Remove(movies []Movie, title string) ([]Movie, bool) {
	for i := range movies {
		if movies[i].Title == title {
			return append(movies[:i], movies[i+1:]...), true
		}
	}
	return movies, false
}
