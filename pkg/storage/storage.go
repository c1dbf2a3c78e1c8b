package storage

import (
	"context"

	"github.com/kasuboski/moviedb/pkg/movie"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_storage.go github.com/kasuboski/moviedb/pkg/storage Storage

// Format names a storage backend
type Format string

const (
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// Storage persists a movie catalog. Every backend owns its on-disk representation exclusively.
//
// List self-heals: a missing, corrupt or empty store is replaced with the seed catalog before
// being returned. Mutations re-read the whole catalog, apply one change and write the whole
// catalog back.
type Storage interface {
	// List returns the full catalog in stored order
	List(ctx context.Context) ([]movie.Movie, error)
	// Add inserts the movie or overwrites the record with the same title
	Add(ctx context.Context, m movie.Movie) error
	// Delete removes the movie with the title. Unknown titles are ignored.
	Delete(ctx context.Context, title string) error
	// Update replaces the rating of an existing movie. Unknown titles are ignored.
	Update(ctx context.Context, title string, rating float64) error
}

// Seed is the catalog written when a store is missing or unreadable
func Seed() []movie.Movie {
	return []movie.Movie{
		{
			Title:  "Fight Club",
			Year:   1999,
			Rating: 8.8,
		},
	}
}

// Contains reports whether a title is present in the current catalog
func Contains(ctx context.Context, s Storage, title string) (bool, error) {
	movies, err := s.List(ctx)
	if err != nil {
		return false, err
	}

	_, ok := movie.Find(movies, title)
	return ok, nil
}
