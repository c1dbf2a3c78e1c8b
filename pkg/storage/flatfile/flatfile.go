// Package flatfile stores a movie catalog in a single JSON, CSV or YAML file.
//
// Every read validates the file and replaces it with the seed catalog when it is missing,
// cannot be decoded or holds no movies. Every mutation rewrites the entire file.
package flatfile

import (
	"context"
	"errors"
	"fmt"
	"os"

	mio "github.com/kasuboski/moviedb/pkg/io"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/movie"
	"github.com/kasuboski/moviedb/pkg/storage"
	"go.uber.org/zap"
)

const filePerm = 0o644

var errNoMovies = errors.New("no movies in file")

type codec interface {
	decode(data []byte) ([]movie.Movie, error)
	encode(movies []movie.Movie) ([]byte, error)
}

// Option configures a flat file store
type Option func(*store)

// WithFileIO replaces the file system used to read and write the catalog
func WithFileIO(fs mio.FileIO) Option {
	return func(s *store) {
		s.fs = fs
	}
}

type store struct {
	path   string
	format storage.Format
	codec  codec
	fs     mio.FileIO
}

func newStore(path string, format storage.Format, c codec, opts ...Option) store {
	s := store{
		path:   path,
		format: format,
		codec:  c,
		fs:     &mio.FileSystem{},
	}

	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// List returns the catalog, seeding the file first if it is missing or corrupt
func (s *store) List(ctx context.Context) ([]movie.Movie, error) {
	log := logger.FromCtx(ctx).With(zap.String("path", s.path), zap.String("format", string(s.format)))

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}

		log.Warn("file does not exist, creating default data")
		return s.writeSeed(ctx)
	}

	movies, err := s.codec.decode(data)
	if err == nil && len(movies) == 0 {
		err = errNoMovies
	}
	if err != nil {
		log.Warnw("file data missing or corrupted, creating default data", zap.Error(err))
		return s.writeSeed(ctx)
	}

	return movies, nil
}

// Add inserts or overwrites the movie with the same title
func (s *store) Add(ctx context.Context, m movie.Movie) error {
	movies, err := s.List(ctx)
	if err != nil {
		return err
	}

	return s.save(ctx, movie.Upsert(movies, m))
}

// Delete removes the movie with the given title if present
func (s *store) Delete(ctx context.Context, title string) error {
	movies, err := s.List(ctx)
	if err != nil {
		return err
	}

	movies, ok := movie.Remove(movies, title)
	if !ok {
		logger.FromCtx(ctx).Debugw("delete of unknown movie ignored", "title", title)
		return nil
	}

	return s.save(ctx, movies)
}

// Update sets the rating of an existing movie
func (s *store) Update(ctx context.Context, title string, rating float64) error {
	movies, err := s.List(ctx)
	if err != nil {
		return err
	}

	for i := range movies {
		if movies[i].Title == title {
			movies[i].Rating = rating
			return s.save(ctx, movies)
		}
	}

	logger.FromCtx(ctx).Debugw("update of unknown movie ignored", "title", title)
	return nil
}

func (s *store) writeSeed(ctx context.Context) ([]movie.Movie, error) {
	seed := storage.Seed()
	if err := s.save(ctx, seed); err != nil {
		return nil, err
	}
	return seed, nil
}

func (s *store) save(ctx context.Context, movies []movie.Movie) error {
	data, err := s.codec.encode(movies)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := s.fs.WriteFile(s.path, data, filePerm); err != nil {
		return err
	}

	logger.FromCtx(ctx).Debugw("catalog written", "path", s.path, "movies", len(movies))
	return nil
}
