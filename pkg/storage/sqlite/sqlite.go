// Package sqlite stores the movie catalog in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/movie"
	"github.com/kasuboski/moviedb/pkg/storage"
	"github.com/kasuboski/moviedb/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/moviedb/pkg/storage/sqlite/schema/gen/table"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

var _ storage.Storage = (*SQLite)(nil)

type SQLite struct {
	db *sql.DB
}

// New opens a sqlite database given a path to the database file. RunMigrations must be called before use.
func New(ctx context.Context, filePath string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	// :memory: databases are per connection
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{
		db: db,
	}, nil
}

// Close closes the underlying database
func (s *SQLite) Close() error {
	return s.db.Close()
}

// List returns every movie in insertion order. An empty table is seeded first.
func (s *SQLite) List(ctx context.Context) ([]movie.Movie, error) {
	log := logger.FromCtx(ctx)

	movies, err := s.listMovies(ctx)
	if err != nil {
		return nil, err
	}

	if len(movies) > 0 {
		return movies, nil
	}

	log.Warn("database has no movies, creating default data")
	seed := storage.Seed()
	for _, m := range seed {
		if err := s.Add(ctx, m); err != nil {
			return nil, err
		}
	}

	return seed, nil
}

// Add inserts the movie or updates the row with the same title, keeping its position
func (s *SQLite) Add(ctx context.Context, m movie.Movie) error {
	stmt := table.Movie.
		INSERT(table.Movie.MutableColumns).
		MODEL(toModel(m)).
		ON_CONFLICT(table.Movie.Title).
		DO_UPDATE(sqlite.SET(
			table.Movie.Year.SET(table.Movie.EXCLUDED.Year),
			table.Movie.Rating.SET(table.Movie.EXCLUDED.Rating),
			table.Movie.Poster.SET(table.Movie.EXCLUDED.Poster),
		))

	_, err := s.handleStatement(ctx, stmt)
	return err
}

// Delete removes the movie with the title if present
func (s *SQLite) Delete(ctx context.Context, title string) error {
	stmt := table.Movie.
		DELETE().
		WHERE(table.Movie.Title.EQ(sqlite.String(title)))

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return err
	}

	s.logUnaffected(ctx, result, "delete", title)
	return nil
}

// Update sets the rating of the movie with the title if present
func (s *SQLite) Update(ctx context.Context, title string, rating float64) error {
	stmt := table.Movie.
		UPDATE(table.Movie.Rating).
		SET(sqlite.Float(rating)).
		WHERE(table.Movie.Title.EQ(sqlite.String(title)))

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return err
	}

	s.logUnaffected(ctx, result, "update", title)
	return nil
}

func (s *SQLite) listMovies(ctx context.Context) ([]movie.Movie, error) {
	log := logger.FromCtx(ctx)

	rows := make([]model.Movie, 0)
	stmt := table.Movie.
		SELECT(table.Movie.AllColumns).
		FROM(table.Movie).
		ORDER_BY(table.Movie.ID.ASC())

	err := stmt.QueryContext(ctx, s.db, &rows)
	if err != nil {
		log.Errorw("failed to list movies", zap.Error(err))
		return nil, err
	}

	movies := make([]movie.Movie, len(rows))
	for i, r := range rows {
		movies[i] = fromModel(r)
	}

	return movies, nil
}

func (s *SQLite) logUnaffected(ctx context.Context, result sql.Result, op, title string) {
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		logger.FromCtx(ctx).Debugw(op+" of unknown movie ignored", "title", title)
	}
}

func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	var result sql.Result

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debugw("failed to init transaction", zap.Error(err))
		return result, err
	}

	result, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debugw("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
		tx.Rollback()
		return result, err
	}

	return result, tx.Commit()
}

func toModel(m movie.Movie) model.Movie {
	return model.Movie{
		Title:  m.Title,
		Year:   int64(m.Year),
		Rating: m.Rating,
		Poster: m.Poster,
	}
}

func fromModel(m model.Movie) movie.Movie {
	return movie.Movie{
		Title:  m.Title,
		Year:   int(m.Year),
		Rating: m.Rating,
		Poster: m.Poster,
	}
}
