package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/kasuboski/moviedb/config"
	"github.com/kasuboski/moviedb/pkg/export"
	mio "github.com/kasuboski/moviedb/pkg/io"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/omdb"
	"github.com/kasuboski/moviedb/pkg/storage"
	"github.com/kasuboski/moviedb/pkg/storage/flatfile"
	"github.com/kasuboski/moviedb/pkg/storage/sqlite"
)

// openStorage builds the configured backend. The returned func releases it.
func openStorage(ctx context.Context, cfg config.Storage) (storage.Storage, func() error, error) {
	noop := func() error { return nil }

	switch storage.Format(cfg.Format) {
	case storage.FormatJSON, "":
		return flatfile.NewJSON(cfg.FilePath), noop, nil
	case storage.FormatCSV:
		return flatfile.NewCSV(cfg.FilePath), noop, nil
	case storage.FormatYAML:
		return flatfile.NewYAML(cfg.FilePath), noop, nil
	case storage.FormatSQLite:
		fs := &mio.FileSystem{}
		if err := fs.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, nil, err
		}

		store, err := sqlite.New(ctx, cfg.FilePath)
		if err != nil {
			return nil, nil, err
		}

		if err := store.RunMigrations(ctx); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}

		return store, store.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown storage format %q", cfg.Format)
}

// newLookup returns nil when no api key is configured
func newLookup(cfg config.OMDB) (omdb.IOmdb, error) {
	if !cfg.Enabled() {
		logger.Get().Debug("omdb api key not set, movies are added manually")
		return nil, nil
	}

	return omdb.New(cfg.URL(), cfg.APIKey)
}

func newExporter(cfg config.Export) *export.Exporter {
	return export.New(cfg.TemplatePath, cfg.OutputPath, cfg.Title)
}
