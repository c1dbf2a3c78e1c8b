// Package export renders the catalog into a static HTML page.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"html/template"
	"os"
	"strings"

	mio "github.com/kasuboski/moviedb/pkg/io"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/movie"
)

const (
	TitlePlaceholder = "__TEMPLATE_TITLE__"
	GridPlaceholder  = "__TEMPLATE_MOVIE_GRID__"
)

var (
	ErrTemplateNotFound = errors.New("website template not found")

	gridTemplate = template.Must(template.New("grid").Funcs(template.FuncMap{
		"rating": movie.FormatRating,
	}).Parse(`{{range .}}
        <li>
            <div class="movie">
                <img class="movie-poster" src="{{.Poster}}" alt="{{.Title}}" title="{{.Title}}"/>
                <div class="movie-title">{{.Title}}</div>
                <div class="movie-year">{{.Year}}</div>
                <div class="movie-rating">{{rating .Rating}}</div>
            </div>
        </li>{{end}}
`))
)

// Option configures an Exporter
type Option func(*Exporter)

// WithFileIO replaces the file system used for the template and the output
func WithFileIO(fs mio.FileIO) Option {
	return func(e *Exporter) {
		e.fs = fs
	}
}

// Exporter substitutes the catalog into a template file
type Exporter struct {
	templatePath string
	outputPath   string
	title        string
	fs           mio.FileIO
}

// New creates an exporter reading templatePath and writing outputPath
func New(templatePath, outputPath, title string, opts ...Option) *Exporter {
	e := &Exporter{
		templatePath: templatePath,
		outputPath:   outputPath,
		title:        title,
		fs:           &mio.FileSystem{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// OutputPath is where Export writes the page
func (e *Exporter) OutputPath() string {
	return e.outputPath
}

// Render returns the template with the title and movie grid substituted
func (e *Exporter) Render(movies []movie.Movie) ([]byte, error) {
	tmpl, err := e.fs.ReadFile(e.templatePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, e.templatePath)
		}
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	grid, err := RenderGrid(movies)
	if err != nil {
		return nil, err
	}

	page := strings.ReplaceAll(string(tmpl), TitlePlaceholder, html.EscapeString(e.title))
	page = strings.ReplaceAll(page, GridPlaceholder, grid)

	return []byte(page), nil
}

// Export renders the page and replaces the output file
func (e *Exporter) Export(ctx context.Context, movies []movie.Movie) error {
	page, err := e.Render(movies)
	if err != nil {
		return err
	}

	if err := e.fs.WriteFile(e.outputPath, page, 0o644); err != nil {
		return err
	}

	logger.FromCtx(ctx).Infow("website generated", "path", e.outputPath, "movies", len(movies))
	return nil
}

// RenderGrid renders one list item per movie
func RenderGrid(movies []movie.Movie) (string, error) {
	var buf bytes.Buffer
	if err := gridTemplate.Execute(&buf, movies); err != nil {
		return "", fmt.Errorf("failed to render movie grid: %w", err)
	}
	return buf.String(), nil
}
