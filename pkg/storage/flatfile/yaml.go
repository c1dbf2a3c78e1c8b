package flatfile

import (
	"errors"

	"github.com/goccy/go-yaml"
	"github.com/kasuboski/moviedb/pkg/movie"
	"github.com/kasuboski/moviedb/pkg/storage"
)

var _ storage.Storage = (*YAML)(nil)

// YAML stores the catalog as a sequence of movie mappings
type YAML struct {
	store
}

// NewYAML creates a YAML backed catalog at path. The file is created on first use.
func NewYAML(path string, opts ...Option) *YAML {
	return &YAML{store: newStore(path, storage.FormatYAML, yamlCodec{}, opts...)}
}

type yamlMovie struct {
	Title  *string  `yaml:"title"`
	Year   *int     `yaml:"year"`
	Rating *float64 `yaml:"rating"`
	Poster string   `yaml:"poster"`
}

type yamlCodec struct{}

func (yamlCodec) decode(data []byte) ([]movie.Movie, error) {
	var records []yamlMovie
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, 0, len(records))
	for _, r := range records {
		if r.Title == nil || *r.Title == "" || r.Year == nil || r.Rating == nil {
			return nil, errors.New("movie record is missing title, year or rating")
		}

		movies = movie.Upsert(movies, movie.Movie{
			Title:  *r.Title,
			Year:   *r.Year,
			Rating: *r.Rating,
			Poster: r.Poster,
		})
	}

	return movies, nil
}

func (yamlCodec) encode(movies []movie.Movie) ([]byte, error) {
	return yaml.Marshal(movies)
}
