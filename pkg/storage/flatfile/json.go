package flatfile

import (
	"encoding/json"
	"errors"

	"github.com/kasuboski/moviedb/pkg/movie"
	"github.com/kasuboski/moviedb/pkg/storage"
)

var _ storage.Storage = (*JSON)(nil)

// JSON stores the catalog as an array of movie objects
type JSON struct {
	store
}

// NewJSON creates a JSON backed catalog at path. The file is created on first use.
func NewJSON(path string, opts ...Option) *JSON {
	return &JSON{store: newStore(path, storage.FormatJSON, jsonCodec{}, opts...)}
}

type jsonMovie struct {
	Title  *string  `json:"title"`
	Year   *int     `json:"year"`
	Rating *float64 `json:"rating"`
	Poster string   `json:"poster"`
}

type jsonCodec struct{}

func (jsonCodec) decode(data []byte) ([]movie.Movie, error) {
	var records []jsonMovie
	if err := json.Unmarshal(data, &records); err != nil {
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

func (jsonCodec) encode(movies []movie.Movie) ([]byte, error) {
	return json.MarshalIndent(movies, "", "    ")
}
