package flatfile

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/kasuboski/moviedb/pkg/movie"
	"github.com/kasuboski/moviedb/pkg/storage"
)

var (
	_ storage.Storage = (*CSV)(nil)

	csvHeader = []string{"title", "year", "rating", "poster"}
)

// CSV stores the catalog with a title,year,rating,poster header. The poster column is optional on read.
type CSV struct {
	store
}

// NewCSV creates a CSV backed catalog at path. The file is created on first use.
func NewCSV(path string, opts ...Option) *CSV {
	return &CSV{store: newStore(path, storage.FormatCSV, csvCodec{}, opts...)}
}

type csvCodec struct{}

func (csvCodec) decode(data []byte) ([]movie.Movie, error) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range csvHeader[:3] {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing %q column", required)
		}
	}
	posterIdx, hasPoster := columns["poster"]

	movies := make([]movie.Movie, 0, len(records)-1)
	for line, row := range records[1:] {
		title := row[columns["title"]]
		if title == "" {
			return nil, fmt.Errorf("row %d: empty title", line+2)
		}

		year, err := strconv.Atoi(strings.TrimSpace(row[columns["year"]]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid year: %w", line+2, err)
		}

		rating, err := strconv.ParseFloat(strings.TrimSpace(row[columns["rating"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid rating: %w", line+2, err)
		}

		m := movie.Movie{
			Title:  title,
			Year:   year,
			Rating: rating,
		}
		if hasPoster {
			m.Poster = row[posterIdx]
		}

		movies = movie.Upsert(movies, m)
	}

	return movies, nil
}

func (csvCodec) encode(movies []movie.Movie) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, m := range movies {
		row := []string{
			m.Title,
			strconv.Itoa(m.Year),
			strconv.FormatFloat(m.Rating, 'f', -1, 64),
			m.Poster,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
