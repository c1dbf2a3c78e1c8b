package omdb

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/kasuboski/moviedb/pkg/movie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestParseMovieResponse(t *testing.T) {
	t.Run("successful response", func(t *testing.T) {
		res := response(http.StatusOK, `{
			"Title": "Fight Club",
			"Year": "1999",
			"imdbRating": "8.8",
			"Poster": "https://m.media-amazon.com/images/fightclub.jpg",
			"Response": "True"
		}`)

		m, err := parseMovieResponse(res)
		require.NoError(t, err)
		assert.Equal(t, movie.Movie{
			Title:  "Fight Club",
			Year:   1999,
			Rating: 8.8,
			Poster: "https://m.media-amazon.com/images/fightclub.jpg",
		}, m)
	})

	t.Run("not found", func(t *testing.T) {
		res := response(http.StatusOK, `{"Response": "False", "Error": "Movie not found!"}`)

		_, err := parseMovieResponse(res)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "Movie not found!")
	})

	t.Run("status code other than 2xx", func(t *testing.T) {
		res := response(http.StatusUnauthorized, `{"Response": "False", "Error": "Invalid API key!"}`)

		_, err := parseMovieResponse(res)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid json", func(t *testing.T) {
		res := response(http.StatusOK, `<html>`)

		_, err := parseMovieResponse(res)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("missing values", func(t *testing.T) {
		res := response(http.StatusOK, `{
			"Title": "Breaking Bad",
			"Year": "2008–2013",
			"imdbRating": "N/A",
			"Poster": "N/A",
			"Response": "True"
		}`)

		m, err := parseMovieResponse(res)
		require.NoError(t, err)
		assert.Equal(t, movie.Movie{Title: "Breaking Bad", Year: 2008}, m)
	})

	t.Run("unparsable year", func(t *testing.T) {
		res := response(http.StatusOK, `{"Title": "x", "Year": "N/A", "Response": "True"}`)

		_, err := parseMovieResponse(res)
		assert.ErrorIs(t, err, ErrInvalidResponse)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "1999", want: 1999},
		{in: "2008–2013", want: 2008},
		{in: " 2019– ", want: 2019},
		{in: "", wantErr: true},
		{in: "N/A", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseYear(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	_, err := New("https://www.omdbapi.com", "")
	assert.Error(t, err)

	c, err := New("https://www.omdbapi.com", "secret")
	require.NoError(t, err)
	assert.NotNil(t, c.client)
}
