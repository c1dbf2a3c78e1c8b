package omdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/kasuboski/moviedb/pkg/movie"
	"github.com/kasuboski/moviedb/pkg/omdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetMovieByTitle(t *testing.T) {
	t.Run("sends one request with key and title", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			calls.Add(1)
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "secret", req.URL.Query().Get("apikey"))
			assert.Equal(t, "the matrix", req.URL.Query().Get("t"))

			rw.Write([]byte(`{"Title": "The Matrix", "Year": "1999", "imdbRating": "8.7", "Poster": "http://p", "Response": "True"}`))
		}))
		defer server.Close()

		c, err := omdb.New(server.URL, "secret", omdb.WithHTTPClient(server.Client()))
		require.NoError(t, err)

		m, err := c.GetMovieByTitle(context.Background(), "the matrix")
		require.NoError(t, err)
		assert.Equal(t, movie.Movie{Title: "The Matrix", Year: 1999, Rating: 8.7, Poster: "http://p"}, m)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("server error is not retried", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			calls.Add(1)
			rw.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		c, err := omdb.New(server.URL, "secret", omdb.WithHTTPClient(server.Client()))
		require.NoError(t, err)

		_, err = c.GetMovieByTitle(context.Background(), "Heat")
		assert.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			rw.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
		}))
		defer server.Close()

		c, err := omdb.New(server.URL, "secret", omdb.WithHTTPClient(server.Client()))
		require.NoError(t, err)

		_, err = c.GetMovieByTitle(context.Background(), "zzzz")
		assert.ErrorIs(t, err, omdb.ErrNotFound)
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {}))
		url := server.URL
		server.Close()

		c, err := omdb.New(url, "secret")
		require.NoError(t, err)

		_, err = c.GetMovieByTitle(context.Background(), "Heat")
		assert.Error(t, err)
	})
}
