package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/movie"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_omdb.go github.com/kasuboski/moviedb/pkg/omdb IOmdb

const notAvailable = "N/A"

var (
	ErrNotFound        = errors.New("movie not found")
	ErrInvalidResponse = errors.New("invalid omdb response")

	yearRegex = regexp.MustCompile(`^\d{4}`)
)

// IOmdb looks up movie metadata by title
type IOmdb interface {
	GetMovieByTitle(ctx context.Context, title string) (movie.Movie, error)
}

// HTTPClient is the subset of *http.Client used to send requests
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption allows setting custom parameters during construction
type ClientOption func(*Client) error

// WithHTTPClient allows overriding the default Doer, which is
// automatically created using http.Client. This is useful for tests.
func WithHTTPClient(doer HTTPClient) ClientOption {
	return func(c *Client) error {
		c.client = doer
		return nil
	}
}

// Client talks to the OMDb API. Each lookup is a single GET request with no retries.
type Client struct {
	server *url.URL
	apiKey string
	client HTTPClient
}

// New creates a new OMDb client for the server url, e.g. https://www.omdbapi.com
func New(server string, apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("omdb api key is required")
	}

	u, err := url.Parse(server)
	if err != nil {
		return nil, fmt.Errorf("invalid omdb url: %w", err)
	}

	c := &Client{
		server: u,
		apiKey: apiKey,
		client: &http.Client{},
	}

	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// MovieResponse is the subset of the OMDb title lookup body the catalog uses
type MovieResponse struct {
	Response   string `json:"Response"`
	Error      string `json:"Error"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
}

// GetMovieByTitle fetches year, rating and poster for a title
func (c *Client) GetMovieByTitle(ctx context.Context, title string) (movie.Movie, error) {
	log := logger.FromCtx(ctx)

	req, err := c.newTitleRequest(ctx, title)
	if err != nil {
		return movie.Movie{}, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("failed to reach omdb: %w", err)
	}
	defer res.Body.Close()

	m, err := parseMovieResponse(res)
	if err != nil {
		log.Debugw("omdb lookup failed", "title", title, "status", res.StatusCode, "error", err)
		return movie.Movie{}, err
	}

	if m.Title == "" {
		m.Title = title
	}

	return m, nil
}

func (c *Client) newTitleRequest(ctx context.Context, title string) (*http.Request, error) {
	u := *c.server
	if u.Path == "" {
		u.Path = "/"
	}

	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("t", title)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("accept", "application/json")

	return req, nil
}

func parseMovieResponse(res *http.Response) (movie.Movie, error) {
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("failed to read omdb response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return movie.Movie{}, fmt.Errorf("omdb returned status %d", res.StatusCode)
	}

	var body MovieResponse
	if err := json.Unmarshal(b, &body); err != nil {
		return movie.Movie{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	if !strings.EqualFold(body.Response, "True") {
		if body.Error == "" {
			return movie.Movie{}, ErrNotFound
		}
		return movie.Movie{}, fmt.Errorf("%w: %s", ErrNotFound, body.Error)
	}

	year, err := parseYear(body.Year)
	if err != nil {
		return movie.Movie{}, err
	}

	return movie.Movie{
		Title:  body.Title,
		Year:   year,
		Rating: parseRating(body.ImdbRating),
		Poster: parsePoster(body.Poster),
	}, nil
}

// parseYear takes the first year of values such as "1999" or "2008–2013"
func parseYear(s string) (int, error) {
	match := yearRegex.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0, fmt.Errorf("%w: invalid year %q", ErrInvalidResponse, s)
	}
	return strconv.Atoi(match)
}

func parseRating(s string) float64 {
	if s == "" || s == notAvailable {
		return 0
	}

	rating, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return rating
}

func parsePoster(s string) string {
	if s == notAvailable {
		return ""
	}
	return s
}
