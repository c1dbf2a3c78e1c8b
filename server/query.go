package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/kasuboski/moviedb/pkg/movie"
	"github.com/kasuboski/moviedb/pkg/pagination"
)

type SortOrder string

const (
	SortNone     SortOrder = ""
	SortRating   SortOrder = "rating"
	SortYear     SortOrder = "year"
	SortYearDesc SortOrder = "year_desc"
)

// MovieQuery is the search, filter and sort part of a movie listing request
type MovieQuery struct {
	Search   string
	Criteria movie.Criteria
	Sort     SortOrder
}

// Apply runs search, then filter, then sort over a catalog snapshot
func (q MovieQuery) Apply(movies []movie.Movie) []movie.Movie {
	if q.Search != "" {
		movies = movie.Search(movies, q.Search)
	}
	movies = movie.Filter(movies, q.Criteria)

	switch q.Sort {
	case SortRating:
		movies = movie.SortByRating(movies)
	case SortYear:
		movies = movie.SortByYear(movies, false)
	case SortYearDesc:
		movies = movie.SortByYear(movies, true)
	}

	return movies
}

// ParseMovieQuery extracts q, minRating, startYear, endYear and sort
func ParseMovieQuery(r *http.Request) (MovieQuery, error) {
	qp := r.URL.Query()
	q := MovieQuery{
		Search: qp.Get("q"),
		Sort:   SortOrder(qp.Get("sort")),
	}

	switch q.Sort {
	case SortNone, SortRating, SortYear, SortYearDesc:
	default:
		return q, fmt.Errorf("invalid sort parameter: must be one of rating, year, year_desc")
	}

	if s := qp.Get("minRating"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return q, fmt.Errorf("invalid minRating parameter: must be a number")
		}
		q.Criteria.MinRating = &v
	}

	for name, dst := range map[string]**int{
		"startYear": &q.Criteria.StartYear,
		"endYear":   &q.Criteria.EndYear,
	} {
		s := qp.Get(name)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return q, fmt.Errorf("invalid %s parameter: must be an integer", name)
		}
		*dst = &v
	}

	return q, nil
}

// ParsePaginationParams extracts and validates pagination params from request
func ParsePaginationParams(r *http.Request) (pagination.Params, error) {
	params := pagination.Params{
		Page:     1,
		PageSize: 0,
	}

	qp := r.URL.Query()

	if pageStr := qp.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid page parameter: must be positive integer")
		}
		params.Page = page
	}

	if pageSizeStr := qp.Get("pageSize"); pageSizeStr != "" {
		pageSize, err := strconv.Atoi(pageSizeStr)
		if err != nil || pageSize < 0 {
			return params, fmt.Errorf("invalid pageSize parameter: must be non-negative integer")
		}
		params.PageSize = pageSize
	}

	return params, nil
}
