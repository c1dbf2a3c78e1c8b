package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/movie"
	"github.com/kasuboski/moviedb/pkg/omdb"
	"github.com/kasuboski/moviedb/pkg/storage"
)

const invalidInput = "Invalid input, try again."

func (s *Shell) printMovies(movies []movie.Movie) {
	for _, m := range movies {
		s.println(m.String())
	}
}

func (s *Shell) listMovies(ctx context.Context) error {
	movies, err := s.storage.List(ctx)
	if err != nil {
		return err
	}

	s.printf("%d movies in total\n", len(movies))
	s.printMovies(movies)
	return nil
}

func (s *Shell) addMovie(ctx context.Context) error {
	title, err := s.readNonEmpty("Enter a movie title: ", "Movie name can't be empty")
	if err != nil {
		return err
	}

	var m movie.Movie
	if s.lookup != nil {
		m, err = s.lookup.GetMovieByTitle(ctx, title)
		if err != nil {
			logger.FromCtx(ctx).Debugw("movie lookup failed", "title", title, "error", err)
			if errors.Is(err, omdb.ErrNotFound) {
				s.printf("Movie %s was not found in the movie database\n", title)
				return nil
			}
			return fmt.Errorf("movie lookup for %s failed: %w", title, err)
		}
	} else {
		m, err = s.promptMovieDetails(title)
		if err != nil {
			return err
		}
	}

	if err := s.storage.Add(ctx, m); err != nil {
		return err
	}

	s.printf("Movie %s successfully added\n", m.Title)
	return nil
}

func (s *Shell) promptMovieDetails(title string) (movie.Movie, error) {
	year, err := s.readInt("Enter movie release year: ", invalidInput)
	if err != nil {
		return movie.Movie{}, err
	}

	rating, err := s.readFloat("Enter movie rating (1-10): ", invalidInput)
	if err != nil {
		return movie.Movie{}, err
	}

	poster, err := s.readLine("Enter movie poster URL: ")
	if err != nil {
		return movie.Movie{}, err
	}

	return movie.Movie{
		Title:  title,
		Year:   year,
		Rating: rating,
		Poster: strings.TrimSpace(poster),
	}, nil
}

// existing prompts for a title and reports whether the catalog holds it
func (s *Shell) existing(ctx context.Context, prompt string) (string, bool, error) {
	title, err := s.readLine(prompt)
	if err != nil {
		return "", false, err
	}

	ok, err := storage.Contains(ctx, s.storage, title)
	if err != nil {
		return "", false, err
	}

	if !ok {
		s.printf("Movie %s doesn't exist!\n", title)
		return title, false, nil
	}

	return title, true, nil
}

func (s *Shell) deleteMovie(ctx context.Context) error {
	title, ok, err := s.existing(ctx, "Enter name of movie you want to delete: ")
	if err != nil || !ok {
		return err
	}

	if err := s.storage.Delete(ctx, title); err != nil {
		return err
	}

	s.printf("Movie %s successfully deleted!\n", title)
	return nil
}

func (s *Shell) updateMovie(ctx context.Context) error {
	title, ok, err := s.existing(ctx, "Enter name of movie you want to update: ")
	if err != nil || !ok {
		return err
	}

	rating, err := s.readFloat("Enter new movie rating: ", "Please enter a valid rating")
	if err != nil {
		return err
	}

	if err := s.storage.Update(ctx, title, rating); err != nil {
		return err
	}

	s.println("Rating successfully changed!")
	return nil
}

func (s *Shell) stats(ctx context.Context) error {
	movies, err := s.storage.List(ctx)
	if err != nil {
		return err
	}

	stats, err := movie.CalculateStats(movies)
	if errors.Is(err, movie.ErrEmptyCatalog) {
		s.println("No movies available to calculate statistics.")
		return nil
	}
	if err != nil {
		return err
	}

	s.printf("Average rating: %s\n", movie.Round(stats.Mean))
	s.printf("Median rating: %s\n", movie.Round(stats.Median))
	s.printf("Best movie(s): %s\n", ratedTitles(stats.Best))
	s.printf("Worst movie(s): %s\n", ratedTitles(stats.Worst))
	return nil
}

// ratedTitles prints "A, 8.8" for one movie and "(A, 8.8) (B, 8.8)" for ties
func ratedTitles(movies []movie.Movie) string {
	if len(movies) == 1 {
		return fmt.Sprintf("%s, %s", movies[0].Title, movie.FormatRating(movies[0].Rating))
	}

	parts := make([]string, len(movies))
	for i, m := range movies {
		parts[i] = fmt.Sprintf("(%s, %s)", m.Title, movie.FormatRating(m.Rating))
	}
	return strings.Join(parts, " ")
}

func (s *Shell) randomMovie(ctx context.Context) error {
	movies, err := s.storage.List(ctx)
	if err != nil {
		return err
	}

	m, err := movie.Random(movies, s.rand)
	if errors.Is(err, movie.ErrEmptyCatalog) {
		s.println("No movies available to pick a random movie.")
		return nil
	}
	if err != nil {
		return err
	}

	s.printf("You could watch this movie: %s, it's rated %s\n", m.Title, movie.FormatRating(m.Rating))
	return nil
}

func (s *Shell) searchMovie(ctx context.Context) error {
	movies, err := s.storage.List(ctx)
	if err != nil {
		return err
	}

	term, err := s.readLine("Enter part of movie name: ")
	if err != nil {
		return err
	}

	found := movie.Search(movies, term)
	if len(found) == 0 {
		s.println("Movie name not found!")
		return nil
	}

	s.printMovies(found)
	return nil
}

func (s *Shell) sortByRating(ctx context.Context) error {
	movies, err := s.storage.List(ctx)
	if err != nil {
		return err
	}

	s.printMovies(movie.SortByRating(movies))
	return nil
}

func (s *Shell) sortByYear(ctx context.Context) error {
	movies, err := s.storage.List(ctx)
	if err != nil {
		return err
	}

	latestFirst, err := s.readYesNo("Do you want the latest movies first? (Y/N)\n")
	if err != nil {
		return err
	}

	s.printMovies(movie.SortByYear(movies, latestFirst))
	return nil
}

func (s *Shell) filterMovies(ctx context.Context) error {
	movies, err := s.storage.List(ctx)
	if err != nil {
		return err
	}

	var c movie.Criteria
	if c.MinRating, err = s.readOptionalFloat("Enter minimum rating, leave blank for no filter: ", "Invalid, please enter a number!"); err != nil {
		return err
	}
	if c.StartYear, err = s.readOptionalInt("Enter start year, leave blank for no filter: ", "Invalid, please enter a valid year!"); err != nil {
		return err
	}
	if c.EndYear, err = s.readOptionalInt("Enter end year, leave blank for no filter: ", "Invalid, please enter a valid year!"); err != nil {
		return err
	}

	filtered := movie.Filter(movies, c)
	if len(filtered) == 0 {
		s.println("\nThere are no movies with your filters applied.")
		return nil
	}

	s.println("Filtered movies:")
	s.printMovies(filtered)
	return nil
}

func (s *Shell) generateWebsite(ctx context.Context) error {
	if s.exporter == nil {
		s.println("Website generation is not configured.")
		return nil
	}

	movies, err := s.storage.List(ctx)
	if err != nil {
		return err
	}

	if err := s.exporter.Export(ctx, movies); err != nil {
		return err
	}

	s.printf("Website was successfully generated to %s\n", s.exporter.OutputPath())
	return nil
}
