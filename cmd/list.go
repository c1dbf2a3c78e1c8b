package cmd

import (
	"context"
	"fmt"

	"github.com/kasuboski/moviedb/config"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/movie"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	listSort string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "print the catalog",
	Long:  `print every movie in the catalog, optionally sorted by rating or year`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalw("failed to read configurations", "error", err)
		}

		ctx := logger.WithCtx(context.Background(), log)
		store, closeStore, err := openStorage(ctx, cfg.Storage)
		if err != nil {
			log.Fatalw("failed to open storage", "error", err)
		}
		defer closeStore()

		movies, err := store.List(ctx)
		if err != nil {
			log.Fatalw("failed to list movies", "error", err)
		}

		switch listSort {
		case "":
		case "rating":
			movies = movie.SortByRating(movies)
		case "year":
			movies = movie.SortByYear(movies, false)
		case "year_desc":
			movies = movie.SortByYear(movies, true)
		default:
			log.Fatalw("unknown sort order", "sort", listSort)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d movies in total\n", len(movies))
		for _, m := range movies {
			fmt.Fprintln(out, m.String())
		}
	},
}

func init() {
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort by rating, year or year_desc")
	rootCmd.AddCommand(listCmd)
}
