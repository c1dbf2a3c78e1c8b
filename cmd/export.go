package cmd

import (
	"context"
	"fmt"

	"github.com/kasuboski/moviedb/config"
	"github.com/kasuboski/moviedb/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "generate the catalog website",
	Long:  `render the catalog into the website template and write the page`,
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

		exporter := newExporter(cfg.Export)
		if err := exporter.Export(ctx, movies); err != nil {
			log.Fatalw("failed to generate website", "error", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Website was successfully generated to %s\n", exporter.OutputPath())
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
