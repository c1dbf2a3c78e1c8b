package cmd

import (
	"context"

	"github.com/kasuboski/moviedb/config"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the read-only preview server",
	Long:  `serve the generated website and a read-only json api over the catalog`,
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

		srv := server.New(log, store, newExporter(cfg.Export))
		if err := srv.Serve(cfg.Server.Port); err != nil {
			log.Error(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
