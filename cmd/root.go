package cmd

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kasuboski/moviedb/config"
	mio "github.com/kasuboski/moviedb/pkg/io"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/shell"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd runs the interactive shell when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "moviedb",
	Short: "manage a personal movie catalog",
	Long:  `moviedb keeps a small movie catalog in a json, csv, yaml or sqlite file and drives it from an interactive menu.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalw("failed to read configurations", "error", err)
		}

		ctx := logger.WithCtx(context.Background(), log)
		store, closeStore, err := openStorage(ctx, cfg.Storage)
		if err != nil {
			log.Fatalw("failed to open storage", "error", err, "path", cfg.Storage.FilePath)
		}
		defer closeStore()

		opts := []shell.Option{
			shell.WithExporter(newExporter(cfg.Export)),
		}

		lookup, err := newLookup(cfg.OMDB)
		if err != nil {
			log.Fatalw("failed to create omdb client", "error", err)
		}
		if lookup != nil {
			opts = append(opts, shell.WithLookup(lookup))
		}

		sh := shell.New(os.Stdin, cmd.OutOrStdout(), store, opts...)
		if err := sh.Run(ctx); err != nil {
			log.Errorw("shell exited", "error", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Get().Warnw("failed to load .env", "error", err)
	}

	// the default config file is optional, an explicit one is not
	if (&mio.FileSystem{}).FileExists(cfgFile) || rootCmd.PersistentFlags().Changed("config") {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("MOVIEDB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.format", "json")
	v.SetDefault("storage.filePath", "data/movies.json")

	v.SetDefault("omdb.scheme", "https")
	v.SetDefault("omdb.host", "www.omdbapi.com")
	v.SetDefault("omdb.apiKey", "")

	v.SetDefault("export.templatePath", "static/index_template.html")
	v.SetDefault("export.outputPath", "static/index.html")
	v.SetDefault("export.title", "My Movie App")

	v.SetDefault("server.port", 8080)
}
