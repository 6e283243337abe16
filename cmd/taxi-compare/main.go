package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/taxi-compare/config"
	"github.com/theoremus-urban-solutions/taxi-compare/internal"
	"github.com/theoremus-urban-solutions/taxi-compare/trips"
)

var (
	configPath    string
	sourceTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "taxi-compare",
	Short:         "Compare taxi demand between two trip snapshots",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default config.yml)")
	rootCmd.PersistentFlags().DurationVar(&sourceTimeout, "source-timeout", 0, "timeout for downloading remote sources (0 = none)")
	rootCmd.AddCommand(serveCmd, queryCmd)
}

// setup loads the configuration and installs the logger
func setup(logOut io.Writer) (config.AppConfig, *slog.Logger, error) {
	var paths []string
	if configPath != "" {
		paths = []string{configPath}
	}
	if err := config.LoadAppConfig(paths...); err != nil {
		return config.AppConfig{}, nil, err
	}
	cfg := config.Config
	logger := internal.InitLogging(logOut, cfg.Logging.Level, cfg.Logging.Format)
	return cfg, logger, nil
}

func newLoader(logger *slog.Logger) *trips.Loader {
	return trips.NewLoader(
		trips.WithLogger(logger),
		trips.WithHTTPClient(&http.Client{Timeout: sourceTimeout}),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
