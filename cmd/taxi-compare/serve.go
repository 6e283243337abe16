package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	taxicompare "github.com/theoremus-urban-solutions/taxi-compare"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load both snapshots and serve the views over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(os.Stdout)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc := taxicompare.NewService(cfg.Data, newLoader(logger), logger)
		// The listener only opens once the dataset is fully loaded.
		if err := svc.Load(ctx); err != nil {
			return err
		}
		srv := taxicompare.NewServer(svc, cfg.Server, logger)
		errs := srv.Start()

		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-hup:
					logger.Info("reloading dataset")
					if err := svc.Reload(ctx); err != nil {
						logger.Warn("reload failed, keeping current dataset", "error", err)
					}
				}
			}
		}()

		return srv.HandleGracefulShutdown(ctx, errs)
	},
}
