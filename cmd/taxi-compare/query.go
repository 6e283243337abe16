package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/taxi-compare/aggregate"
	"github.com/theoremus-urban-solutions/taxi-compare/formatter"
	"github.com/theoremus-urban-solutions/taxi-compare/views"
)

var queryFormat string

var queryCmd = &cobra.Command{
	Use:       "query <view>",
	Short:     "Load both snapshots, print one view and exit",
	Long:      "Load both snapshots, print one view and exit. View is one of hourly, weekly, payments, top_zones, fares or summary.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"hourly", "weekly", "payments", "top_zones", "fares", "summary"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formatter.ParseFormat(queryFormat)
		if err != nil {
			return err
		}
		var name views.Name
		if args[0] != "summary" {
			if name, err = views.ParseName(args[0]); err != nil {
				return err
			}
		}
		// Logs go to stderr so stdout carries only the view.
		cfg, logger, err := setup(os.Stderr)
		if err != nil {
			return err
		}
		st, err := newLoader(logger).Load(cmd.Context(), cfg.Data)
		if err != nil {
			return err
		}
		engine := aggregate.NewEngine(st)

		var rows any
		if name == "" {
			rows, err = engine.Summary(cmd.Context())
		} else {
			rows, err = engine.View(name)
		}
		if err != nil {
			return err
		}
		buf, err := formatter.Encode(format, rows)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if _, err := out.Write(buf); err != nil {
			return err
		}
		if format == formatter.JSON {
			_, err = out.Write([]byte("\n"))
		}
		return err
	},
}

func init() {
	queryCmd.Flags().StringVarP(&queryFormat, "format", "f", "json", "output format: json|pb")
}
