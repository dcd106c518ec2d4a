// Package cli is the terminal front end: a cobra command tree with an
// interactive huh form and lipgloss tables for the results.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/trainmeet/internal/config"
	"github.com/trainmeet/internal/infrastructure/googlemaps"
	"github.com/trainmeet/internal/pkg/logger"
	"github.com/trainmeet/internal/usecase"
	"go.uber.org/zap"
)

type rootOptions struct {
	envFile string
	logFile string
}

// NewRootCommand builds the trainmeet command. Without a subcommand it opens
// the interactive form.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "trainmeet",
		Short: "Find rail connections from several places to one meeting point",
		Long: `trainmeet looks up the rail itinerary from every departure place to a common
destination, arriving by the given time, using the Google Maps Directions API.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "path to the .env configuration file")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")

	root.AddCommand(newPlanCommand(opts))

	return root
}

// setup loads configuration and wires the planner the same way cmd/api does.
func setup(opts *rootOptions) (*config.Config, *usecase.RoutePlannerUseCase, *zap.Logger, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, nil, nil, err
	}

	log := zap.NewNop()
	if opts.logFile != "" {
		log, err = logger.NewFile(cfg.Log.Level, opts.logFile)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	mapsClient := googlemaps.NewGoogleMapsClient(&cfg.GoogleMaps, log)
	return cfg, usecase.NewRoutePlannerUseCase(mapsClient, log), log, nil
}
