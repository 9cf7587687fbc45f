// Package cli implements the trackmap command-line interface.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ML-With-Roshan/TrackMap/internal/config"
	"github.com/ML-With-Roshan/TrackMap/internal/store"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "trackmap",
	Short:   "Track personal learning roadmaps",
	Long:    `TrackMap tracks hierarchical learning roadmaps (phases, tasks, subtasks) and can generate a roadmap for any topic via an AI service. Run without arguments for the interactive UI.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(toggleCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the console logger used by CLI commands.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// openStore loads configuration, opens the roadmap store, and seeds the
// built-in templates on first run.
func openStore() (config.Config, *store.Store, zerolog.Logger, error) {
	log := newLogger()

	cfg, err := config.Load(config.DefaultDataDir())
	if err != nil {
		return config.Config{}, nil, log, err
	}

	s, err := store.Open(cfg.DataDir, log)
	if err != nil {
		return config.Config{}, nil, log, err
	}
	if err := s.Initialize(); err != nil {
		return config.Config{}, nil, log, err
	}

	return cfg, s, log, nil
}
