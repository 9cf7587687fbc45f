package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ML-With-Roshan/TrackMap/internal/cli"
	"github.com/ML-With-Roshan/TrackMap/internal/config"
	"github.com/ML-With-Roshan/TrackMap/internal/store"
	"github.com/ML-With-Roshan/TrackMap/internal/tui"
)

func main() {
	// If no args, launch TUI; otherwise route to CLI
	if len(os.Args) == 1 {
		if err := runTUI(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
	}
}

func runTUI() error {
	cfg, err := config.Load(config.DefaultDataDir())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file in the data dir.
	log := zerolog.Nop()
	logPath := filepath.Join(cfg.DataDir, "trackmap.log")
	if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
		defer f.Close()
		log = zerolog.New(f).With().Timestamp().Logger()
	}

	s, err := store.Open(cfg.DataDir, log)
	if err != nil {
		return err
	}
	if err := s.Initialize(); err != nil {
		return err
	}

	return tui.Run(cfg, s, log)
}
