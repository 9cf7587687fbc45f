//go:build ignore

// Command gen_sample_data seeds a data directory with the built-in roadmap
// templates plus a partially completed sample, for demos and screenshots.
//
// Usage:
//
//	go run ./scripts/gen_sample_data.go --data-dir /tmp/trackmap-demo
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ML-With-Roshan/TrackMap/internal/roadmap"
	"github.com/ML-With-Roshan/TrackMap/internal/store"
)

func main() {
	var dataDir string
	flag.StringVar(&dataDir, "data-dir", "", "directory to seed with roadmaps.json")
	flag.Parse()

	if dataDir == "" {
		fmt.Fprintln(os.Stderr, "Error: --data-dir is required")
		os.Exit(1)
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	s, err := store.Open(dataDir, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if s.Len() > 0 {
		fmt.Fprintf(os.Stderr, "Error: %s already contains %d roadmaps, refusing to seed\n", dataDir, s.Len())
		os.Exit(1)
	}

	if err := s.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// One roadmap with visible progress so list and detail screens have
	// something interesting to show.
	sample := roadmap.PreviewRoadmap("Go Fundamentals", "A sample roadmap with progress")
	if _, err := s.Add(sample); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	added, err := s.FindByTitle("Go Fundamentals")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, sub := range added.Phases[0].Tasks[0].SubTasks {
		if _, err := s.ToggleSubTask(added.ID, added.Phases[0].Tasks[0].ID, sub.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Seeded %s with %d roadmaps\n", dataDir, s.Len())
}
