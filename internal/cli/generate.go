package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ML-With-Roshan/TrackMap/internal/ai"
	"github.com/ML-With-Roshan/TrackMap/internal/roadmap"
)

var generateDescription string

var generateCmd = &cobra.Command{
	Use:   "generate <name> <learning goal...>",
	Short: "Generate a roadmap with AI",
	Long: `Generate a learning roadmap for a topic via the configured AI service.
The learning goal describes what you want to get out of it, e.g.:

  trackmap generate "iOS Development" build and ship a SwiftUI app

Requires TRACKMAP_API_KEY (or ANTHROPIC_API_KEY) to be set. Set
TRACKMAP_PREVIEW=true to use a canned sample roadmap instead of
calling the service.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, s, log, err := openStore()
		if err != nil {
			return err
		}

		name := args[0]
		goal := strings.Join(args[1:], " ")

		var generated *roadmap.Roadmap
		if os.Getenv("TRACKMAP_PREVIEW") == "true" {
			preview := roadmap.PreviewRoadmap(name, generateDescription)
			generated = &preview
		} else {
			fmt.Println("Generating your roadmap...")
			client := ai.NewClient(cfg, log)
			generated, err = client.GenerateRoadmap(context.Background(), name, generateDescription, goal)
			if err != nil {
				return fmt.Errorf("failed to generate roadmap: %w", err)
			}
		}

		added, err := s.Add(*generated)
		if err != nil {
			return err
		}
		if !added {
			fmt.Printf("A roadmap titled %q already exists, nothing added.\n", generated.Title)
			return nil
		}

		fmt.Printf("Roadmap created: %s\n", generated.Title)
		for _, phase := range generated.Phases {
			fmt.Printf("  %s (%d tasks)\n", phase.Name, len(phase.Tasks))
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateDescription, "description", "", "Roadmap description")
}
