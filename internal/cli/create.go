package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ML-With-Roshan/TrackMap/internal/roadmap"
)

var (
	createDescription string
	createImage       string
)

var createCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create an empty roadmap",
	Long:  `Create a roadmap with no phases. Add phases, tasks, and subtasks from the interactive UI.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, _, err := openStore()
		if err != nil {
			return err
		}

		r := roadmap.NewEmptyRoadmap(args[0], createDescription, createImage)
		added, err := s.Add(r)
		if err != nil {
			return err
		}
		if !added {
			fmt.Printf("A roadmap titled %q already exists, nothing added.\n", r.Title)
			return nil
		}

		fmt.Printf("Created roadmap: %s\n", r.Title)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createDescription, "description", "", "Roadmap description")
	createCmd.Flags().StringVar(&createImage, "image", "", "Icon identifier")
}
