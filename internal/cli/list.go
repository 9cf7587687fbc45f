package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all roadmaps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, _, err := openStore()
		if err != nil {
			return err
		}

		roadmaps := s.Roadmaps()
		if len(roadmaps) == 0 {
			fmt.Println("No roadmaps yet. Run `trackmap create` or `trackmap generate` to add one.")
			return nil
		}

		for _, r := range roadmaps {
			completed, total := r.CompletedSubTasks(), r.TotalSubTasks()
			fmt.Printf("%-50s %3d phases   %3d/%-3d subtasks   %3.0f%%\n",
				r.Title, len(r.Phases), completed, total, r.Progress()*100)
		}
		return nil
	},
}
