package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ML-With-Roshan/TrackMap/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Show a roadmap's phases, tasks, and subtasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, _, err := openStore()
		if err != nil {
			return err
		}

		r, err := s.FindByTitle(args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("roadmap not found: %s", args[0])
		}
		if err != nil {
			return err
		}

		fmt.Println(r.Title)
		if r.Description != "" {
			fmt.Println(r.Description)
		}
		fmt.Printf("Progress: %d/%d subtasks (%.0f%%)\n", r.CompletedSubTasks(), r.TotalSubTasks(), r.Progress()*100)

		if len(r.Phases) == 0 {
			fmt.Println("\nNo phases yet.")
			return nil
		}

		for _, phase := range r.Phases {
			fmt.Printf("\n%s\n", phase.Name)
			for _, task := range phase.Tasks {
				fmt.Printf("  %s\n", task.Name)
				for _, st := range task.SubTasks {
					mark := "[ ]"
					if st.IsCompleted {
						mark = "[x]"
					}
					fmt.Printf("    %s %s\n", mark, st.Name)
				}
			}
		}
		return nil
	},
}
