package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ML-With-Roshan/TrackMap/internal/roadmap"
	"github.com/ML-With-Roshan/TrackMap/internal/store"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <title> <task> <subtask>",
	Short: "Toggle a subtask's completion state",
	Long: `Toggle the completion flag of a subtask, addressed by roadmap title,
task name, and subtask name. Use quotes around multi-word names:

  trackmap toggle "Python Mastery" "Setup" "Install tools"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, _, err := openStore()
		if err != nil {
			return err
		}

		updated, sub, err := toggleByName(s, args[0], args[1], args[2])
		if err != nil {
			return err
		}

		state := "incomplete"
		if sub.IsCompleted {
			state = "complete"
		}
		fmt.Printf("Marked %q %s (%d/%d subtasks done)\n", sub.Name, state, updated.CompletedSubTasks(), updated.TotalSubTasks())
		return nil
	},
}

// toggleByName resolves a subtask by names and flips its completion flag.
// The first task whose name matches is searched; within it, the first
// matching subtask wins.
func toggleByName(s *store.Store, title, taskName, subTaskName string) (roadmap.Roadmap, roadmap.SubTask, error) {
	r, err := s.FindByTitle(title)
	if errors.Is(err, store.ErrNotFound) {
		return roadmap.Roadmap{}, roadmap.SubTask{}, fmt.Errorf("roadmap not found: %s", title)
	}
	if err != nil {
		return roadmap.Roadmap{}, roadmap.SubTask{}, err
	}

	for _, phase := range r.Phases {
		for _, task := range phase.Tasks {
			if task.Name != taskName {
				continue
			}
			for _, st := range task.SubTasks {
				if st.Name != subTaskName {
					continue
				}
				updated, err := s.ToggleSubTask(r.ID, task.ID, st.ID)
				if err != nil {
					return roadmap.Roadmap{}, roadmap.SubTask{}, err
				}
				return updated, findSubTask(updated, st.ID), nil
			}
			return roadmap.Roadmap{}, roadmap.SubTask{}, fmt.Errorf("subtask not found in task %q: %s", taskName, subTaskName)
		}
	}
	return roadmap.Roadmap{}, roadmap.SubTask{}, fmt.Errorf("task not found in roadmap %q: %s", title, taskName)
}

// findSubTask returns the subtask with the given id, searching every
// phase. The zero SubTask means the id is gone, which cannot happen right
// after a successful toggle.
func findSubTask(r roadmap.Roadmap, id string) roadmap.SubTask {
	for _, phase := range r.Phases {
		for _, task := range phase.Tasks {
			for _, st := range task.SubTasks {
				if st.ID == id {
					return st
				}
			}
		}
	}
	return roadmap.SubTask{}
}
