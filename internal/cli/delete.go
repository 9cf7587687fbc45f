package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ML-With-Roshan/TrackMap/internal/store"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "Delete a roadmap",
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

		if err := s.Delete(r.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted roadmap: %s\n", r.Title)
		return nil
	},
}
