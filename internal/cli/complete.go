package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ce11an/tasg/internal/store"
)

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as complete",
		Args:  cobra.ExactArgs(1),
		RunE:  runComplete,
	}
}

func runComplete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return withStore(func(s *store.Store) (bool, error) {
		if err := s.Complete(id); err != nil {
			return false, err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Task marked as complete")
		return true, nil
	})
}
