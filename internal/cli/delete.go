package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ce11an/tasg/internal/store"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return withStore(func(s *store.Store) (bool, error) {
		if err := s.Delete(id); err != nil {
			return false, err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Task deleted successfully")
		return true, nil
	})
}
