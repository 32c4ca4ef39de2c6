package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ce11an/tasg/internal/store"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <description>",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		RunE:  runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	return withStore(func(s *store.Store) (bool, error) {
		t, err := s.Add(args[0])
		if err != nil {
			return false, err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task added successfully (id %d)\n", t.ID)
		return true, nil
	})
}
