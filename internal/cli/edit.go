package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ce11an/tasg/internal/store"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's description",
		Args:  cobra.ExactArgs(1),
		RunE:  runEdit,
	}
	cmd.Flags().StringP("description", "d", "", "New description for the task")
	cmd.MarkFlagRequired("description")
	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	description, _ := cmd.Flags().GetString("description")

	return withStore(func(s *store.Store) (bool, error) {
		if err := s.Edit(id, description); err != nil {
			return false, err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Task updated successfully")
		return true, nil
	})
}
