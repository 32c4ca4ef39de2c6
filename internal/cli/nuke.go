package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ce11an/tasg/internal/store"
)

func newNukeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nuke",
		Short: "Delete all tasks",
		Long: `Deletes every task and resets the id counter - use with caution!

The command asks for confirmation before touching the store; anything
other than "y" cancels and leaves your tasks untouched.`,
		Args: cobra.NoArgs,
		RunE: runNuke,
	}
}

func runNuke(cmd *cobra.Command, args []string) error {
	return withStore(func(s *store.Store) (bool, error) {
		out := cmd.OutOrStdout()

		fmt.Fprint(out, "Are you sure you want to delete all tasks? This action cannot be undone. (y/N): ")

		reader := bufio.NewReader(cmd.InOrStdin())
		input, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, err
		}

		if strings.ToLower(strings.TrimSpace(input)) != "y" {
			fmt.Fprintln(out, "Operation cancelled.")
			return false, nil
		}

		s.Nuke(true)
		fmt.Fprintln(out, "All tasks have been deleted.")
		return true, nil
	})
}
