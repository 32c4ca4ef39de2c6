package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ce11an/tasg/internal/store"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().BoolP("all", "a", false, "Show all tasks, including completed ones")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")

	return withStore(func(s *store.Store) (bool, error) {
		out := cmd.OutOrStdout()

		tasks := s.List(all)
		if len(tasks) == 0 {
			fmt.Fprintln(out, "No tasks found")
			return false, nil
		}

		completedHeader := ""
		if all {
			completedHeader = "Completed"
		}
		fmt.Fprintf(out, "%-5s %-50s %-20s %s\n", "ID", "Description", "Created At", completedHeader)

		for _, t := range tasks {
			completed := ""
			if all {
				completed = "No"
				if t.Completed {
					completed = "Yes"
				}
			}
			fmt.Fprintf(out, "%-5d %-50s %-20s %s\n",
				t.ID,
				t.Description,
				t.CreatedAt.Format("2006-01-02 15:04:05"),
				completed)
		}

		if all {
			total, completed := s.Stats()
			fmt.Fprintf(out, "\n%d tasks, %d completed\n", total, completed)
		}

		return false, nil
	})
}
