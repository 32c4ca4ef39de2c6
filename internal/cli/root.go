package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Ce11an/tasg/internal/config"
	"github.com/Ce11an/tasg/internal/store"
)

// NewRootCmd builds the full command tree. A fresh tree is built per
// invocation so flag state never leaks between runs.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tasg",
		Short: "Manage your tasks from the command line",
		Long: `tasg is a command-line tool for managing tasks. It can add, list,
complete, edit, and delete tasks, stored in a YAML file in your
configuration directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAddCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newCompleteCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newDeleteCmd())
	root.AddCommand(newNukeCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// Execute runs the root command
func Execute(version string) error {
	root := NewRootCmd()
	root.Version = version

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// withStore loads the store from the configured data file, runs fn
// against it, and writes the store back only when fn reports a
// mutation. Every command is one pass through here: load, one
// operation, conditional save.
func withStore(fn func(s *store.Store) (mutated bool, err error)) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s, err := store.Load(cfg.DataFile)
	if err != nil {
		return err
	}

	mutated, err := fn(s)
	if err != nil {
		return err
	}

	if mutated {
		return store.Save(cfg.DataFile, s)
	}
	return nil
}

// parseID parses a task id argument. IDs are positive integers.
func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid task id %q: must be a positive integer", arg)
	}
	return id, nil
}
