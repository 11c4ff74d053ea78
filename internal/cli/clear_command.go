package cli

import (
	"github.com/spf13/cobra"
)

// newClearCommand creates the clear command
func (r *RootCommand) newClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := r.tasks.RemoveCompleted(cmd.Context()); err != nil {
				return r.errors.Handle("clear completed tasks", err)
			}
			return nil
		},
	}
}
