package cli

import (
	"github.com/spf13/cobra"
)

// newRemoveCommand creates the rm command
func (r *RootCommand) newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <number>",
		Short: "Delete a completed task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := r.taskByNumber(args[0])
			if err != nil {
				return r.errors.HandleSimple(err)
			}

			if err := r.tasks.Remove(cmd.Context(), task); err != nil {
				return r.errors.Handle("delete task", err)
			}
			return nil
		},
	}
}
