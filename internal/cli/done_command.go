package cli

import (
	"github.com/spf13/cobra"
)

// newDoneCommand creates the done command
func (r *RootCommand) newDoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done <number>",
		Short: "Toggle a task between complete and incomplete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := r.taskByNumber(args[0])
			if err != nil {
				return r.errors.HandleSimple(err)
			}

			if err := r.tasks.ToggleComplete(cmd.Context(), task); err != nil {
				return r.errors.Handle("toggle task", err)
			}
			return nil
		},
	}
}
