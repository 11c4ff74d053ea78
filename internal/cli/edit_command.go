package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"tasklist/internal/domain"
)

// newEditCommand creates the edit command
func (r *RootCommand) newEditCommand() *cobra.Command {
	var dueFlag string

	cmd := &cobra.Command{
		Use:   "edit <number> <new title>",
		Short: "Edit a task's title and due date",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := r.taskByNumber(args[0])
			if err != nil {
				return r.errors.HandleSimple(err)
			}

			newTitle := strings.Join(args[1:], " ")

			var due *domain.Date
			if dueFlag != "" {
				parsed, err := domain.ParseDate(dueFlag)
				if err != nil {
					return r.errors.HandleSimple(err)
				}
				due = &parsed
			}

			if err := r.tasks.Edit(cmd.Context(), task, newTitle, due); err != nil {
				return r.errors.Handle("edit task", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dueFlag, "due", "", "new due date in YYYY-MM-DD format (unchanged if omitted)")

	return cmd
}
