package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"tasklist/internal/domain"
)

// newAddCommand creates the add command
func (r *RootCommand) newAddCommand() *cobra.Command {
	var dueFlag string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			var due *domain.Date
			if dueFlag != "" {
				parsed, err := domain.ParseDate(dueFlag)
				if err != nil {
					return r.errors.HandleSimple(err)
				}
				due = &parsed
			}

			if _, err := r.tasks.Add(cmd.Context(), title, due); err != nil {
				return r.errors.Handle("add task", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dueFlag, "due", "", "due date in YYYY-MM-DD format")

	return cmd
}
