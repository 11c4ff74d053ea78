package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tasklist/internal/domain"
)

// newListCommand creates the list command
func (r *RootCommand) newListCommand() *cobra.Command {
	var filterFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := domain.ParseFilter(filterFlag)
			if err != nil {
				return r.errors.HandleSimple(err)
			}

			// Numbers refer to positions in the unfiltered list so that
			// done/edit/rm arguments stay stable across filters.
			all := r.tasks.Tasks()
			if len(all) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
				return nil
			}

			shown := 0
			for i, task := range all {
				if filter == domain.FilterActive && task.Completed {
					continue
				}
				if filter == domain.FilterCompleted && !task.Completed {
					continue
				}
				shown++

				marker := "[ ]"
				if task.Completed {
					marker = "[x]"
				}
				line := fmt.Sprintf("%3d. %s %s", i+1, marker, task.Title)
				if task.DueDate != nil {
					line += fmt.Sprintf(" (due %s)", task.DueDate)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			if shown == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s tasks.\n", filterFlag)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filterFlag, "filter", string(domain.FilterAll), "filter tasks: all, active or completed")

	return cmd
}
