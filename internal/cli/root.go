package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tasklist/internal/config"
	"tasklist/internal/domain"
	"tasklist/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	tasks  services.TaskService
	theme  services.ThemeService
	config *config.Config
	errors *ErrorHandler
}

// NewRootCommand creates the root cobra command with all subcommands
func NewRootCommand(tasks services.TaskService, theme services.ThemeService, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		tasks:  tasks,
		theme:  theme,
		config: cfg,
		errors: NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "tl",
		Short: "A command-line task list",
		Long: `Task List (tl) keeps a small list of to-do items with optional due dates,
stored locally.

EXAMPLES:
  tl add "Buy milk"                        # Add a task
  tl add "File taxes" --due 2026-04-15     # Add a task with a due date
  tl list                                  # List all tasks
  tl list --filter active                  # List only unfinished tasks
  tl done 2                                # Toggle completion of task 2
  tl edit 2 "Buy oat milk"                 # Rename task 2
  tl rm 2                                  # Delete task 2 (must be completed)
  tl clear                                 # Delete all completed tasks
  tl theme --dark --color "#3b82f6"        # Set theme preferences

CONFIGURATION:
  TL_STORAGE_BACKEND                       Storage backend: sqlite or memory (default: sqlite)
  TL_STORAGE_DIR                           Storage directory (default: ~/.tasklist)
  TL_STORAGE_FILENAME                      Database filename (default: tasks.db)
  TL_VALIDATION_TITLE_MAX                  Max task title length (default: 255)
  TL_NOTIFY_MAX_VISIBLE                    Max visible notifications (default: 2)
  TL_APP_TIMEOUT                           Application timeout (default: 60s)

Tasks are addressed by their number in the current list, as shown by tl list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Every command works against the freshly loaded view.
			return root.tasks.Load(cmd.Context())
		},
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command with the given context and arguments
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.newAddCommand(),
		r.newListCommand(),
		r.newEditCommand(),
		r.newDoneCommand(),
		r.newRemoveCommand(),
		r.newClearCommand(),
		r.newThemeCommand(),
	)
}

// taskByNumber resolves a 1-based list position into the task it refers to.
func (r *RootCommand) taskByNumber(arg string) (domain.Task, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return domain.Task{}, fmt.Errorf("invalid task number %q", arg)
	}
	tasks := r.tasks.Tasks()
	if n < 1 || n > len(tasks) {
		return domain.Task{}, fmt.Errorf("task number %d out of range: the list has %d tasks", n, len(tasks))
	}
	return tasks[n-1], nil
}
