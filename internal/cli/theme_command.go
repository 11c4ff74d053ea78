package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newThemeCommand creates the theme command
func (r *RootCommand) newThemeCommand() *cobra.Command {
	var darkFlag bool
	var lightFlag bool
	var colorFlag string

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change theme preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if darkFlag && lightFlag {
				return fmt.Errorf("--dark and --light are mutually exclusive")
			}
			if darkFlag || lightFlag {
				if err := r.theme.SetDarkMode(ctx, darkFlag); err != nil {
					return r.errors.Handle("set dark mode", err)
				}
			}
			if colorFlag != "" {
				if err := r.theme.SetAccentColor(ctx, colorFlag); err != nil {
					return r.errors.Handle("set accent color", err)
				}
			}

			darkMode, err := r.theme.DarkMode(ctx)
			if err != nil {
				return r.errors.Handle("read theme", err)
			}
			accent, err := r.theme.AccentColor(ctx)
			if err != nil {
				return r.errors.Handle("read theme", err)
			}

			mode := "light"
			if darkMode {
				mode = "dark"
			}
			tone := "dark"
			if r.theme.IsColorLight(accent) {
				tone = "light"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mode:   %s\n", mode)
			fmt.Fprintf(cmd.OutOrStdout(), "accent: %s (%s tone)\n", accent, tone)
			return nil
		},
	}

	cmd.Flags().BoolVar(&darkFlag, "dark", false, "enable dark mode")
	cmd.Flags().BoolVar(&lightFlag, "light", false, "disable dark mode")
	cmd.Flags().StringVar(&colorFlag, "color", "", "accent color in #RRGGBB format")

	return cmd
}
