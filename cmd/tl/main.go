package main

import (
	"context"
	"fmt"
	"os"

	"tasklist/internal/cli"
	"tasklist/internal/config"
	"tasklist/internal/notify"
	"tasklist/internal/services"
	"tasklist/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	repo, prefs, err := config.CreateRepositories(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating storage: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	notifier := notify.NewLimiter(cli.NewTerminalNotifier(os.Stdout), cfg.Notifications.MaxVisible)
	celebrate := func() {
		fmt.Println("🎉")
	}

	tasks := services.NewTaskService(repo, notifier, celebrate, validation.NewTaskValidator(cfg.Validation.TitleMaxLength))
	theme := services.NewThemeService(prefs)

	root := cli.NewRootCommand(tasks, theme, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	if err := root.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
