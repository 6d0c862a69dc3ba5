package main

import (
	"context"
	"fmt"

	"github.com/hemanths/smriti/install"
	"github.com/urfave/cli/v3"
)

func installCmd() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Register the hook commands in Claude Code settings",
		Description: `Adds this binary as a PostToolUse, Notification, and Stop hook in
~/.claude/settings.json. Existing settings and hooks from other tools
are preserved. Run 'smriti install --remove' to undo.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "remove",
				Usage: "Remove the hook registrations instead of adding them",
			},
			&cli.StringFlag{
				Name:  "settings",
				Usage: "Path to settings.json (defaults to ~/.claude/settings.json)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := install.Config{SettingsPath: cmd.String("settings")}

			if cmd.Bool("remove") {
				if err := install.Uninstall(cfg); err != nil {
					return err
				}
				fmt.Println("Hooks removed.")
				return nil
			}

			if err := install.Run(cfg); err != nil {
				return err
			}

			fmt.Println("Installed successfully.")
			fmt.Println()
			fmt.Println("  Events:   PostToolUse, Notification, Stop")
			fmt.Println("  Command:  smriti hook")
			fmt.Println()
			fmt.Println("Sessions will be captured as you work and summarized on stop.")
			return nil
		},
	}
}
