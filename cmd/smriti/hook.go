package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hemanths/smriti/config"
	"github.com/hemanths/smriti/hook"
	"github.com/urfave/cli/v3"
)

func hookCmd() *cli.Command {
	return &cli.Command{
		Name:  "hook",
		Usage: "Process one Claude Code hook event from standard input",
		Description: `Reads a hook event JSON object from stdin and dispatches it:
tool activity and notifications become knowledge-store messages,
session stop triggers transcript analysis and summary delivery.

Registered by 'smriti install'; not normally run by hand. Failures
past decoding are logged and swallowed so the agent is never blocked.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ev, err := hook.Decode(os.Stdin)
			if err != nil {
				return fmt.Errorf("hook input: %w", err)
			}

			hook.NewHandler(config.Load()).Handle(ctx, ev)
			return nil
		},
	}
}
