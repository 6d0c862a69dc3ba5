package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "smriti",
		Usage: "Capture Claude Code sessions into a Graphiti knowledge graph",
		Description: `
                 _ _   _
  ___ _ __  _ _ (_) |_ (_)
 (_-<| '  \| '_|| |  _|| |
 /__/|_|_|_|_|  |_|\__||_|

 The memory of sessions: what was done, solved, and decided.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			hookCmd(),
			analyzeCmd(),
			sessionsCmd(),
			installCmd(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
