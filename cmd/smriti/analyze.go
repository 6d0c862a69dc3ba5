package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hemanths/smriti/analyze"
	"github.com/hemanths/smriti/render"
	renderjson "github.com/hemanths/smriti/render/json"
	"github.com/hemanths/smriti/render/terminal"
	"github.com/hemanths/smriti/transcript"
	"github.com/urfave/cli/v3"
)

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Analyze a session transcript and print the report",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path to a session transcript (.jsonl)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: terminal, text, json",
				Value: "terminal",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			messages := transcript.Parse(cmd.String("file"))
			rep := analyze.New().Analyze(messages)

			sessionID := ""
			for _, m := range messages {
				if id := m.Meta().SessionID; id != "" {
					sessionID = id
					break
				}
			}

			session := &render.Session{
				SessionID:    sessionID,
				MessageCount: len(messages),
				Report:       rep,
			}

			rnd, err := newRenderer(cmd.String("o"))
			if err != nil {
				return err
			}
			return rnd.Render(os.Stdout, session)
		},
	}
}

func newRenderer(format string) (render.Renderer, error) {
	switch format {
	case "terminal":
		return terminal.New(), nil
	case "text":
		return render.NewText(), nil
	case "json":
		return renderjson.New(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
