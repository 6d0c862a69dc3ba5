package main

import (
	"context"
	"fmt"

	"github.com/hemanths/smriti/config"
	"github.com/hemanths/smriti/journal"
	"github.com/urfave/cli/v3"
)

func sessionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "sessions",
		Usage: "List captured sessions from the local journal",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			j, err := journal.ReadFile(config.Load().JournalPath)
			if err != nil {
				return fmt.Errorf("read journal: %w", err)
			}

			if len(j.Entries) == 0 {
				fmt.Println("No sessions captured yet.")
				return nil
			}

			for _, e := range j.Entries {
				status := "delivered"
				if !e.Delivered {
					status = "failed"
				}
				goal := e.Goal
				if goal == "" {
					goal = "(no goal identified)"
				}
				fmt.Printf("%s  %s  %4d msgs  %-9s  %s\n",
					e.CreatedAt.Local().Format("2006-01-02 15:04"),
					e.SessionID, e.Messages, status, goal)
			}
			return nil
		},
	}
}
