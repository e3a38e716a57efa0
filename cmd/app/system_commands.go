package main

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/foodshare/server/cmd/app/commands"
	"github.com/foodshare/server/internal/app"
	"github.com/foodshare/server/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the API and metrics servers",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "create-indexes",
			Usage: "Create the MongoDB indexes used by the API",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer closeContainer(ctx, container)

				db, err := container.MongoDatabase()
				if err != nil {
					return err
				}

				return commands.RunCreateIndexes(
					ctx,
					container.Logger(),
					db,
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
	}
}

func closeContainer(ctx context.Context, container *app.Container) {
	if err := container.Shutdown(context.WithoutCancel(ctx)); err != nil {
		container.Logger().Error("failed to shutdown container", slog.Any("error", err))
	}
}
