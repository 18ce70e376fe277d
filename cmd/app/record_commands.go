package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/sealbox/cmd/app/commands"
	"github.com/allisson/sealbox/internal/app"
	"github.com/allisson/sealbox/internal/config"
)

func getRecordCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "put",
			Usage: "Seal stdin and store it in the record database, printing the record id",
			Flags: []cli.Flag{
				secretEnvFlag("secret-env", "Name of the environment variable holding the secret"),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				envelopeUseCase, err := container.EnvelopeUseCase()
				if err != nil {
					return err
				}

				recordUseCase, err := container.RecordUseCase()
				if err != nil {
					return err
				}

				return commands.RunPut(
					ctx,
					envelopeUseCase,
					recordUseCase,
					container.Codec(),
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("secret-env"),
				)
			},
		},
		{
			Name:  "get",
			Usage: "Load a stored record and print its plaintext",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Record ID (UUID)",
				},
				secretEnvFlag("secret-env", "Name of the environment variable holding the secret"),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				envelopeUseCase, err := container.EnvelopeUseCase()
				if err != nil {
					return err
				}

				recordUseCase, err := container.RecordUseCase()
				if err != nil {
					return err
				}

				return commands.RunGet(
					ctx,
					envelopeUseCase,
					recordUseCase,
					container.Codec(),
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("id"),
					cmd.String("secret-env"),
				)
			},
		},
		{
			Name:  "rotate-records",
			Usage: "Rewrap every stored record at a key version from the old secret to the new one",
			Flags: []cli.Flag{
				secretEnvFlag("old-secret-env", "Name of the environment variable holding the current secret"),
				secretEnvFlag("new-secret-env", "Name of the environment variable holding the new secret"),
				&cli.UintFlag{
					Name:  "from-version",
					Value: 1,
					Usage: "Key version of the records to rotate",
				},
				&cli.IntFlag{
					Name:    "batch-size",
					Aliases: []string{"b"},
					Usage:   "Records rewrapped per transaction (defaults to ROTATION_BATCH_SIZE)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				rotationUseCase, err := container.RotationUseCase()
				if err != nil {
					return err
				}

				batchSize := int(cmd.Int("batch-size"))
				if batchSize == 0 {
					batchSize = cfg.RotationBatchSize
				}

				return commands.RunRotateRecords(
					ctx,
					rotationUseCase,
					container.Logger(),
					cmd.String("old-secret-env"),
					cmd.String("new-secret-env"),
					uint(cmd.Uint("from-version")),
					batchSize,
				)
			},
		},
	}
}
