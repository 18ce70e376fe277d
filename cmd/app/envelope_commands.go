package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/sealbox/cmd/app/commands"
	"github.com/allisson/sealbox/internal/app"
	"github.com/allisson/sealbox/internal/config"
)

func secretEnvFlag(name, usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     name,
		Required: true,
		Usage:    usage,
	}
}

func getEnvelopeCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "seal",
			Usage: "Seal stdin under a secret and print the encoded record as JSON",
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

				return commands.RunSeal(
					ctx,
					envelopeUseCase,
					container.Codec(),
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("secret-env"),
				)
			},
		},
		{
			Name:  "open",
			Usage: "Open an encoded record read from stdin and print the plaintext",
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

				return commands.RunOpen(
					ctx,
					envelopeUseCase,
					container.Codec(),
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("secret-env"),
				)
			},
		},
		{
			Name:  "rewrap",
			Usage: "Move the data key of an encoded record read from stdin to a new secret",
			Flags: []cli.Flag{
				secretEnvFlag("old-secret-env", "Name of the environment variable holding the current secret"),
				secretEnvFlag("new-secret-env", "Name of the environment variable holding the new secret"),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				envelopeUseCase, err := container.EnvelopeUseCase()
				if err != nil {
					return err
				}

				return commands.RunRewrap(
					ctx,
					envelopeUseCase,
					container.Codec(),
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("old-secret-env"),
					cmd.String("new-secret-env"),
				)
			},
		},
	}
}
