package main

import (
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/postgres"

	"github.com/urfave/cli/v2"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply or roll back schema migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations (mongo: ensure indexes)",
				Action: func(c *cli.Context) error {
					e, err := start(c, false)
					if err != nil {
						return err
					}
					defer e.stop()

					if e.db == nil {
						e.logger.Info("MongoDB indexes ensured")

						return nil
					}

					return postgres.MigrateUp(e.db, e.logger)
				},
			},
			{
				Name:  "down",
				Usage: "roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				},
				Action: func(c *cli.Context) error {
					e, err := start(c, false)
					if err != nil {
						return err
					}
					defer e.stop()

					if e.db == nil {
						return errors.New("migrate down is only supported on postgres")
					}

					return postgres.MigrateDown(e.db, c.Int("steps"), e.logger)
				},
			},
		},
	}
}
