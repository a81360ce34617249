package main

import (
	"fmt"

	"storefront/internal/errors"
	"storefront/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "manage access tokens",
		Subcommands: []*cli.Command{
			{
				Name:  "issue",
				Usage: "print an access token for an existing user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "user", Required: true, Usage: "user id"},
				},
				Action: func(c *cli.Context) error {
					userID, err := uuid.Parse(c.String("user"))
					if err != nil {
						return errors.Wrap(err, "invalid user id")
					}

					e, err := start(c, false)
					if err != nil {
						return err
					}
					defer e.stop()

					user, err := e.stores.Users.FindUserByID(c.Context, userID)
					if err != nil {
						return errors.Wrap(err, "find user")
					}
					if user.IsBlocked {
						return errors.Errorf("user %s is blocked", user.ID)
					}

					tokens, err := auth.NewJWTService(e.cfg)
					if err != nil {
						return err
					}
					token, err := tokens.GenerateAccessToken(user.ID, []string{user.Role})
					if err != nil {
						return err
					}

					_, err = fmt.Fprintln(c.App.Writer, token)

					return errors.WithStack(err)
				},
			},
		},
	}
}
