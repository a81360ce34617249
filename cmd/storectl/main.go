// Command storectl runs operator tasks against the storefront database.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "storectl",
		Usage: "storefront operator tooling",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Usage:   "config file name without extension",
				Value:   "config",
				EnvVars: []string{"STOREFRONT_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			migrateCommand(),
			seedCommand(),
			tokenCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
