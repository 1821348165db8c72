package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "dict",
		Usage: "Query DICT (RFC 2229) dictionary servers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Sources: cli.EnvVars("DICT_CONFIG_FILE"),
			},
			&cli.StringSliceFlag{
				Name:    "server",
				Aliases: []string{"H"},
				Usage:   "DICT server `HOST[:PORT]`, repeat for mirrors",
				Sources: cli.EnvVars("DICT_SERVERS"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("DICT_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "databases",
				Usage:  "List the databases offered by the server",
				Action: withSession(keyNone, noArgs((*session).databases)),
			},
			{
				Name:   "strategies",
				Usage:  "List the matching strategies supported by the server",
				Action: withSession(keyNone, noArgs((*session).strategies)),
			},
			{
				Name:      "match",
				Usage:     "List the words matching a pattern",
				ArgsUsage: "PATTERN",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "strategy", Aliases: []string{"s"}, Usage: "Matching strategy"},
					&cli.StringFlag{Name: "database", Aliases: []string{"d"}, Usage: "Database to search"},
				},
				Action: withSession(keyFirstArg, func(s *session, cmd *cli.Command) error {
					return s.match(cmd.Args().First(), cmd.String("strategy"), cmd.String("database"))
				}),
			},
			{
				Name:      "define",
				Usage:     "Print the definitions of a word",
				ArgsUsage: "WORD",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "database", Aliases: []string{"d"}, Usage: "Database to search"},
				},
				Action: withSession(keyFirstArg, func(s *session, cmd *cli.Command) error {
					return s.define(cmd.Args().First(), cmd.String("database"))
				}),
			},
			{
				Name:      "info",
				Usage:     "Print the description of a database",
				ArgsUsage: "DATABASE",
				Action: withSession(keyFirstArg, func(s *session, cmd *cli.Command) error {
					return s.info(cmd.Args().First())
				}),
			},
			{
				Name:   "server",
				Usage:  "Print the server information",
				Action: withSession(keyNone, noArgs((*session).server)),
			},
			{
				Name:   "shell",
				Usage:  "Run an interactive session on one connection",
				Action: withSession(keyNone, runShellCommand),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("dict failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
