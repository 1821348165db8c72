package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"

	"github.com/pior/dict"
	"github.com/pior/dict/internal/config"
	"github.com/urfave/cli/v3"
)

type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	servers *dict.Servers
	out     io.Writer
	width   int
}

// newApp loads the configuration and applies the global flags over it.
func newApp(cmd *cli.Command) (*app, error) {
	cfg, err := config.LoadOrDefault(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := applyFlags(cfg, cmd.StringSlice("server"), cmd.String("log-level")); err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	return &app{
		cfg:     cfg,
		logger:  logger,
		servers: dict.NewServers(cfg.Servers...),
		out:     os.Stdout,
		width:   terminalWidth(os.Stdout),
	}, nil
}

// applyFlags overrides the configuration with the global flags and checks
// the result again.
func applyFlags(cfg *config.Config, servers []string, level string) error {
	if len(servers) > 0 {
		cfg.Servers = servers
	}
	if level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// clientConfig maps the configuration to the library settings.
func (a *app) clientConfig() dict.Config {
	clientConfig := dict.Config{
		Dialer:     &net.Dialer{Timeout: a.cfg.DialTimeout},
		Logger:     a.logger,
		ClientName: a.cfg.ClientName,
	}

	if cb := a.cfg.CircuitBreaker; cb.Enabled {
		clientConfig.NewCircuitBreaker = dict.NewCircuitBreakerConfig(cb.MaxRequests, cb.Interval, cb.Timeout)
	}

	return clientConfig
}

// connect opens a session on the server selected for key.
func (a *app) connect(ctx context.Context, key string) (*session, error) {
	addr, err := a.servers.Select(key)
	if err != nil {
		return nil, err
	}

	client, err := dict.NewClient(ctx, addr, a.clientConfig())
	if err != nil {
		return nil, err
	}

	return newSession(client, a.cfg.Defaults, a.out, a.width), nil
}

type sessionAction func(s *session, cmd *cli.Command) error

func noArgs(fn func(s *session) error) sessionAction {
	return func(s *session, _ *cli.Command) error {
		return fn(s)
	}
}

// keyNone and keyFirstArg pick the word used to select a mirror.
func keyNone(*cli.Command) string { return "" }

func keyFirstArg(cmd *cli.Command) string { return cmd.Args().First() }

// withSession adapts a session action to a cli action: it checks the
// positional argument, connects and closes the connection afterwards.
func withSession(key func(*cli.Command) string, fn sessionAction) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if cmd.ArgsUsage != "" && cmd.Args().Len() != 1 {
			return fmt.Errorf("%s: expected %s argument", cmd.Name, cmd.ArgsUsage)
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		s, err := a.connect(ctx, key(cmd))
		if err != nil {
			return err
		}
		defer s.close()

		return fn(s, cmd)
	}
}
