// Package app wires the command line surface: global flags, logging,
// configuration and the tui and exec commands.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/sandeepkv93/tasks/internal/config"
	"github.com/sandeepkv93/tasks/pkg/logutils"
)

// New builds the root command. The default action runs the tui.
func New(version string, stdin io.Reader, stdout io.Writer) *cli.Command {
	var (
		flags     = &Flags{}
		env       = &Env{}
		logCloser func()
	)

	root := &cli.Command{
		Name:      "tasks",
		Usage:     "A small in-memory task list for the terminal",
		UsageText: "tasks [global options] [command [command options]]",
		Version:   version,
		Writer:    stdout,
		Reader:    stdin,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TASKS_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (logging is off when empty)",
				Sources:     cli.EnvVars("TASKS_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TASKS_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			env.Config = cfg
			env.Logger = logger
			logger.Debug().Str("config", flags.ConfigPath).Str("id_policy", cfg.IDPolicy).Msg("config loaded")
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := NewTuiCmd(env)
	root = NewExecCmd(env, stdin, stdout).Register(root)
	root.Action = tuiCmd.Run

	return root
}
