package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/sandeepkv93/tasks/internal/update"
)

type TuiCmd struct {
	env *Env
}

func NewTuiCmd(env *Env) *TuiCmd {
	return &TuiCmd{env: env}
}

// Run starts the interactive task list and blocks until it exits.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() > 0 {
		return fmt.Errorf("unknown command %q. Run 'tasks --help' for usage", c.Args().First())
	}

	m := update.NewModelWithConfig(cmd.env.Config, cmd.env.Logger)
	cmd.env.Logger.Info().
		Str("title", m.Title).
		Str("id_policy", string(m.Store.IDPolicy())).
		Msg("starting tui")
	program := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tasks failed: %w", err)
	}
	return nil
}
