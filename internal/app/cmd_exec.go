package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/sandeepkv93/tasks/internal/update"
)

// ExecCmd applies palette commands to a fresh list and prints the result.
type ExecCmd struct {
	env    *Env
	stdin  io.Reader
	stdout io.Writer

	// flags
	all   bool
	quiet bool
}

func NewExecCmd(env *Env, stdin io.Reader, stdout io.Writer) *ExecCmd {
	return &ExecCmd{env: env, stdin: stdin, stdout: stdout}
}

// Register adds the exec command to the application
func (cmd *ExecCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "exec",
		Usage:     "Run palette commands without the interactive UI",
		UsageText: `tasks exec [--all] [--quiet] ["command args"...]`,
		Description: `Applies each argument as a palette command (add, done, undo, delete, clear,
toggle, show) to an empty list, in order, then prints the visible tasks.

With no arguments, commands are read from stdin, one per line. Blank lines and
lines starting with # are skipped. Nothing is saved between runs.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "print every task, ignoring the view filter",
				Destination: &cmd.all,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Aliases:     []string{"q"},
				Usage:       "do not echo per-command results",
				Destination: &cmd.quiet,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExecCmd) run(ctx context.Context, c *cli.Command) error {
	lines := c.Args().Slice()
	if len(lines) == 0 {
		read, err := readLines(cmd.stdin)
		if err != nil {
			return fmt.Errorf("read commands: %w", err)
		}
		lines = read
	}

	m := update.NewModelWithConfig(cmd.env.Config, cmd.env.Logger)
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := m.RunCommand(line)
		if err != nil {
			return fmt.Errorf("command %d (%q): %w", i+1, line, err)
		}
		if !cmd.quiet {
			fmt.Fprintln(cmd.stdout, res.Message)
		}
	}

	tasks := m.Store.VisibleTasks()
	header := fmt.Sprintf("view: %s", m.Store.Filter())
	if cmd.all {
		tasks = m.Store.Tasks()
		header = "view: all"
	}
	fmt.Fprintln(cmd.stdout, header)

	w := tabwriter.NewWriter(cmd.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE")
	for _, task := range tasks {
		fmt.Fprintf(w, "%d\t%s\t%s\n", task.ID, task.Status, task.Title)
	}
	return w.Flush()
}

func readLines(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, nil
	}
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}
